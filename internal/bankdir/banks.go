package bankdir

// order keeps All() deterministic.
var order = []string{
	"بانک ملی ایران",
	"بانک ملت",
	"بانک صادرات ایران",
	"بانک تجارت",
	"بانک سپه",
	"بانک کشاورزی",
	"بانک مسکن",
	"بانک رفاه کارگران",
	"پست بانک ایران",
	"بانک توسعه صادرات ایران",
	"بانک صنعت و معدن",
	"بانک پارسیان",
	"بانک پاسارگاد",
	"بانک سامان",
	"بانک اقتصاد نوین",
	"بانک سینا",
	"بانک شهر",
	"بانک دی",
	"بانک آینده",
	"بانک سرمایه",
	"بانک گردشگری",
	"بانک کارآفرین",
}

var directory = map[string]Bank{
	"بانک ملی ایران":          {Name: "بانک ملی ایران", NameEn: "Bank Melli Iran", Color: "#AD8A19"},
	"بانک ملت":                {Name: "بانک ملت", NameEn: "Bank Mellat", Color: "#D12A2F"},
	"بانک صادرات ایران":       {Name: "بانک صادرات ایران", NameEn: "Bank Saderat Iran", Color: "#1D3E8A"},
	"بانک تجارت":              {Name: "بانک تجارت", NameEn: "Tejarat Bank", Color: "#5C2D91"},
	"بانک سپه":                {Name: "بانک سپه", NameEn: "Bank Sepah", Color: "#0F4C81"},
	"بانک کشاورزی":            {Name: "بانک کشاورزی", NameEn: "Bank Keshavarzi", Color: "#2E7D32"},
	"بانک مسکن":               {Name: "بانک مسکن", NameEn: "Bank Maskan", Color: "#E65100"},
	"بانک رفاه کارگران":       {Name: "بانک رفاه کارگران", NameEn: "Refah Bank", Color: "#00695C"},
	"پست بانک ایران":          {Name: "پست بانک ایران", NameEn: "Post Bank of Iran", Color: "#00838F"},
	"بانک توسعه صادرات ایران": {Name: "بانک توسعه صادرات ایران", NameEn: "Export Development Bank", Color: "#283593"},
	"بانک صنعت و معدن":        {Name: "بانک صنعت و معدن", NameEn: "Bank of Industry and Mine", Color: "#455A64"},
	"بانک پارسیان":            {Name: "بانک پارسیان", NameEn: "Parsian Bank", Color: "#8E0E1F"},
	"بانک پاسارگاد":           {Name: "بانک پاسارگاد", NameEn: "Bank Pasargad", Color: "#B8860B"},
	"بانک سامان":              {Name: "بانک سامان", NameEn: "Saman Bank", Color: "#00AEEF"},
	"بانک اقتصاد نوین":        {Name: "بانک اقتصاد نوین", NameEn: "EN Bank", Color: "#6A1B9A"},
	"بانک سینا":               {Name: "بانک سینا", NameEn: "Sina Bank", Color: "#1565C0"},
	"بانک شهر":                {Name: "بانک شهر", NameEn: "Shahr Bank", Color: "#C62828"},
	"بانک دی":                 {Name: "بانک دی", NameEn: "Day Bank", Color: "#004D40"},
	"بانک آینده":              {Name: "بانک آینده", NameEn: "Ayandeh Bank", Color: "#7A4A1D"},
	"بانک سرمایه":             {Name: "بانک سرمایه", NameEn: "Sarmayeh Bank", Color: "#37474F"},
	"بانک گردشگری":            {Name: "بانک گردشگری", NameEn: "Tourism Bank", Color: "#00897B"},
	"بانک کارآفرین":           {Name: "بانک کارآفرین", NameEn: "Karafarin Bank", Color: "#00624F"},
}
