package model

// Card represents one bank-card record in the local registry. The JSON
// tags are the backup contract: the same shape is written to the export
// document and read back on import.
type Card struct {
	ID          string `json:"id"`
	BankName    string `json:"bankName"`
	CustomTitle string `json:"customTitle,omitempty"`
	CardNumber  string `json:"cardNumber"`
	IBAN        string `json:"iban"`
	CVV         string `json:"cvv"`
	ExpiryDate  string `json:"expiryDate"`
	BankColor   string `json:"bankColor,omitempty"`
	BankNameEn  string `json:"bankNameEn,omitempty"`
	CustomColor string `json:"customColor,omitempty"`
}

// DisplayTitle returns the user's custom title when set, otherwise the
// bank's display name.
func (c Card) DisplayTitle() string {
	if c.CustomTitle != "" {
		return c.CustomTitle
	}
	return c.BankName
}

// DisplayColor returns the user-chosen color when set, otherwise the
// directory color derived from the bank name.
func (c Card) DisplayColor() string {
	if c.CustomColor != "" {
		return c.CustomColor
	}
	return c.BankColor
}
