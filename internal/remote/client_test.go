package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardvault-dev/cardvault/internal/model"
	"github.com/cardvault-dev/cardvault/internal/session"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Manager) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess, err := session.Open(t.TempDir())
	require.NoError(t, err)
	return New(srv.URL, "test-device", sess, testLogger()), sess
}

func authenticated(t *testing.T, sess *session.Manager) {
	t.Helper()
	require.NoError(t, sess.Establish("tok-123", "alice"))
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestLogin_EstablishesSession(t *testing.T) {
	var got authRequest
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, authResponse{Status: "success", Token: "tok-xyz"})
	}))

	require.NoError(t, client.Login(context.Background(), "alice", "secret"))

	assert.Equal(t, "login", got.Action)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "test-device", got.Device)

	token, ok := sess.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-xyz", token)
	assert.Equal(t, "alice", sess.Username())
}

func TestLogin_RejectedCredentials(t *testing.T) {
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, authResponse{Status: "error", Message: "bad credentials"})
	}))

	err := client.Login(context.Background(), "alice", "wrong")
	var aerr *AuthError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "bad credentials", aerr.Message)
	assert.False(t, sess.Authenticated())
}

func TestRegister_DoesNotLogIn(t *testing.T) {
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req authRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "register", req.Action)
		writeJSON(t, w, authResponse{Status: "success"})
	}))

	require.NoError(t, client.Register(context.Background(), "alice", "secret"))
	assert.False(t, sess.Authenticated())
}

func TestChangePassword(t *testing.T) {
	var got authRequest
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, authResponse{Status: "success"})
	}))
	authenticated(t, sess)

	require.NoError(t, client.ChangePassword(context.Background(), "old", "new"))
	assert.Equal(t, "change_password", got.Action)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "old", got.Password)
	assert.Equal(t, "new", got.NewPassword)
	assert.True(t, sess.Authenticated(), "token survives a password change")
}

func TestChangePassword_RequiresSession(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	err := client.ChangePassword(context.Background(), "old", "new")
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)
	assert.Zero(t, calls.Load())
}

func TestPush_SendsWireShape(t *testing.T) {
	var got pushRequest
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/cards", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, pushResponse{Status: "success"})
	}))
	authenticated(t, sess)

	cards := []model.Card{
		{
			ID:          "local-1",
			BankName:    "بانک ملت",
			CardNumber:  "6104337812345678",
			IBAN:        "IR012345678901234567890123",
			CVV:         "123",
			ExpiryDate:  "03/05",
			BankColor:   "#D12A2F",
			BankNameEn:  "Bank Mellat",
			CustomColor: "#3b82f6",
		},
		{
			ID:         "local-2",
			BankName:   "بانک سامان",
			CardNumber: "6219861912345678",
			IBAN:       "IR555555555555555555555555",
			CVV:        "456",
			ExpiryDate: "04/06",
			BankColor:  "#00AEEF",
			BankNameEn: "Saman Bank",
		},
	}

	count, err := client.Push(context.Background(), cards)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.Len(t, got.Cards, 2)
	assert.Equal(t, "#3b82f6", got.Cards[0].BankColor, "custom color wins")
	assert.Equal(t, "#00AEEF", got.Cards[1].BankColor, "derived color when no override")

	// Local-only fields never cross the wire.
	data, err := json.Marshal(got.Cards[0])
	require.NoError(t, err)
	assert.NotContains(t, string(data), "id")
	assert.NotContains(t, string(data), "bankNameEn")
	assert.NotContains(t, string(data), "customColor")
}

func TestPush_EmptyCollectionShortCircuits(t *testing.T) {
	var calls atomic.Int32
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	authenticated(t, sess)

	_, err := client.Push(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNothingToPush)
	assert.Zero(t, calls.Load())
}

func TestPushPull_AnonymousFailsFast(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	_, err := client.Push(context.Background(), []model.Card{{CardNumber: "1111"}})
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)

	_, err = client.Pull(context.Background())
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)

	assert.Zero(t, calls.Load(), "no network call while anonymous")
}

func TestPull_MapsWireRecords(t *testing.T) {
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		writeJSON(t, w, map[string]any{
			"status": "success",
			"cards": []map[string]any{
				{
					"id":           42,
					"bank_name":    "بانک ملت",
					"card_name":    "Salary Card",
					"card_number":  "6104 3378 1234 5678",
					"shaba_number": "012345678901234567890123",
					"cvv":          "123",
					"expire_date":  "0305",
					"bankColor":    "#3b82f6",
				},
				{
					"id":        43,
					"bank_name": "بانک سامان",
				},
			},
		})
	}))
	authenticated(t, sess)

	cards, err := client.Pull(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 2)

	first := cards[0]
	assert.Equal(t, "42", first.ID, "remote id stringified")
	assert.Equal(t, "بانک ملت", first.BankName)
	assert.Equal(t, "Salary Card", first.CustomTitle)
	assert.Equal(t, "6104337812345678", first.CardNumber, "re-normalized")
	assert.Equal(t, "IR012345678901234567890123", first.IBAN, "prefix applied")
	assert.Equal(t, "03/05", first.ExpiryDate)
	assert.Equal(t, "Bank Mellat", first.BankNameEn, "enrichment recomputed")
	assert.Equal(t, "#3b82f6", first.CustomColor, "wire color kept as override")

	second := cards[1]
	assert.Equal(t, "43", second.ID)
	assert.Empty(t, second.CardNumber, "missing fields default to empty")
	assert.Empty(t, second.CustomColor)
	assert.Equal(t, "Saman Bank", second.BankNameEn)
}

func TestPull_WireColorMatchingDirectoryIsNotPinned(t *testing.T) {
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"status": "success",
			"cards": []map[string]any{
				{"id": 1, "bank_name": "بانک سامان", "card_number": "1111", "bankColor": "#00AEEF"},
			},
		})
	}))
	authenticated(t, sess)

	cards, err := client.Pull(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Empty(t, cards[0].CustomColor)
	assert.Equal(t, "#00AEEF", cards[0].BankColor)
}

func TestPull_NonSuccessStatus(t *testing.T) {
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, pullResponse{Status: "error", Message: "storage unavailable"})
	}))
	authenticated(t, sess)

	_, err := client.Pull(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage unavailable")
	assert.True(t, sess.Authenticated(), "non-auth failure keeps the session")
}

func TestTokenRejection_ClearsSession(t *testing.T) {
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	authenticated(t, sess)

	_, err := client.Pull(context.Background())
	var aerr *AuthError
	require.ErrorAs(t, err, &aerr)
	assert.False(t, sess.Authenticated(), "rejected token forces anonymous")
}

func TestTransportFailure(t *testing.T) {
	sess, err := session.Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, sess.Establish("tok-123", "alice"))

	// Nothing listens on this address.
	client := New("http://127.0.0.1:1", "test-device", sess, testLogger())
	_, err = client.Pull(context.Background())

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.True(t, sess.Authenticated(), "transport failure keeps the session")
}
