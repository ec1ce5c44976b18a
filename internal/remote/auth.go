package remote

import (
	"context"
	"net/http"

	"github.com/cardvault-dev/cardvault/internal/session"
)

const (
	actionLogin          = "login"
	actionRegister       = "register"
	actionChangePassword = "change_password"
)

type authRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Action      string `json:"action"`
	Device      string `json:"device,omitempty"`
	NewPassword string `json:"new_password,omitempty"`
}

type authResponse struct {
	Status  string `json:"status"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

// Login exchanges credentials for a token and establishes the session.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var resp authResponse
	req := authRequest{
		Username: username,
		Password: password,
		Action:   actionLogin,
		Device:   c.device,
	}
	if err := c.do(ctx, http.MethodPost, authPath, req, &resp, false); err != nil {
		return err
	}
	if resp.Status != statusSuccess {
		return &AuthError{Message: orDefault(resp.Message, "invalid username or password")}
	}
	if resp.Token == "" {
		return &TransportError{Op: "login", Err: errNoToken}
	}

	c.log.WithField("username", username).Debug("login succeeded")
	return c.session.Establish(resp.Token, username)
}

// Register creates an account. It does not log in; the caller is
// expected to follow up with Login.
func (c *Client) Register(ctx context.Context, username, password string) error {
	var resp authResponse
	req := authRequest{
		Username: username,
		Password: password,
		Action:   actionRegister,
		Device:   c.device,
	}
	if err := c.do(ctx, http.MethodPost, authPath, req, &resp, false); err != nil {
		return err
	}
	if resp.Status != statusSuccess {
		return &AuthError{Message: orDefault(resp.Message, "registration failed")}
	}
	return nil
}

// ChangePassword rotates the account password. Requires an established
// session; the current token stays valid.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if !c.session.Authenticated() {
		return session.ErrNotAuthenticated
	}

	var resp authResponse
	req := authRequest{
		Username:    c.session.Username(),
		Password:    oldPassword,
		Action:      actionChangePassword,
		NewPassword: newPassword,
	}
	if err := c.do(ctx, http.MethodPost, authPath, req, &resp, true); err != nil {
		return err
	}
	if resp.Status != statusSuccess {
		return &AuthError{Message: orDefault(resp.Message, "password change failed")}
	}
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
