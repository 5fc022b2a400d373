package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

type LoginResult struct {
	AccessToken string `json:"access_token"`
	UserID      int    `json:"user_id"`
}

// Login exchanges credentials for a bearer token. The token endpoint
// takes form-urlencoded fields, not JSON.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var out LoginResult
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login/token", "",
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return out, err
	}
	err = c.doJSON(req, &out)
	return out, err
}

type RegisterRequest struct {
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	Password   string `json:"password"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.sendJSON(ctx, http.MethodPost, "/user", "", req, nil)
}

// SendOTP asks the portal to mail a one-time reset code. Expiry and
// resend throttling are entirely the portal's concern.
func (c *Client) SendOTP(ctx context.Context, email string) error {
	payload := map[string]string{"email": email}
	return c.sendJSON(ctx, http.MethodPost, "/send-otp", "", payload, nil)
}

type ResetPasswordResult struct {
	Message string `json:"message"`
}

func (c *Client) ResetPasswordOTP(ctx context.Context, email, otp, newPassword string) (ResetPasswordResult, error) {
	payload := map[string]string{
		"email":        email,
		"otp":          otp,
		"new_password": newPassword,
	}
	var out ResetPasswordResult
	err := c.sendJSON(ctx, http.MethodPost, "/reset-password-otp", "", payload, &out)
	return out, err
}
