package onboardsdk

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a bearer token and the caller's identity.
// An HTTP 401 surfaces as an *APIError with IsAuthFailure() true; transport
// failures surface as wrapped net/http errors.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthData, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/Auth/login", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var data AuthData
	if err := decodeData(resp, &data); err != nil {
		return nil, err
	}

	return &data, nil
}

// Register creates an account with the chosen role and, like Login, returns
// an authenticated payload on success.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthData, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/Auth/register", req)
	if err != nil {
		return nil, err
	}

	var data AuthData
	if err := decodeData(resp, &data); err != nil {
		return nil, err
	}

	return &data, nil
}

// ChangePassword submits a password change for the authenticated user. The
// server re-verifies the current password; a rejection comes back as an
// *APIError. Confirm-vs-new equality is the caller's concern and is checked
// before this wire call is ever made (see the credential gateway).
func (s *Session) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/Auth/change-password", ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     newPassword,
		ConfirmPassword: confirm,
	})
	if err != nil {
		return err
	}

	return decodeData(resp, nil)
}
