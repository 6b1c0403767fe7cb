package onboardsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Admin operations. The server enforces the Admin/HR role requirement on
// every one of these; the portal's navigation gate keeps non-privileged
// users away from the screens that call them.

// ============================================================================
// User Management
// ============================================================================

// ListUsers retrieves a page of portal accounts.
func (s *Session) ListUsers(ctx context.Context, pageNumber, pageSize int) (*UserPage, error) {
	query := url.Values{}
	if pageNumber > 0 {
		query.Set("pageNumber", strconv.Itoa(pageNumber))
	}
	if pageSize > 0 {
		query.Set("pageSize", strconv.Itoa(pageSize))
	}

	path := "/Admin/users"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	var page UserPage
	if err := decodeBody(resp, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// GetUser retrieves one portal account.
func (s *Session) GetUser(ctx context.Context, userID int64) (*SystemUser, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf("/Admin/users/%d", userID), nil, "")
	if err != nil {
		return nil, err
	}

	var user SystemUser
	if err := decodeData(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateUser creates a portal account.
func (s *Session) CreateUser(ctx context.Context, req CreateUserRequest) (*SystemUser, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/Admin/users", req)
	if err != nil {
		return nil, err
	}

	var user SystemUser
	if err := decodeData(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateUser applies a partial update to a portal account.
func (s *Session) UpdateUser(ctx context.Context, userID int64, req UpdateUserRequest) (*SystemUser, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPut, fmt.Sprintf("/Admin/users/%d", userID), req)
	if err != nil {
		return nil, err
	}

	var user SystemUser
	if err := decodeData(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// DeleteUser removes a portal account.
func (s *Session) DeleteUser(ctx context.Context, userID int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, fmt.Sprintf("/Admin/users/%d", userID), nil, "")
	if err != nil {
		return err
	}

	return decodeData(resp, nil)
}

// ResetUserPassword sets a new password for another account. The reset user
// is forced through the password-change flow at next login.
func (s *Session) ResetUserPassword(ctx context.Context, req ResetPasswordRequest) error {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/Admin/users/reset-password", req)
	if err != nil {
		return err
	}

	return decodeData(resp, nil)
}

// ============================================================================
// Audit and Settings
// ============================================================================

// ListActivityLogs retrieves a page of the audit trail.
func (s *Session) ListActivityLogs(ctx context.Context, pageNumber, pageSize int) (*ActivityLogPage, error) {
	query := url.Values{}
	if pageNumber > 0 {
		query.Set("pageNumber", strconv.Itoa(pageNumber))
	}
	if pageSize > 0 {
		query.Set("pageSize", strconv.Itoa(pageSize))
	}

	path := "/Admin/activity-logs"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	var page ActivityLogPage
	if err := decodeBody(resp, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// GetSettings retrieves the portal-wide settings.
func (s *Session) GetSettings(ctx context.Context) (*SystemSettings, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/Admin/settings", nil, "")
	if err != nil {
		return nil, err
	}

	var settings SystemSettings
	if err := decodeData(resp, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// UpdateSettings replaces the portal-wide settings.
func (s *Session) UpdateSettings(ctx context.Context, settings SystemSettings) (*SystemSettings, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPut, "/Admin/settings", settings)
	if err != nil {
		return nil, err
	}

	var updated SystemSettings
	if err := decodeData(resp, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}
