package onboardsdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListNotifications retrieves the caller's notifications, optionally only
// the unread ones.
func (s *Session) ListNotifications(ctx context.Context, unreadOnly bool) ([]Notification, error) {
	path := fmt.Sprintf("/Notifications/employee?unreadOnly=%t", unreadOnly)
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	var notifications []Notification
	if err := decodeData(resp, &notifications); err != nil {
		return nil, err
	}

	return notifications, nil
}

// GetUnreadCount retrieves the caller's unread notification count.
func (s *Session) GetUnreadCount(ctx context.Context) (int, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/Notifications/unread-count", nil, "")
	if err != nil {
		return 0, err
	}

	var count int
	if err := decodeData(resp, &count); err != nil {
		return 0, err
	}

	return count, nil
}

// MarkNotificationRead marks one notification as read.
func (s *Session) MarkNotificationRead(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/Notifications/%d/mark-read", id)
	resp, err := s.doAuthJSON(ctx, http.MethodPut, path, struct{}{})
	if err != nil {
		return err
	}

	return decodeData(resp, nil)
}

// MarkAllNotificationsRead marks every notification as read.
func (s *Session) MarkAllNotificationsRead(ctx context.Context) error {
	resp, err := s.doAuthJSON(ctx, http.MethodPut, "/Notifications/mark-all-read", struct{}{})
	if err != nil {
		return err
	}

	return decodeData(resp, nil)
}
