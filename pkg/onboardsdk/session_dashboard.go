package onboardsdk

import (
	"context"
	"net/http"
)

// GetDashboardStats retrieves the headline counters for the HR/Admin
// dashboard.
func (s *Session) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/Dashboard/stats", nil, "")
	if err != nil {
		return nil, err
	}

	var stats DashboardStats
	if err := decodeData(resp, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// GetOnboardingProgress retrieves the per-employee onboarding progress
// report.
func (s *Session) GetOnboardingProgress(ctx context.Context) ([]EmployeeProgress, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/Dashboard/progress", nil, "")
	if err != nil {
		return nil, err
	}

	var progress []EmployeeProgress
	if err := decodeData(resp, &progress); err != nil {
		return nil, err
	}

	return progress, nil
}
