package onboardsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ============================================================================
// Employee Records
// ============================================================================

// ListEmployees retrieves a filtered, paged employee list.
func (s *Session) ListEmployees(ctx context.Context, filter EmployeeFilter) (*EmployeePage, error) {
	query := url.Values{}
	if filter.Department != "" {
		query.Set("department", filter.Department)
	}
	if filter.EmploymentStatus != nil {
		query.Set("employmentStatus", strconv.Itoa(*filter.EmploymentStatus))
	}
	if filter.OnboardingStatus != nil {
		query.Set("onboardingStatus", strconv.Itoa(*filter.OnboardingStatus))
	}
	if filter.PageNumber > 0 {
		query.Set("pageNumber", strconv.Itoa(filter.PageNumber))
	}
	if filter.PageSize > 0 {
		query.Set("pageSize", strconv.Itoa(filter.PageSize))
	}

	path := "/Employees"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	var page EmployeePage
	if err := decodeBody(resp, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// GetEmployee retrieves a single employee record.
func (s *Session) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf("/Employees/%d", id), nil, "")
	if err != nil {
		return nil, err
	}

	var employee Employee
	if err := decodeData(resp, &employee); err != nil {
		return nil, err
	}

	return &employee, nil
}

// CreateEmployee creates a new employee record.
func (s *Session) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*Employee, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/Employees", req)
	if err != nil {
		return nil, err
	}

	var employee Employee
	if err := decodeData(resp, &employee); err != nil {
		return nil, err
	}

	return &employee, nil
}

// UpdateEmployee replaces an employee record.
func (s *Session) UpdateEmployee(ctx context.Context, id int64, employee Employee) (*Employee, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPut, fmt.Sprintf("/Employees/%d", id), employee)
	if err != nil {
		return nil, err
	}

	var updated Employee
	if err := decodeData(resp, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteEmployee removes an employee record.
func (s *Session) DeleteEmployee(ctx context.Context, id int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, fmt.Sprintf("/Employees/%d", id), nil, "")
	if err != nil {
		return err
	}

	return decodeData(resp, nil)
}

// ============================================================================
// Onboarding Lifecycle
// ============================================================================

// CompleteOnboarding marks an employee's onboarding as finished.
func (s *Session) CompleteOnboarding(ctx context.Context, employeeID int64) error {
	path := fmt.Sprintf("/Employees/%d/complete-onboarding", employeeID)
	resp, err := s.doAuthJSON(ctx, http.MethodPost, path, struct{}{})
	if err != nil {
		return err
	}

	return decodeData(resp, nil)
}

// GetOnboardingSummary retrieves an employee's onboarding progress rollup.
func (s *Session) GetOnboardingSummary(ctx context.Context, employeeID int64) (*OnboardingSummary, error) {
	path := fmt.Sprintf("/Employees/%d/onboarding-summary", employeeID)
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	var summary OnboardingSummary
	if err := decodeData(resp, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

// GenerateSummaryPDF retrieves the server-rendered onboarding summary PDF.
func (s *Session) GenerateSummaryPDF(ctx context.Context, employeeID int64) ([]byte, error) {
	path := fmt.Sprintf("/Employees/%d/generate-summary", employeeID)
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	return readBytes(resp)
}
