package onboardsdk

import (
	"context"
	"fmt"
	"net/http"
)

// ============================================================================
// Task Templates
// ============================================================================

// ListTaskTemplates retrieves all task templates.
func (s *Session) ListTaskTemplates(ctx context.Context) ([]TaskTemplate, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/TaskTemplates", nil, "")
	if err != nil {
		return nil, err
	}

	var templates []TaskTemplate
	if err := decodeData(resp, &templates); err != nil {
		return nil, err
	}

	return templates, nil
}

// GetTaskTemplate retrieves a single task template.
func (s *Session) GetTaskTemplate(ctx context.Context, id int64) (*TaskTemplate, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf("/TaskTemplates/%d", id), nil, "")
	if err != nil {
		return nil, err
	}

	var template TaskTemplate
	if err := decodeData(resp, &template); err != nil {
		return nil, err
	}

	return &template, nil
}

// CreateTaskTemplate creates a new task template.
func (s *Session) CreateTaskTemplate(ctx context.Context, template TaskTemplate) (*TaskTemplate, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/TaskTemplates", template)
	if err != nil {
		return nil, err
	}

	var created TaskTemplate
	if err := decodeData(resp, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateTaskTemplate replaces a task template.
func (s *Session) UpdateTaskTemplate(ctx context.Context, id int64, template TaskTemplate) (*TaskTemplate, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPut, fmt.Sprintf("/TaskTemplates/%d", id), template)
	if err != nil {
		return nil, err
	}

	var updated TaskTemplate
	if err := decodeData(resp, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteTaskTemplate removes a task template.
func (s *Session) DeleteTaskTemplate(ctx context.Context, id int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, fmt.Sprintf("/TaskTemplates/%d", id), nil, "")
	if err != nil {
		return err
	}

	return decodeData(resp, nil)
}

// ============================================================================
// Onboarding Tasks
// ============================================================================

// ListTasks retrieves all onboarding tasks visible to the caller.
func (s *Session) ListTasks(ctx context.Context) ([]OnboardingTask, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/OnboardingTasks", nil, "")
	if err != nil {
		return nil, err
	}

	var tasks []OnboardingTask
	if err := decodeData(resp, &tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

// GetTask retrieves a single onboarding task.
func (s *Session) GetTask(ctx context.Context, id int64) (*OnboardingTask, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf("/OnboardingTasks/%d", id), nil, "")
	if err != nil {
		return nil, err
	}

	var task OnboardingTask
	if err := decodeData(resp, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

// ListTasksForEmployee retrieves the tasks assigned to one employee.
func (s *Session) ListTasksForEmployee(ctx context.Context, employeeID int64) ([]OnboardingTask, error) {
	path := fmt.Sprintf("/OnboardingTasks/employee/%d", employeeID)
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	var tasks []OnboardingTask
	if err := decodeData(resp, &tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ListOverdueTasks retrieves all tasks past their due date.
func (s *Session) ListOverdueTasks(ctx context.Context) ([]OnboardingTask, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/OnboardingTasks/overdue", nil, "")
	if err != nil {
		return nil, err
	}

	var tasks []OnboardingTask
	if err := decodeData(resp, &tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

// AssignTask assigns a templated task to an employee.
func (s *Session) AssignTask(ctx context.Context, req AssignTaskRequest) (*OnboardingTask, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/OnboardingTasks", req)
	if err != nil {
		return nil, err
	}

	var task OnboardingTask
	if err := decodeData(resp, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

// UpdateTaskStatus moves a task through its status lifecycle.
func (s *Session) UpdateTaskStatus(ctx context.Context, id int64, status int) (*OnboardingTask, error) {
	path := fmt.Sprintf("/OnboardingTasks/%d/status", id)
	resp, err := s.doAuthJSON(ctx, http.MethodPut, path, map[string]int{"status": status})
	if err != nil {
		return nil, err
	}

	var task OnboardingTask
	if err := decodeData(resp, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

// ReopenTask reopens a completed or canceled task, optionally with a note.
func (s *Session) ReopenTask(ctx context.Context, id int64, note string) error {
	payload := map[string]string{}
	if note != "" {
		payload["note"] = note
	}

	path := fmt.Sprintf("/OnboardingTasks/%d/reopen", id)
	resp, err := s.doAuthJSON(ctx, http.MethodPost, path, payload)
	if err != nil {
		return err
	}

	return decodeData(resp, nil)
}
