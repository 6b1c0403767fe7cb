package onboardsdk

import (
	"encoding/json"
	"time"
)

// ============================================================================
// Envelope
// ============================================================================

// envelope is the wrapper every OnboardHub endpoint returns. It is used
// internally for JSON unmarshaling; client code only ever sees the decoded
// data payload or a typed error.
type envelope struct {
	Succeeded bool            `json:"succeeded"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

// Page carries the paging metadata the list endpoints return alongside
// their data array.
type Page struct {
	Succeeded    bool `json:"succeeded"`
	PageNumber   int  `json:"pageNumber"`
	PageSize     int  `json:"pageSize"`
	TotalRecords int  `json:"totalRecords"`
	TotalPages   int  `json:"totalPages"`
}

// ============================================================================
// Auth Types
// ============================================================================

// Identity describes the authenticated user. Absence of an Identity means
// "unauthenticated"; at most one Identity is current at any time.
type Identity struct {
	UserID    int64  `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
}

// AuthData is the payload of a successful login or register exchange.
type AuthData struct {
	UserID    int64  `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`

	// Token is the opaque bearer credential for subsequent API calls.
	Token string `json:"token"`

	// Expires is the credential expiry timestamp (RFC3339).
	Expires string `json:"expires"`

	// MustChangePassword forces the password-change flow before the user
	// may use the rest of the portal.
	MustChangePassword bool `json:"mustChangePassword,omitempty"`
}

// Identity extracts the identity fields from the auth payload.
func (d *AuthData) Identity() Identity {
	return Identity{
		UserID:    d.UserID,
		Email:     d.Email,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Role:      d.Role,
	}
}

// ExpiresAt parses the expiry timestamp. Returns the zero time when the
// server omitted it or sent something unparseable.
func (d *AuthData) ExpiresAt() time.Time {
	if d.Expires == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, d.Expires)
	if err != nil {
		return time.Time{}
	}
	return t
}

// LoginRequest is the body of POST /Auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /Auth/register.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
}

// ChangePasswordRequest is the body of POST /Auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ============================================================================
// Employee Types
// ============================================================================

// Employee is an employee record as returned by the /Employees endpoints.
type Employee struct {
	ID               int64  `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phoneNumber,omitempty"`
	EmployeeNumber   string `json:"employeeNumber,omitempty"`
	Department       string `json:"department"`
	Position         string `json:"position,omitempty"`
	HireDate         string `json:"hireDate"`
	EmploymentStatus int    `json:"employmentStatus"`
	OnboardingStatus int    `json:"onboardingStatus"`
	StreetAddress    string `json:"streetAddress,omitempty"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
	PostalCode       string `json:"postalCode,omitempty"`
	Country          string `json:"country,omitempty"`
}

// CreateEmployeeRequest is the body of POST /Employees.
type CreateEmployeeRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
	HireDate   string `json:"hireDate"`
}

// EmployeeFilter narrows and pages GET /Employees.
type EmployeeFilter struct {
	Department       string
	EmploymentStatus *int
	OnboardingStatus *int
	PageNumber       int
	PageSize         int
}

// EmployeePage is one page of the employee list.
type EmployeePage struct {
	Page
	Employees []Employee `json:"data"`
}

// OnboardingSummary is the per-employee progress rollup.
type OnboardingSummary struct {
	EmployeeID     int64  `json:"employeeId"`
	EmployeeName   string `json:"employeeName"`
	TotalTasks     int    `json:"totalTasks"`
	CompletedTasks int    `json:"completedTasks"`
	PendingTasks   int    `json:"pendingTasks"`
	OverdueTasks   int    `json:"overdueTasks"`
	Completion     int    `json:"completionPercentage"`
}

// ============================================================================
// Task Types
// ============================================================================

// Task status tags as returned by /OnboardingTasks.
const (
	TaskStatusPending    = 0
	TaskStatusInProgress = 1
	TaskStatusCompleted  = 2
	TaskStatusCanceled   = 3
)

// TaskTemplate is a reusable task definition.
type TaskTemplate struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	EstimatedDays int    `json:"estimatedDays"`
}

// OnboardingTask is a task assigned to an employee.
type OnboardingTask struct {
	ID             int64  `json:"id"`
	TaskTemplateID int64  `json:"taskTemplateId"`
	EmployeeID     int64  `json:"employeeId"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	DueDate        string `json:"dueDate"`
	Status         int    `json:"status"`
	AssignedDate   string `json:"assignedDate"`
}

// AssignTaskRequest is the body of POST /OnboardingTasks.
type AssignTaskRequest struct {
	TaskTemplateID int64  `json:"taskTemplateId"`
	EmployeeID     int64  `json:"employeeId"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	DueDate        string `json:"dueDate"`
	Priority       int    `json:"priority,omitempty"`
	Notes          string `json:"notes,omitempty"`
	AssignedBy     int64  `json:"assignedBy,omitempty"`
}

// ============================================================================
// Document Types
// ============================================================================

// Document review status tags.
const (
	DocumentStatusPending  = 0
	DocumentStatusApproved = 1
	DocumentStatusRejected = 2
)

// Document is an uploaded onboarding document.
type Document struct {
	ID               int64  `json:"id"`
	OnboardingTaskID int64  `json:"onboardingTaskId"`
	FileName         string `json:"fileName"`
	OriginalFileName string `json:"originalFileName"`
	FileSize         int64  `json:"fileSize"`
	ContentType      string `json:"contentType"`
	UploadDate       string `json:"uploadDate"`
	UploadedBy       int64  `json:"uploadedBy"`
	Version          int    `json:"version"`
	Status           int    `json:"status"`
	ReviewedBy       int64  `json:"reviewedBy,omitempty"`
	ReviewedDate     string `json:"reviewedDate,omitempty"`
	ReviewComments   string `json:"reviewComments,omitempty"`
}

// ReviewDocumentRequest is the body of PUT /Documents/{id}/review.
type ReviewDocumentRequest struct {
	Status     int    `json:"status"`
	Comments   string `json:"comments,omitempty"`
	ReviewedBy int64  `json:"reviewedBy"`
}

// ============================================================================
// Dashboard Types
// ============================================================================

// DashboardStats is the headline counter block for the HR/Admin dashboard.
type DashboardStats struct {
	TotalEmployees      int `json:"totalEmployees"`
	ActiveOnboarding    int `json:"activeOnboarding"`
	CompletedOnboarding int `json:"completedOnboarding"`
	PendingTasks        int `json:"pendingTasks"`
	OverdueTasks        int `json:"overdueTasks"`
	TotalDocuments      int `json:"totalDocuments"`
}

// EmployeeProgress is one row of the onboarding progress report.
type EmployeeProgress struct {
	EmployeeID     int64  `json:"employeeId"`
	EmployeeName   string `json:"employeeName"`
	TotalTasks     int    `json:"totalTasks"`
	CompletedTasks int    `json:"completedTasks"`
	PendingTasks   int    `json:"pendingTasks"`
	OverdueTasks   int    `json:"overdueTasks"`
	Completion     int    `json:"completionPercentage"`
}

// ============================================================================
// Notification Types
// ============================================================================

// Notification is one in-app notification.
type Notification struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Severity  string `json:"severity"`
	IsRead    bool   `json:"isRead"`
	Created   string `json:"created"`
	ActionURL string `json:"actionUrl,omitempty"`
}

// ============================================================================
// Admin Types
// ============================================================================

// SystemUser is a portal account as managed from the admin screens.
type SystemUser struct {
	UserID    int64  `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
	LastLogin string `json:"lastLogin,omitempty"`
}

// CreateUserRequest is the body of POST /Admin/users.
type CreateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
}

// UpdateUserRequest is the body of PUT /Admin/users/{id}. Zero-valued
// fields are omitted so the server treats them as "unchanged".
type UpdateUserRequest struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Role      *Role  `json:"role,omitempty"`
	IsActive  *bool  `json:"isActive,omitempty"`
}

// ResetPasswordRequest is the body of POST /Admin/users/reset-password.
type ResetPasswordRequest struct {
	UserID      int64  `json:"userId"`
	NewPassword string `json:"newPassword"`
}

// UserPage is one page of the admin user list.
type UserPage struct {
	Page
	Users []SystemUser `json:"data"`
}

// ActivityLog is one audit trail entry.
type ActivityLog struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	UserEmail string `json:"userEmail"`
	Action    string `json:"action"`
	Details   string `json:"details,omitempty"`
	Timestamp string `json:"timestamp"`
}

// ActivityLogPage is one page of the audit trail.
type ActivityLogPage struct {
	Page
	Logs []ActivityLog `json:"data"`
}

// SystemSettings is the portal-wide configuration blob.
type SystemSettings struct {
	CompanyName          string `json:"companyName"`
	DefaultTaskDueDays   int    `json:"defaultTaskDueDays"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	MaxUploadSizeMB      int    `json:"maxUploadSizeMb"`
}
