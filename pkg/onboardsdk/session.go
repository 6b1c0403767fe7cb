package onboardsdk

// Session performs authenticated calls against the OnboardHub API using a
// bearer token issued at login or registration. It is a thin wire-level
// handle: durable session state (identity, expiry, forced password change)
// lives in the portal's session store, not here.
//
// Session methods are organized by API area:
//
//   - session_employees.go: employee records and onboarding summaries
//   - session_tasks.go: task templates and onboarding tasks
//   - session_documents.go: document upload, review and download
//   - session_dashboard.go: dashboard stats and progress reports
//   - session_notifications.go: in-app notifications
//   - session_admin.go: user management, activity logs, settings
type Session struct {
	client *Client
	token  string
}

// Token returns the bearer token backing this session.
func (s *Session) Token() string { return s.token }
