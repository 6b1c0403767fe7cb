/*
Package onboardsdk provides a client for the OnboardHub employee-onboarding
API.

# Overview

All business logic (validation, persistence, file storage, PDF generation,
email notification) lives on the server; this package is the wire layer the
portal builds on. It is organized around two types:

  - Client: unauthenticated credential exchanges (login, register) and
    session construction
  - Session: authenticated operations using a bearer token

Create a Client to authenticate:

	client := onboardsdk.NewClient("https://api.example.com")

	data, err := client.Login(ctx, "hr@example.com", "password")
	if err != nil {
		// *APIError for server rejections, wrapped transport errors otherwise
	}

	session := client.SessionFromToken(data.Token)

Use the Session for everything else:

	employees, err := session.ListEmployees(ctx, onboardsdk.EmployeeFilter{})
	tasks, err := session.ListTasksForEmployee(ctx, employeeID)
	doc, err := session.UploadDocument(ctx, taskID, "contract.pdf", file, userID)

# Roles

The API encodes roles as integer tags (Admin=1, HR=2, Employee=3). The Role
type is a closed enum; the integer mapping is confined to its JSON methods
and decoding rejects out-of-range tags. Authorization decisions over roles
live in the portal's access package, not here.

# Error Handling

Server rejections are returned as *APIError carrying the HTTP status and the
server's message. Transport failures (DNS, refused connections, timeouts)
are returned as wrapped errors from net/http. The SDK never retries.

# Sessions and State

Session is a stateless wire handle around a bearer token. Durable session
state — the cached identity, token expiry, and the forced password-change
flag — is owned by the portal's session store, which persists it across
process restarts and rebuilds a Session via Client.SessionFromToken.
*/
package onboardsdk
