package api

// ClassifyEmailRequest is the HTTP request body for POST /classify_email.
// EmailBody is a pointer so that a present-but-empty body is accepted while
// a missing key is rejected.
type ClassifyEmailRequest struct {
	EmailBody *string `json:"email_body" binding:"required"`
}
