package dto

type SubmitStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type UpdateStatusRequest struct {
	Index    *int   `json:"index"`
	Status   string `json:"status"`
	FormType string `json:"form_type"`
}

// DeleteSubmissionRequest is the body of POST /api/submissions. The
// endpoint deletes despite the verb; the shape is kept for compatibility
// with the existing admin dashboard.
type DeleteSubmissionRequest struct {
	Index    *int   `json:"index"`
	FormType string `json:"form_type"`
}
