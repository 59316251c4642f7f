package models

// Record is one entry in a form-submission or registration collection.
// Keys are arbitrary form fields; the store injects "id", "timestamp" and,
// for submissions, "status".
type Record map[string]any

// FormCategory names one JSON-array file on disk.
type FormCategory string

const (
	CategoryContact      FormCategory = "contact"
	CategoryAdmission    FormCategory = "admission"
	CategoryRegistration FormCategory = "registration"
)

// StatusPending is the initial review status of a new submission.
const StatusPending = "Pending"
