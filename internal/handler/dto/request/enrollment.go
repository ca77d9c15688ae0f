package request

// DecideEnrollmentRequest carries the instructor's decision. The value is
// validated by the use case so any other status maps to one 400 response.
type DecideEnrollmentRequest struct {
	Status string `json:"status" binding:"required"`
}
