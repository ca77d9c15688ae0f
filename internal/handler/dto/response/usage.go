package response

import (
	"course-enrollment/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UsageResponse struct {
	Students            int64 `json:"students"`
	Instructors         int64 `json:"instructors"`
	Admins              int64 `json:"admins"`
	PendingCourses      int64 `json:"pending_courses"`
	AcceptedCourses     int64 `json:"accepted_courses"`
	PendingEnrollments  int64 `json:"pending_enrollments"`
	AcceptedEnrollments int64 `json:"accepted_enrollments"`
	RejectedEnrollments int64 `json:"rejected_enrollments"`
}

func FromUsage(v *queries.UsageView) (UsageResponse, error) {
	var res UsageResponse
	if err := copier.Copy(&res, v); err != nil {
		return UsageResponse{}, err
	}
	return res, nil
}
