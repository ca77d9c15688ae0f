package response

import (
	"course-enrollment/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func FromUserView(v *queries.AuthorizedUserView) (UserResponse, error) {
	var res UserResponse
	if err := copier.Copy(&res, v); err != nil {
		return UserResponse{}, err
	}
	return res, nil
}
