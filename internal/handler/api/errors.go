package api

import (
	"course-enrollment/internal/pkg/errs"
)

var (
	errUnauthenticated = errs.New("no authenticated user on context")
)
