package review

import "errors"

var (
	ErrReviewNotFound     = errors.New("performance review not found")
	ErrReviewAccessDenied = errors.New("performance review belongs to another employee")
)
