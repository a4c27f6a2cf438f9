package position

import "errors"

var (
	ErrPositionNotFound   = errors.New("position not found")
	ErrPositionNameExists = errors.New("position with this name already exists in the department")
	ErrPositionInUse      = errors.New("position is still referenced")
)
