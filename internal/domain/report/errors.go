package report

import "errors"

var (
	ErrInvalidYear  = errors.New("invalid declaration year")
	ErrInvalidRange = errors.New("start year must not be after end year")
)
