package compensation

import "errors"

var (
	ErrBaselineNotFound       = errors.New("compensation baseline not found")
	ErrEventNotFound          = errors.New("compensation event not found")
	ErrInvalidDate            = errors.New("invalid effective date")
	ErrDuplicateEffectiveDate = errors.New("an event already exists on this effective date")
	ErrInvalidEventType       = errors.New("invalid compensation event type")
)
