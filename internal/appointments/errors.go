package appointments

import "errors"

var (
	ErrMissingFields  = errors.New("missing required fields")
	ErrInvalidInput   = errors.New("invalid date or time")
	ErrLawyerNotFound = errors.New("lawyer not found")
	ErrUnavailable    = errors.New("lawyer unavailable")
	ErrSlotTaken      = errors.New("slot already booked")
	ErrNotFound       = errors.New("appointment not found")
)
