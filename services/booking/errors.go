package booking

import "errors"

var (
	// ErrNotFound covers a missing provider, service or booking reference.
	ErrNotFound = errors.New("not found")
	// ErrServiceInactive means the service exists but is no longer offered.
	ErrServiceInactive = errors.New("service is no longer offered")
	// ErrSlotConflict means the requested time is no longer available: raced
	// by another booking, or outside working hours/breaks. Callers should
	// re-query availability and let the user pick again.
	ErrSlotConflict = errors.New("slot no longer available")
	// ErrInvalidTransition rejects a status change the lifecycle forbids.
	ErrInvalidTransition = errors.New("invalid booking status transition")
)
