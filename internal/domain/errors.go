package domain

import "errors"

var (
	ErrShiftNotFound        = errors.New("shift not found")
	ErrWorkerNotFound       = errors.New("worker not found")
	ErrMachineNotFound      = errors.New("machine not found")
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrShiftConflict marks a create/update refused by the conflict detector.
	ErrShiftConflict = errors.New("shift conflicts with an existing shift")

	// ErrInvalidInterval marks a shift whose start time is not strictly
	// before its end time.
	ErrInvalidInterval = errors.New("shift start time must be before end time")

	ErrSwapAlreadyPending  = errors.New("shift already has a pending swap request")
	ErrSwapAlreadyResolved = errors.New("swap request has already been resolved")
	ErrInvalidNotification = errors.New("notification cannot resolve a swap request")
	ErrInvalidDecision     = errors.New("swap decision must be approved or rejected")
)
