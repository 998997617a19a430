package domain

// SwapStatus is the explicit swap state of a shift. A shift is either idle or
// carries exactly one pending swap proposal; resolution always returns it to
// idle (ownership may have changed, but there is no distinct "swapped" state).
type SwapStatus string

const (
	SwapIdle    SwapStatus = "idle"
	SwapPending SwapStatus = "pending"
)

// SwapRequest is the wire view of a pending swap, attached to the shift in
// API responses and exported documents. Status is always "pending" while the
// request exists; resolving the swap removes the whole object.
type SwapRequest struct {
	TargetWorkerID string `json:"targetWorkerId"`
	Status         string `json:"status"`
}

// Shift is one scheduled work assignment: one worker, one calendar day, a
// same-day wall-clock interval, a department and optionally a machine.
// Date is "YYYY-MM-DD", StartTime/EndTime are "HH:MM"; together they define
// the half-open interval [start, end) used for conflict detection.
type Shift struct {
	ID           string  `json:"id" db:"id"`
	WorkerID     string  `json:"workerId" db:"worker_id"`
	Date         string  `json:"date" db:"date"`
	StartTime    string  `json:"startTime" db:"start_time"`
	EndTime      string  `json:"endTime" db:"end_time"`
	DepartmentID *string `json:"departmentId,omitempty" db:"department_id"`
	MachineID    *string `json:"machineId,omitempty" db:"machine_id"`
	Notes        *string `json:"notes,omitempty" db:"notes"`

	SwapStatus         SwapStatus `json:"-" db:"swap_status"`
	SwapTargetWorkerID *string    `json:"-" db:"swap_target_worker_id"`

	SwapRequest *SwapRequest `json:"swapRequest,omitempty" db:"-"`
}

func (s *Shift) SwapIsPending() bool {
	return s.SwapStatus == SwapPending
}

// SyncSwapRequest derives the wire view from the stored swap columns.
// Repositories call it after scanning a row; services call it after mutating
// the swap state in memory.
func (s *Shift) SyncSwapRequest() {
	if s.SwapStatus == SwapPending && s.SwapTargetWorkerID != nil {
		s.SwapRequest = &SwapRequest{
			TargetWorkerID: *s.SwapTargetWorkerID,
			Status:         string(SwapPending),
		}
		return
	}
	s.SwapRequest = nil
}

type CreateShiftInput struct {
	WorkerID     string  `json:"workerId" validate:"required"`
	Date         string  `json:"date" validate:"required"`
	StartTime    string  `json:"startTime" validate:"required"`
	EndTime      string  `json:"endTime" validate:"required"`
	DepartmentID *string `json:"departmentId,omitempty"`
	MachineID    *string `json:"machineId,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

type UpdateShiftInput struct {
	WorkerID     *string `json:"workerId,omitempty"`
	Date         *string `json:"date,omitempty"`
	StartTime    *string `json:"startTime,omitempty"`
	EndTime      *string `json:"endTime,omitempty"`
	DepartmentID *string `json:"departmentId,omitempty"`
	MachineID    *string `json:"machineId,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}
