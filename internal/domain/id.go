package domain

import "github.com/google/uuid"

// Entity ids are opaque strings carrying a type-letter prefix so they stay
// readable in exported documents and log lines.
const (
	ShiftIDPrefix        = "s"
	WorkerIDPrefix       = "w"
	MachineIDPrefix      = "m"
	DepartmentIDPrefix   = "d"
	NotificationIDPrefix = "n"
)

func NewShiftID() string        { return ShiftIDPrefix + uuid.NewString() }
func NewWorkerID() string       { return WorkerIDPrefix + uuid.NewString() }
func NewMachineID() string      { return MachineIDPrefix + uuid.NewString() }
func NewDepartmentID() string   { return DepartmentIDPrefix + uuid.NewString() }
func NewNotificationID() string { return NotificationIDPrefix + uuid.NewString() }
