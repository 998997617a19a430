package domain

// Document is the full board as one exportable payload: the five named
// top-level collections the original flat-file backend persisted. Slices are
// always non-nil so the exported JSON keeps every collection present.
type Document struct {
	Workers       []Worker       `json:"workers"`
	Machines      []Machine      `json:"machines"`
	Departments   []Department   `json:"departments"`
	Shifts        []Shift        `json:"shifts"`
	Notifications []Notification `json:"notifications"`
}
