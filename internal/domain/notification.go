package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

type NotificationType string

const (
	NotifSwapRequest  NotificationType = "swap_request"
	NotifSwapApproved NotificationType = "swap_approved"
	NotifSwapRejected NotificationType = "swap_rejected"
	NotifInfo         NotificationType = "info"
)

// SwapMetadata is carried only by swap_request notifications; it is everything
// the respond operation needs to replay the proposal against the current shift.
type SwapMetadata struct {
	ShiftID          string `json:"shiftId"`
	OriginalWorkerID string `json:"originalWorkerId"`
	TargetWorkerID   string `json:"targetWorkerId"`
}

// Notification is immutable once created except for the read flag.
// Metadata is the typed view of the JSONB metadata column; MetadataRaw holds
// the scanned column value. EncodeMetadata/DecodeMetadata keep the two in
// sync across the repository boundary.
type Notification struct {
	ID        string           `json:"id" db:"id"`
	Message   string           `json:"message" db:"message"`
	Type      NotificationType `json:"type" db:"type"`
	Read      bool             `json:"read" db:"is_read"`
	Timestamp time.Time        `json:"timestamp" db:"created_at"`

	Metadata    *SwapMetadata   `json:"metadata,omitempty" db:"-"`
	MetadataRaw json.RawMessage `json:"-" db:"metadata"`
}

func (n *Notification) EncodeMetadata() error {
	if n.Metadata == nil {
		n.MetadataRaw = nil
		return nil
	}
	raw, err := json.Marshal(n.Metadata)
	if err != nil {
		return fmt.Errorf("encode notification metadata: %w", err)
	}
	n.MetadataRaw = raw
	return nil
}

func (n *Notification) DecodeMetadata() error {
	if len(n.MetadataRaw) == 0 {
		n.Metadata = nil
		return nil
	}
	var meta SwapMetadata
	if err := json.Unmarshal(n.MetadataRaw, &meta); err != nil {
		return fmt.Errorf("decode notification metadata: %w", err)
	}
	n.Metadata = &meta
	return nil
}
