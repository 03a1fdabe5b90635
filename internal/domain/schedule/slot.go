package schedule

import (
	"encoding/json"
	"fmt"
	"slices"
)

type SlotStatus string

const (
	StatusAvailable SlotStatus = "AVAILABLE"
	StatusActive    SlotStatus = "ACTIVE"
	StatusCanceled  SlotStatus = "CANCELED"
	StatusCompleted SlotStatus = "COMPLETED"
	StatusRequested SlotStatus = "REQUESTED"
)

var allStatuses = []SlotStatus{StatusAvailable, StatusActive, StatusCanceled, StatusCompleted, StatusRequested}

func (s SlotStatus) String() string {
	return string(s)
}

func (s SlotStatus) IsValid() bool {
	return slices.Contains(allStatuses, s)
}

func ParseStatus(s string) (SlotStatus, error) {
	status := SlotStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return status, nil
}

func (s *SlotStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Slot is one scheduled or schedulable occurrence of a service. Date stays as
// the server sent it; it is parsed when slots are bucketed.
type Slot struct {
	ID        int64      `json:"id"`
	ServiceID int64      `json:"serviceId"`
	Title     string     `json:"title"`
	Date      string     `json:"date"`
	Duration  int        `json:"duration"`
	Weekday   int        `json:"weekday"`
	GuestName *string    `json:"guestName,omitempty"`
	Room      *string    `json:"room,omitempty"`
	OrderTime *string    `json:"orderTime,omitempty"`
	Status    SlotStatus `json:"status"`
}

// IsBooked reports whether a guest holds the slot.
func (s Slot) IsBooked() bool {
	return s.Status == StatusActive || s.Status == StatusRequested
}

// FilterByStatus keeps slots whose status is listed, preserving order. No
// statuses means no filtering.
func FilterByStatus(slots []Slot, statuses ...SlotStatus) []Slot {
	if len(statuses) == 0 {
		return slots
	}
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if slices.Contains(statuses, s.Status) {
			out = append(out, s)
		}
	}
	return out
}
