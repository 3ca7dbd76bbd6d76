package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyLabel      = errors.New("time slot label cannot be empty")
	ErrInvalidSlotTime = errors.New("time slot start must be before end")
	ErrInvalidCapacity = errors.New("time slot capacity must be positive")
)

const slotTimeLayout = "15:04"

// TimeSlotDef is an admin-configured entry window. Capacity is stored for
// the dashboard; nothing in the checkout path enforces it.
type TimeSlotDef struct {
	id        uuid.UUID
	label     string
	startTime string
	endTime   string
	capacity  int
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewTimeSlotDef(label, startTime, endTime string, capacity int) (*TimeSlotDef, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrEmptyLabel
	}
	start, err := time.Parse(slotTimeLayout, startTime)
	if err != nil {
		return nil, ErrInvalidSlotTime
	}
	end, err := time.Parse(slotTimeLayout, endTime)
	if err != nil {
		return nil, ErrInvalidSlotTime
	}
	if !start.Before(end) {
		return nil, ErrInvalidSlotTime
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &TimeSlotDef{
		id:        uuid.New(),
		label:     label,
		startTime: startTime,
		endTime:   endTime,
		capacity:  capacity,
		isActive:  true,
	}, nil
}

func ReconstructTimeSlotDef(id uuid.UUID, label, startTime, endTime string, capacity int, isActive bool, createdAt, updatedAt time.Time) *TimeSlotDef {
	return &TimeSlotDef{
		id:        id,
		label:     label,
		startTime: startTime,
		endTime:   endTime,
		capacity:  capacity,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *TimeSlotDef) Resize(capacity int) error {
	if capacity <= 0 {
		return ErrInvalidCapacity
	}
	s.capacity = capacity
	return nil
}

func (s *TimeSlotDef) Activate()   { s.isActive = true }
func (s *TimeSlotDef) Deactivate() { s.isActive = false }

func (s *TimeSlotDef) ID() uuid.UUID        { return s.id }
func (s *TimeSlotDef) Label() string        { return s.label }
func (s *TimeSlotDef) StartTime() string    { return s.startTime }
func (s *TimeSlotDef) EndTime() string      { return s.endTime }
func (s *TimeSlotDef) Capacity() int        { return s.capacity }
func (s *TimeSlotDef) IsActive() bool       { return s.isActive }
func (s *TimeSlotDef) CreatedAt() time.Time { return s.createdAt }
func (s *TimeSlotDef) UpdatedAt() time.Time { return s.updatedAt }
