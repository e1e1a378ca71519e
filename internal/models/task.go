package models

import (
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// Recurrence patterns accepted by the API. A task without a pattern must not
// carry a recurrence end date; the check constraint mirrors the validation.
const (
	RecurrenceDaily   = "DAILY"
	RecurrenceWeekly  = "WEEKLY"
	RecurrenceMonthly = "MONTHLY"
)

type Task struct {
	ID                uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid"`
	UserID            uuid.UUID  `json:"userId" gorm:"type:uuid;not null;index"`
	Title             string     `json:"title" gorm:"size:200;not null"`
	Description       *string    `json:"description" gorm:"size:2000"`
	IsCompleted       bool       `json:"isCompleted" gorm:"not null;default:false"`
	DueDate           *time.Time `json:"dueDate" gorm:"index"`
	RecurrencePattern *string    `json:"recurrencePattern" gorm:"size:16;check:chk_tasks_recurrence_pattern,recurrence_pattern IS NULL OR recurrence_pattern IN ('DAILY','WEEKLY','MONTHLY')"`
	RecurrenceEndDate *time.Time `json:"recurrenceEndDate" gorm:"check:chk_tasks_recurrence_end,recurrence_end_date IS NULL OR recurrence_pattern IS NOT NULL"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// BeforeCreate assigns a random task ID so the application works the same
// against postgres and the in-memory sqlite used by tests.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		id, err := uuid.NewV4()
		if err != nil {
			return err
		}
		t.ID = id
	}
	return nil
}

// ValidRecurrencePattern reports whether p is one of the accepted patterns.
func ValidRecurrencePattern(p string) bool {
	return p == RecurrenceDaily || p == RecurrenceWeekly || p == RecurrenceMonthly
}
