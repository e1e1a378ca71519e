package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MarwahManan/Hackathon-2/internal/models"
	"github.com/MarwahManan/Hackathon-2/internal/validation"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// TaskCreateInput carries the fields a client may set when creating a task.
type TaskCreateInput struct {
	Title             string
	Description       *string
	DueDate           *time.Time
	RecurrencePattern *string
	RecurrenceEndDate *time.Time
}

// TaskUpdateInput is a partial patch; nil fields are left untouched. The task
// ID and owner are deliberately absent so they can never be altered.
type TaskUpdateInput struct {
	Title             *string
	Description       *string
	IsCompleted       *bool
	DueDate           *time.Time
	RecurrencePattern *string
	RecurrenceEndDate *time.Time
}

// TaskService owns all task reads and writes. Every query carries the owner's
// user ID, so a task belonging to someone else is indistinguishable from a
// missing one: both surface as gorm.ErrRecordNotFound.
type TaskService interface {
	Create(db *gorm.DB, userID uuid.UUID, input TaskCreateInput) (models.Task, error)
	GetByID(db *gorm.DB, id, userID uuid.UUID) (models.Task, error)
	List(db *gorm.DB, userID uuid.UUID) ([]models.Task, error)
	ListCalendar(db *gorm.DB, userID uuid.UUID, start, end *time.Time) ([]models.Task, error)
	Update(db *gorm.DB, id, userID uuid.UUID, patch TaskUpdateInput) (models.Task, error)
	Delete(db *gorm.DB, id, userID uuid.UUID) error
}

type TaskServiceImpl struct{}

func NewTaskService() *TaskServiceImpl {
	return &TaskServiceImpl{}
}

func (s *TaskServiceImpl) Create(db *gorm.DB, userID uuid.UUID, input TaskCreateInput) (models.Task, error) {
	title, err := validation.Text(input.Title, validation.MaxTitleLen)
	if err != nil {
		return models.Task{}, titleError(err)
	}

	description, err := normalizeDescription(input.Description)
	if err != nil {
		return models.Task{}, err
	}

	if err := validateRecurrence(input.RecurrencePattern, input.RecurrenceEndDate); err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		UserID:            userID,
		Title:             title,
		Description:       description,
		DueDate:           input.DueDate,
		RecurrencePattern: input.RecurrencePattern,
		RecurrenceEndDate: input.RecurrenceEndDate,
	}
	if err := db.Create(&task).Error; err != nil {
		return models.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

func (s *TaskServiceImpl) GetByID(db *gorm.DB, id, userID uuid.UUID) (models.Task, error) {
	var task models.Task
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&task).Error
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// List returns the user's tasks, newest first.
func (s *TaskServiceImpl) List(db *gorm.DB, userID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListCalendar returns the user's dated tasks ordered by due date, with
// creation time breaking ties. Start and end bound the due date when given.
func (s *TaskServiceImpl) ListCalendar(db *gorm.DB, userID uuid.UUID, start, end *time.Time) ([]models.Task, error) {
	query := db.Where("user_id = ? AND due_date IS NOT NULL", userID)
	if start != nil {
		query = query.Where("due_date >= ?", *start)
	}
	if end != nil {
		query = query.Where("due_date <= ?", *end)
	}

	var tasks []models.Task
	err := query.Order("due_date ASC").Order("created_at ASC").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) Update(db *gorm.DB, id, userID uuid.UUID, patch TaskUpdateInput) (models.Task, error) {
	if patch.Title != nil {
		title, err := validation.Text(*patch.Title, validation.MaxTitleLen)
		if err != nil {
			return models.Task{}, titleError(err)
		}
		patch.Title = &title
	}
	if patch.Description != nil {
		description, err := normalizeDescription(patch.Description)
		if err != nil {
			return models.Task{}, err
		}
		patch.Description = description
	}

	var task models.Task
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
			return err
		}

		if patch.Title != nil {
			task.Title = *patch.Title
		}
		if patch.Description != nil {
			task.Description = patch.Description
		}
		if patch.IsCompleted != nil {
			task.IsCompleted = *patch.IsCompleted
		}
		if patch.DueDate != nil {
			task.DueDate = patch.DueDate
		}
		if patch.RecurrencePattern != nil {
			task.RecurrencePattern = patch.RecurrencePattern
		}
		if patch.RecurrenceEndDate != nil {
			task.RecurrenceEndDate = patch.RecurrenceEndDate
		}

		// The invariant holds on the merged state, not just the patch.
		if err := validateRecurrence(task.RecurrencePattern, task.RecurrenceEndDate); err != nil {
			return err
		}

		task.UpdatedAt = time.Now()
		return tx.Save(&task).Error
	})
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (s *TaskServiceImpl) Delete(db *gorm.DB, id, userID uuid.UUID) error {
	result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// normalizeDescription trims the description and turns a blank one into nil.
func normalizeDescription(description *string) (*string, error) {
	if description == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil, nil
	}
	if _, err := validation.Text(trimmed, validation.MaxLongDescriptionLen); err != nil {
		return nil, fmt.Errorf("%w: description cannot exceed %d characters", ErrInvalidInput, validation.MaxLongDescriptionLen)
	}
	return &trimmed, nil
}

func validateRecurrence(pattern *string, endDate *time.Time) error {
	if pattern != nil && !models.ValidRecurrencePattern(*pattern) {
		return fmt.Errorf("%w: recurrence pattern must be DAILY, WEEKLY or MONTHLY", ErrInvalidInput)
	}
	if endDate != nil && pattern == nil {
		return fmt.Errorf("%w: recurrence end date requires a recurrence pattern", ErrInvalidInput)
	}
	return nil
}

func titleError(err error) error {
	switch {
	case errors.Is(err, validation.ErrEmptyInput):
		return fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
	case errors.Is(err, validation.ErrTooLong):
		return fmt.Errorf("%w: title cannot exceed %d characters", ErrInvalidInput, validation.MaxTitleLen)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
}
