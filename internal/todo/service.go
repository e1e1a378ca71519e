package todo

import (
	"errors"
	"fmt"

	"github.com/MarwahManan/Hackathon-2/internal/validation"
)

// Service wraps the repository with validation and produces the user-facing
// result messages. Every operation returns a ready-to-print message so the
// CLI layer never has to interpret errors itself.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// ViewAll returns all tasks in creation order. Always succeeds.
func (s *Service) ViewAll() []Todo {
	return s.repo.GetAll()
}

// Add validates and stores a new task.
func (s *Service) Add(description string) (Todo, string, bool) {
	trimmed, err := validation.Description(description)
	if err != nil {
		return Todo{}, errorMessage(err), false
	}

	t := s.repo.Add(trimmed)
	return t, fmt.Sprintf("✓ Task added successfully (ID: %d)", t.ID), true
}

// Update validates both the ID and the new description before touching the
// repository.
func (s *Service) Update(id int, description string) (string, bool) {
	if err := validation.TaskID(id); err != nil {
		return errorMessage(err), false
	}
	trimmed, err := validation.Description(description)
	if err != nil {
		return errorMessage(err), false
	}

	if _, ok := s.repo.Update(id, trimmed); !ok {
		return "✗ Error: Task not found", false
	}
	return fmt.Sprintf("✓ Task %d updated successfully", id), true
}

// Delete removes a task by ID.
func (s *Service) Delete(id int) (string, bool) {
	if err := validation.TaskID(id); err != nil {
		return errorMessage(err), false
	}

	if !s.repo.Delete(id) {
		return "✗ Error: Task not found", false
	}
	return fmt.Sprintf("✓ Task %d deleted successfully", id), true
}

// Complete marks a task as done. Completing an already-complete task is a
// success with an informational message rather than a state change.
func (s *Service) Complete(id int) (string, bool) {
	if err := validation.TaskID(id); err != nil {
		return errorMessage(err), false
	}

	existing, ok := s.repo.GetByID(id)
	if !ok {
		return "✗ Error: Task not found", false
	}
	if existing.Completed {
		return fmt.Sprintf("ℹ Task %d is already complete", id), true
	}

	if _, ok := s.repo.MarkComplete(id); !ok {
		return "✗ Error: Task not found", false
	}
	return fmt.Sprintf("✓ Task %d marked as complete", id), true
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, validation.ErrEmptyInput):
		return "✗ Error: Task description cannot be empty"
	case errors.Is(err, validation.ErrTooLong):
		return "✗ Error: Task description cannot exceed 500 characters"
	case errors.Is(err, validation.ErrInvalidID):
		return "✗ Error: Task ID must be a positive integer"
	default:
		return fmt.Sprintf("✗ Error: %v", err)
	}
}
