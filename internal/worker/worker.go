// Package worker runs the recurrence roller: a background loop that brings
// completed recurring tasks back as their next occurrence.
package worker

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/MarwahManan/Hackathon-2/internal/config"
	"github.com/MarwahManan/Hackathon-2/internal/models"

	"gorm.io/gorm"
)

// Roller periodically scans for completed tasks that carry a recurrence
// pattern and reopens them with the due date advanced by one step. A task
// whose next occurrence would fall past its recurrence end date stays
// completed for good.
type Roller struct {
	db       *gorm.DB
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewRoller(db *gorm.DB, cfg config.WorkerConfig) *Roller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Roller{
		db:       db,
		interval: cfg.PollInterval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start launches the polling loop.
func (r *Roller) Start() {
	log.Printf("Starting recurrence roller (poll interval %s)", r.interval)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				rolled, err := r.RollOnce(time.Now())
				if err != nil {
					log.Printf("recurrence roll failed: %v", err)
				} else if rolled > 0 {
					log.Printf("reopened %d recurring task(s)", rolled)
				}
			case <-r.ctx.Done():
				return
			}
		}
	}()
}

// Stop terminates the loop and waits for the in-flight pass to finish.
func (r *Roller) Stop() {
	log.Println("Stopping recurrence roller...")
	r.cancel()
	r.wg.Wait()
}

// RollOnce performs a single pass and returns how many tasks were reopened.
func (r *Roller) RollOnce(now time.Time) (int, error) {
	var tasks []models.Task
	err := r.db.
		Where("is_completed = ? AND recurrence_pattern IS NOT NULL AND due_date IS NOT NULL", true).
		Find(&tasks).Error
	if err != nil {
		return 0, fmt.Errorf("failed to load recurring tasks: %w", err)
	}

	rolled := 0
	for i := range tasks {
		task := &tasks[i]

		next, err := NextOccurrence(*task.DueDate, *task.RecurrencePattern)
		if err != nil {
			log.Printf("task %s has unusable recurrence pattern %q", task.ID, *task.RecurrencePattern)
			continue
		}
		if task.RecurrenceEndDate != nil && next.After(*task.RecurrenceEndDate) {
			continue
		}

		updates := map[string]any{
			"due_date":     next,
			"is_completed": false,
			"updated_at":   now,
		}
		if err := r.db.Model(task).Updates(updates).Error; err != nil {
			return rolled, fmt.Errorf("failed to reopen task %s: %w", task.ID, err)
		}
		rolled++
	}
	return rolled, nil
}

// NextOccurrence advances a due date by one recurrence step.
func NextOccurrence(due time.Time, pattern string) (time.Time, error) {
	switch pattern {
	case models.RecurrenceDaily:
		return due.AddDate(0, 0, 1), nil
	case models.RecurrenceWeekly:
		return due.AddDate(0, 0, 7), nil
	case models.RecurrenceMonthly:
		return due.AddDate(0, 1, 0), nil
	default:
		return time.Time{}, fmt.Errorf("unknown recurrence pattern %q", pattern)
	}
}
