package services

import (
	"fmt"
	"time"

	"github.com/MarwahManan/Hackathon-2/internal/cache"
	"github.com/MarwahManan/Hackathon-2/internal/models"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

const (
	taskCacheTTL = 30 * time.Minute
	listCacheTTL = 10 * time.Minute
)

// CachedTaskService is a read-through cache in front of a TaskService. Cache
// keys are scoped per owner, so one user's entries can never satisfy another
// user's read. Any mutation drops all of that user's entries. Cache failures
// fall back to the database silently.
type CachedTaskService struct {
	inner TaskService
	cache *cache.RedisCache
}

func NewCachedTaskService(inner TaskService, cacheInstance *cache.RedisCache) *CachedTaskService {
	return &CachedTaskService{inner: inner, cache: cacheInstance}
}

func taskKey(userID, id uuid.UUID) string {
	return fmt.Sprintf("tasks:user:%s:task:%s", userID, id)
}

func listKey(userID uuid.UUID) string {
	return fmt.Sprintf("tasks:user:%s:list", userID)
}

func userPattern(userID uuid.UUID) string {
	return fmt.Sprintf("tasks:user:%s:*", userID)
}

func (s *CachedTaskService) Create(db *gorm.DB, userID uuid.UUID, input TaskCreateInput) (models.Task, error) {
	task, err := s.inner.Create(db, userID, input)
	if err != nil {
		return task, err
	}
	s.cache.DeletePattern(userPattern(userID))
	return task, nil
}

func (s *CachedTaskService) GetByID(db *gorm.DB, id, userID uuid.UUID) (models.Task, error) {
	var cached models.Task
	if err := s.cache.Get(taskKey(userID, id), &cached); err == nil {
		return cached, nil
	}

	task, err := s.inner.GetByID(db, id, userID)
	if err != nil {
		return task, err
	}
	s.cache.Set(taskKey(userID, id), task, taskCacheTTL)
	return task, nil
}

func (s *CachedTaskService) List(db *gorm.DB, userID uuid.UUID) ([]models.Task, error) {
	var cached []models.Task
	if err := s.cache.Get(listKey(userID), &cached); err == nil {
		return cached, nil
	}

	tasks, err := s.inner.List(db, userID)
	if err != nil {
		return tasks, err
	}
	s.cache.Set(listKey(userID), tasks, listCacheTTL)
	return tasks, nil
}

// ListCalendar is not cached: the date range makes the key space unbounded.
func (s *CachedTaskService) ListCalendar(db *gorm.DB, userID uuid.UUID, start, end *time.Time) ([]models.Task, error) {
	return s.inner.ListCalendar(db, userID, start, end)
}

func (s *CachedTaskService) Update(db *gorm.DB, id, userID uuid.UUID, patch TaskUpdateInput) (models.Task, error) {
	task, err := s.inner.Update(db, id, userID, patch)
	if err != nil {
		return task, err
	}
	s.cache.DeletePattern(userPattern(userID))
	return task, nil
}

func (s *CachedTaskService) Delete(db *gorm.DB, id, userID uuid.UUID) error {
	if err := s.inner.Delete(db, id, userID); err != nil {
		return err
	}
	s.cache.DeletePattern(userPattern(userID))
	return nil
}
