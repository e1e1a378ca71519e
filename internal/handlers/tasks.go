package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/MarwahManan/Hackathon-2/internal/middleware"
	"github.com/MarwahManan/Hackathon-2/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type TaskHandler struct {
	db          *gorm.DB
	taskService services.TaskService
}

func NewTaskHandler(db *gorm.DB, taskService services.TaskService) *TaskHandler {
	return &TaskHandler{db: db, taskService: taskService}
}

type taskCreateRequest struct {
	Title             string     `json:"title" binding:"required"`
	Description       *string    `json:"description"`
	DueDate           *time.Time `json:"dueDate"`
	RecurrencePattern *string    `json:"recurrencePattern"`
	RecurrenceEndDate *time.Time `json:"recurrenceEndDate"`
}

type taskUpdateRequest struct {
	Title             *string    `json:"title"`
	Description       *string    `json:"description"`
	IsCompleted       *bool      `json:"isCompleted"`
	DueDate           *time.Time `json:"dueDate"`
	RecurrencePattern *string    `json:"recurrencePattern"`
	RecurrenceEndDate *time.Time `json:"recurrenceEndDate"`
}

// CreateTask handles POST /api/tasks.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	var req taskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Title is required",
			"code":  "VALIDATION_ERROR",
		})
		return
	}

	task, err := h.taskService.Create(h.db, userID, services.TaskCreateInput{
		Title:             req.Title,
		Description:       req.Description,
		DueDate:           req.DueDate,
		RecurrencePattern: req.RecurrencePattern,
		RecurrenceEndDate: req.RecurrenceEndDate,
	})
	if err != nil {
		handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTasks handles GET /api/tasks.
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	tasks, err := h.taskService.List(h.db, userID)
	if err != nil {
		handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetCalendarTasks handles GET /api/tasks/calendar?start_date=&end_date=.
func (h *TaskHandler) GetCalendarTasks(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	start, err := parseDateParam(c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "start_date must be an RFC 3339 timestamp or YYYY-MM-DD date",
			"code":  "VALIDATION_ERROR",
		})
		return
	}
	end, err := parseDateParam(c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "end_date must be an RFC 3339 timestamp or YYYY-MM-DD date",
			"code":  "VALIDATION_ERROR",
		})
		return
	}

	tasks, err := h.taskService.ListCalendar(h.db, userID, start, end)
	if err != nil {
		handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTaskByID handles GET /api/tasks/:id.
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetByID(h.db, id, userID)
	if err != nil {
		handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask handles PUT /api/tasks/:id.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req taskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
			"code":  "VALIDATION_ERROR",
		})
		return
	}

	task, err := h.taskService.Update(h.db, id, userID, services.TaskUpdateInput{
		Title:             req.Title,
		Description:       req.Description,
		IsCompleted:       req.IsCompleted,
		DueDate:           req.DueDate,
		RecurrencePattern: req.RecurrencePattern,
		RecurrenceEndDate: req.RecurrenceEndDate,
	})
	if err != nil {
		handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(h.db, id, userID); err != nil {
		handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
		"id":      id.String(),
	})
}

func parseTaskID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid task ID",
			"code":  "VALIDATION_ERROR",
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseDateParam accepts RFC 3339 timestamps or bare dates; an empty value
// means the bound is unset.
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return &ts, nil
	}
	ts, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func respondUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": "Invalid or missing authentication token",
		"code":  "UNAUTHORIZED",
	})
}

// handleTaskError translates service errors into API responses. Missing and
// foreign-owned tasks share the 404 so existence is never disclosed.
func handleTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Task not found",
			"code":  "NOT_FOUND",
		})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  "VALIDATION_ERROR",
		})
	default:
		log.Printf("task request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "An internal server error occurred",
			"code":  "INTERNAL_ERROR",
		})
	}
}
