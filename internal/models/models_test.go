package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/MarwahManan/Hackathon-2/internal/models"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_JSONFieldNamesAreCamelCase(t *testing.T) {
	desc := "Test Description"
	due := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	task := models.Task{
		ID:          uuid.Must(uuid.NewV4()),
		UserID:      uuid.Must(uuid.NewV4()),
		Title:       "Test Task",
		Description: &desc,
		DueDate:     &due,
	}

	data, err := json.Marshal(task)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	for _, key := range []string{"id", "userId", "title", "description", "isCompleted", "dueDate", "recurrencePattern", "recurrenceEndDate", "createdAt", "updatedAt"} {
		assert.Contains(t, fields, key)
	}
	assert.NotContains(t, fields, "user_id")
	assert.NotContains(t, fields, "is_completed")
}

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	user := models.User{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        "a@example.com",
		PasswordHash: "$2a$10$secret",
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
}

func TestValidRecurrencePattern(t *testing.T) {
	assert.True(t, models.ValidRecurrencePattern("DAILY"))
	assert.True(t, models.ValidRecurrencePattern("WEEKLY"))
	assert.True(t, models.ValidRecurrencePattern("MONTHLY"))
	assert.False(t, models.ValidRecurrencePattern("daily"))
	assert.False(t, models.ValidRecurrencePattern("YEARLY"))
	assert.False(t, models.ValidRecurrencePattern(""))
}
