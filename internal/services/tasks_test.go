package services_test

import (
	"strings"
	"testing"
	"time"

	"github.com/MarwahManan/Hackathon-2/internal/database"
	"github.com/MarwahManan/Hackathon-2/internal/models"
	"github.com/MarwahManan/Hackathon-2/internal/services"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "hash"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func strPtr(s string) *string { return &s }

func timePtr(ts time.Time) *time.Time { return &ts }

func TestTaskService_CreateRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTaskService()
	user := createUser(t, db, "a@example.com")

	due := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	created, err := svc.Create(db, user.ID, services.TaskCreateInput{
		Title:             "  Write tests  ",
		Description:       strPtr("  covers the happy path  "),
		DueDate:           &due,
		RecurrencePattern: strPtr(models.RecurrenceWeekly),
		RecurrenceEndDate: timePtr(due.AddDate(0, 1, 0)),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, user.ID, created.UserID)
	assert.Equal(t, "Write tests", created.Title)
	require.NotNil(t, created.Description)
	assert.Equal(t, "covers the happy path", *created.Description)
	assert.False(t, created.IsCompleted)

	got, err := svc.GetByID(db, created.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, *created.Description, *got.Description)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(due))
}

func TestTaskService_CreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTaskService()
	user := createUser(t, db, "a@example.com")

	tests := []struct {
		name  string
		input services.TaskCreateInput
	}{
		{name: "empty title", input: services.TaskCreateInput{Title: "   "}},
		{name: "title too long", input: services.TaskCreateInput{Title: strings.Repeat("t", 201)}},
		{name: "description too long", input: services.TaskCreateInput{Title: "ok", Description: strPtr(strings.Repeat("d", 2001))}},
		{name: "bad recurrence pattern", input: services.TaskCreateInput{Title: "ok", RecurrencePattern: strPtr("YEARLY")}},
		{name: "end date without pattern", input: services.TaskCreateInput{Title: "ok", RecurrenceEndDate: timePtr(time.Now())}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(db, user.ID, tt.input)
			assert.ErrorIs(t, err, services.ErrInvalidInput)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.Task{}).Count(&count).Error)
	assert.Zero(t, count, "rejected input must never reach the store")
}

func TestTaskService_BlankDescriptionBecomesNull(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTaskService()
	user := createUser(t, db, "a@example.com")

	created, err := svc.Create(db, user.ID, services.TaskCreateInput{
		Title:       "task",
		Description: strPtr("   "),
	})
	require.NoError(t, err)
	assert.Nil(t, created.Description)
}

func TestTaskService_OwnershipIsolation(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTaskService()
	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")

	task, err := svc.Create(db, alice.ID, services.TaskCreateInput{Title: "alice's task"})
	require.NoError(t, err)

	// Bob sees the same result for alice's task as for one that never existed.
	_, err = svc.GetByID(db, task.ID, bob.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = svc.Update(db, task.ID, bob.ID, services.TaskUpdateInput{Title: strPtr("hijacked")})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.Delete(db, task.ID, bob.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	list, err := svc.List(db, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Alice's task is untouched by any of it.
	got, err := svc.GetByID(db, task.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice's task", got.Title)
}

func TestTaskService_ListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTaskService()
	user := createUser(t, db, "a@example.com")

	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	for i, title := range []string{"oldest", "middle", "newest"} {
		task := models.Task{
			UserID:    user.ID,
			Title:     title,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(&task).Error)
	}

	list, err := svc.List(db, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "newest", list[0].Title)
	assert.Equal(t, "middle", list[1].Title)
	assert.Equal(t, "oldest", list[2].Title)
}

func TestTaskService_ListCalendar(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTaskService()
	user := createUser(t, db, "a@example.com")

	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	sameDue := base.AddDate(0, 0, 10)
	seed := []models.Task{
		{UserID: user.ID, Title: "undated", CreatedAt: base},
		{UserID: user.ID, Title: "late", DueDate: timePtr(base.AddDate(0, 0, 20)), CreatedAt: base},
		{UserID: user.ID, Title: "early", DueDate: timePtr(base.AddDate(0, 0, 5)), CreatedAt: base},
		{UserID: user.ID, Title: "tie second", DueDate: &sameDue, CreatedAt: base.Add(time.Hour)},
		{UserID: user.ID, Title: "tie first", DueDate: &sameDue, CreatedAt: base},
		{UserID: user.ID, Title: "out of range", DueDate: timePtr(base.AddDate(0, 2, 0)), CreatedAt: base},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	start := base
	end := base.AddDate(0, 1, 0)
	list, err := svc.ListCalendar(db, user.ID, &start, &end)
	require.NoError(t, err)

	titles := make([]string, len(list))
	for i, task := range list {
		titles[i] = task.Title
	}
	assert.Equal(t, []string{"early", "tie first", "tie second", "late"}, titles)
}

func TestTaskService_UpdatePartialPatch(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTaskService()
	user := createUser(t, db, "a@example.com")

	created, err := svc.Create(db, user.ID, services.TaskCreateInput{
		Title:       "original",
		Description: strPtr("original description"),
	})
	require.NoError(t, err)

	done := true
	updated, err := svc.Update(db, created.ID, user.ID, services.TaskUpdateInput{
		IsCompleted: &done,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)
	assert.Equal(t, "original", updated.Title, "untouched fields survive the patch")
	require.NotNil(t, updated.Description)
	assert.Equal(t, "original description", *updated.Description)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.UserID, updated.UserID)
}

func TestTaskService_UpdateRefreshesTimestamp(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTaskService()
	user := createUser(t, db, "a@example.com")

	task := models.Task{
		UserID:    user.ID,
		Title:     "stale",
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&task).Error)

	updated, err := svc.Update(db, task.ID, user.ID, services.TaskUpdateInput{Title: strPtr("fresh")})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(task.UpdatedAt))
}

func TestTaskService_UpdateValidatesMergedRecurrence(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTaskService()
	user := createUser(t, db, "a@example.com")

	created, err := svc.Create(db, user.ID, services.TaskCreateInput{Title: "plain"})
	require.NoError(t, err)

	// End date alone is invalid when the stored task has no pattern.
	_, err = svc.Update(db, created.ID, user.ID, services.TaskUpdateInput{
		RecurrenceEndDate: timePtr(time.Now().AddDate(0, 1, 0)),
	})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	// Pattern plus end date in one patch is fine.
	_, err = svc.Update(db, created.ID, user.ID, services.TaskUpdateInput{
		RecurrencePattern: strPtr(models.RecurrenceDaily),
		RecurrenceEndDate: timePtr(time.Now().AddDate(0, 1, 0)),
	})
	assert.NoError(t, err)
}

func TestTaskService_UpdateMissingTask(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTaskService()
	user := createUser(t, db, "a@example.com")

	_, err := svc.Update(db, uuid.Must(uuid.NewV4()), user.ID, services.TaskUpdateInput{Title: strPtr("x")})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTaskService_Delete(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTaskService()
	user := createUser(t, db, "a@example.com")

	created, err := svc.Create(db, user.ID, services.TaskCreateInput{Title: "doomed"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(db, created.ID, user.ID))
	assert.ErrorIs(t, svc.Delete(db, created.ID, user.ID), gorm.ErrRecordNotFound)
}

func TestTaskService_CascadeDeleteWithUser(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTaskService()
	user := createUser(t, db, "a@example.com")

	_, err := svc.Create(db, user.ID, services.TaskCreateInput{Title: "task"})
	require.NoError(t, err)

	require.NoError(t, db.Select("Tasks").Delete(&user).Error)

	list, err := svc.List(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
