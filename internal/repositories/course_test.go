package repositories

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-lesson-planner/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveUser(t *testing.T, db *sqlx.DB, username string) int64 {
	t.Helper()
	id, err := NewUserWriteRepository(db, nil).Save(context.Background(), username, "hash")
	require.NoError(t, err)
	return id
}

func TestCourseWriteRepository_Save(t *testing.T) {
	db, cleanup := setupSQLite(t)
	defer cleanup()

	ctx := context.Background()
	aliceID := saveUser(t, db, "alice")
	repo := NewCourseWriteRepository(db, nil)

	id, err := repo.Save(ctx, &models.Course{
		UserID:   aliceID,
		Name:     "Spanish",
		Weekdays: strPtr("Mon,Wed"),
		Time:     strPtr(""),
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	course, err := NewCourseReadRepository(db, nil).GetByIDAndUserID(ctx, id, aliceID)
	require.NoError(t, err)
	require.NotNil(t, course)
	assert.Equal(t, "Spanish", course.Name)
	assert.Nil(t, course.Description)
	assert.Equal(t, strPtr("Mon,Wed"), course.Weekdays)
	assert.Equal(t, strPtr(""), course.Time)
}

func TestCourseWriteRepository_SaveUnknownOwner(t *testing.T) {
	db, cleanup := setupSQLite(t)
	defer cleanup()

	_, err := NewCourseWriteRepository(db, nil).Save(context.Background(), &models.Course{UserID: 42, Name: "Ghost"})
	assert.Error(t, err)
}

func TestCourseReadRepository_Ownership(t *testing.T) {
	db, cleanup := setupSQLite(t)
	defer cleanup()

	ctx := context.Background()
	aliceID := saveUser(t, db, "alice")
	bobID := saveUser(t, db, "bob")

	writeRepo := NewCourseWriteRepository(db, nil)
	readRepo := NewCourseReadRepository(db, nil)

	spanishID, err := writeRepo.Save(ctx, &models.Course{UserID: aliceID, Name: "Spanish"})
	require.NoError(t, err)
	frenchID, err := writeRepo.Save(ctx, &models.Course{UserID: aliceID, Name: "French"})
	require.NoError(t, err)
	_, err = writeRepo.Save(ctx, &models.Course{UserID: bobID, Name: "Chess"})
	require.NoError(t, err)

	t.Run("ListOwned", func(t *testing.T) {
		courses, err := readRepo.ListByUserID(ctx, aliceID)
		require.NoError(t, err)
		require.Len(t, courses, 2)
		assert.Equal(t, spanishID, courses[0].ID)
		assert.Equal(t, frenchID, courses[1].ID)
	})

	t.Run("ListEmpty", func(t *testing.T) {
		courses, err := readRepo.ListByUserID(ctx, 9999)
		require.NoError(t, err)
		assert.NotNil(t, courses)
		assert.Empty(t, courses)
	})

	t.Run("GetOwned", func(t *testing.T) {
		course, err := readRepo.GetByIDAndUserID(ctx, spanishID, aliceID)
		require.NoError(t, err)
		require.NotNil(t, course)
		assert.Equal(t, aliceID, course.UserID)
	})

	t.Run("GetForeignLooksMissing", func(t *testing.T) {
		course, err := readRepo.GetByIDAndUserID(ctx, spanishID, bobID)
		assert.NoError(t, err)
		assert.Nil(t, course)
	})

	t.Run("GetMissing", func(t *testing.T) {
		course, err := readRepo.GetByIDAndUserID(ctx, 9999, aliceID)
		assert.NoError(t, err)
		assert.Nil(t, course)
	})
}

func TestCourseRepositories_Postgres(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	ctx := context.Background()
	aliceID := saveUser(t, db, "alice")

	id, err := NewCourseWriteRepository(db, nil).Save(ctx, &models.Course{UserID: aliceID, Name: "Spanish", Mode: strPtr("online")})
	require.NoError(t, err)

	courses, err := NewCourseReadRepository(db, nil).ListByUserID(ctx, aliceID)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, id, courses[0].ID)
	assert.Equal(t, strPtr("online"), courses[0].Mode)
}
