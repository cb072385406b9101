package gallery

import (
	"context"
	"testing"

	"ielts-academy/backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(store.NewClient(store.NewMemory()))
}

func TestCreateValidatesCategory(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Create(ctx, CreateImageInput{Title: "x", URL: "https://x/y.jpg", Category: "selfies"})
	assert.True(t, IsErrBadRequest(err))

	created, err := svc.Create(ctx, CreateImageInput{
		Title:    "Modern Classroom",
		URL:      "https://images.example.com/classroom.jpg",
		Category: CategoryClassroom,
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
}

func TestGetByCategory(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	classroom, err := svc.Create(ctx, CreateImageInput{Title: "Classroom", URL: "https://x/a.jpg", Category: CategoryClassroom})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateImageInput{Title: "Ceremony", URL: "https://x/b.jpg", Category: CategoryAchievements})
	require.NoError(t, err)

	got, err := svc.GetByCategory(ctx, CategoryClassroom)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, classroom.ID, got[0].ID)

	all, err := svc.GetByCategory(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.GetByCategory(ctx, "holidays")
	assert.True(t, IsErrBadRequest(err))
}

func TestGetByCategorySkipsInactive(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	off := false
	_, err := svc.Create(ctx, CreateImageInput{Title: "Old", URL: "https://x/c.jpg", Category: CategoryEvents, IsActive: &off})
	require.NoError(t, err)

	got, err := svc.GetByCategory(ctx, CategoryEvents)
	require.NoError(t, err)
	assert.Empty(t, got)
}
