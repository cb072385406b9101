package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySetGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	err := m.Set(ctx, "courses/c1", map[string]interface{}{"title": "IELTS Main Course", "fee": "৳4,000"})
	require.NoError(t, err)

	var got map[string]interface{}
	err = m.Get(ctx, "courses/c1", &got)
	require.NoError(t, err)
	assert.Equal(t, "IELTS Main Course", got["title"])

	var title string
	err = m.Get(ctx, "courses/c1/title", &title)
	require.NoError(t, err)
	assert.Equal(t, "IELTS Main Course", title)
}

func TestMemoryGetAbsentIsNull(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	var raw json.RawMessage
	err := m.Get(ctx, "nope/missing", &raw)
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}

func TestMemoryUpdateMergesShallow(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "courses/c1", map[string]interface{}{
		"title":    "Mock Test",
		"fee":      "৳500",
		"isActive": true,
	}))

	err := m.Update(ctx, "courses/c1", map[string]interface{}{"fee": "৳600"})
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, m.Get(ctx, "courses/c1", &got))
	assert.Equal(t, "৳600", got["fee"])
	assert.Equal(t, "Mock Test", got["title"])
	assert.Equal(t, true, got["isActive"])
}

func TestMemoryUpdateNilFieldDeletes(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "courses/c1", map[string]interface{}{"title": "x", "schedule": "Wed"}))
	require.NoError(t, m.Update(ctx, "courses/c1", map[string]interface{}{"schedule": nil}))

	var got map[string]interface{}
	require.NoError(t, m.Get(ctx, "courses/c1", &got))
	_, ok := got["schedule"]
	assert.False(t, ok)
}

func TestMemoryDeletePrunesEmptyAncestors(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "homeContent/features/f1", map[string]interface{}{"title": "a"}))
	require.NoError(t, m.Delete(ctx, "homeContent/features/f1"))

	var raw json.RawMessage
	require.NoError(t, m.Get(ctx, "homeContent/features", &raw))
	assert.Equal(t, "null", string(raw))
	require.NoError(t, m.Get(ctx, "homeContent", &raw))
	assert.Equal(t, "null", string(raw))
}

func TestMemoryDeleteAbsentSucceeds(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	assert.NoError(t, m.Delete(ctx, "never/existed"))
}

func TestMemorySetNilDeletes(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "teachers/t1", map[string]interface{}{"name": "x"}))
	require.NoError(t, m.Set(ctx, "teachers/t1", nil))

	var raw json.RawMessage
	require.NoError(t, m.Get(ctx, "teachers/t1", &raw))
	assert.Equal(t, "null", string(raw))
}

func TestMemoryPushGeneratesOrderedUniqueKeys(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	k1, err := m.Push(ctx, "logs", map[string]interface{}{"n": 1})
	require.NoError(t, err)
	k2, err := m.Push(ctx, "logs", map[string]interface{}{"n": 2})
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2)
	assert.True(t, k1[0] == '-')

	var got map[string]map[string]interface{}
	require.NoError(t, m.Get(ctx, "logs", &got))
	assert.Len(t, got, 2)
}

func TestMemoryStructRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	type record struct {
		Name string  `json:"name"`
		Band float64 `json:"band"`
	}

	require.NoError(t, m.Set(ctx, "t/1", record{Name: "Ahmed", Band: 8.0}))

	var got record
	require.NoError(t, m.Get(ctx, "t/1", &got))
	assert.Equal(t, record{Name: "Ahmed", Band: 8.0}, got)
}
