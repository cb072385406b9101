package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(ch <-chan json.RawMessage, n int, t *testing.T) []json.RawMessage {
	t.Helper()
	var out []json.RawMessage
	for len(out) < n {
		select {
		case snap := <-ch:
			out = append(out, snap)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for snapshot %d of %d", len(out)+1, n)
		}
	}
	return out
}

func TestSubscribeDeliversInitialSnapshot(t *testing.T) {
	ctx := context.Background()
	c := NewClient(NewMemory())
	require.NoError(t, c.Set(ctx, "courses/c1", map[string]interface{}{"title": "Mock Test"}))

	ch := make(chan json.RawMessage, 16)
	cancel := c.Subscribe("courses", func(snap json.RawMessage) { ch <- snap })
	defer cancel()

	snaps := collect(ch, 1, t)
	var got map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(snaps[0], &got))
	assert.Equal(t, "Mock Test", got["c1"]["title"])
}

func TestSubscribeSeesOwnWrites(t *testing.T) {
	ctx := context.Background()
	c := NewClient(NewMemory())

	ch := make(chan json.RawMessage, 16)
	cancel := c.Subscribe("courses", func(snap json.RawMessage) { ch <- snap })
	defer cancel()

	collect(ch, 1, t) // initial

	require.NoError(t, c.Set(ctx, "courses/c1", map[string]interface{}{"title": "a"}))
	require.NoError(t, c.Set(ctx, "courses/c2", map[string]interface{}{"title": "b"}))
	require.NoError(t, c.Delete(ctx, "courses/c1"))

	// One callback per write; the last snapshot reflects all three.
	snaps := collect(ch, 3, t)
	var got map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(snaps[len(snaps)-1], &got))
	_, hasC1 := got["c1"]
	assert.False(t, hasC1)
	assert.Equal(t, "b", got["c2"]["title"])
}

func TestSubscribePathOverlap(t *testing.T) {
	ctx := context.Background()
	c := NewClient(NewMemory())

	ch := make(chan json.RawMessage, 16)
	cancel := c.Subscribe("homeContent/features", func(snap json.RawMessage) { ch <- snap })
	defer cancel()
	collect(ch, 1, t)

	// A write beneath the subscribed path notifies.
	require.NoError(t, c.Set(ctx, "homeContent/features/f1", map[string]interface{}{"title": "x"}))
	collect(ch, 1, t)

	// A write to an unrelated sibling does not.
	require.NoError(t, c.Set(ctx, "homeContent/gallery/g1", map[string]interface{}{"title": "y"}))
	select {
	case <-ch:
		t.Fatal("unrelated write delivered a snapshot")
	case <-time.After(100 * time.Millisecond):
	}

	// A write above the subscribed path notifies too.
	require.NoError(t, c.Set(ctx, "homeContent", map[string]interface{}{
		"features": map[string]interface{}{"f2": map[string]interface{}{"title": "z"}},
	}))
	snaps := collect(ch, 1, t)
	var got map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(snaps[0], &got))
	assert.Contains(t, got, "f2")
}

func TestSubscribeCancelStopsDelivery(t *testing.T) {
	ctx := context.Background()
	c := NewClient(NewMemory())

	ch := make(chan json.RawMessage, 16)
	cancel := c.Subscribe("courses", func(snap json.RawMessage) { ch <- snap })
	collect(ch, 1, t)

	cancel()
	cancel() // safe to call twice

	require.NoError(t, c.Set(ctx, "courses/c1", map[string]interface{}{"title": "late"}))
	select {
	case <-ch:
		t.Fatal("cancelled subscription received a snapshot")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUpdateEmptyFieldsIsNoop(t *testing.T) {
	ctx := context.Background()
	c := NewClient(NewMemory())

	ch := make(chan json.RawMessage, 16)
	cancel := c.Subscribe("courses", func(snap json.RawMessage) { ch <- snap })
	defer cancel()
	collect(ch, 1, t)

	require.NoError(t, c.Update(ctx, "courses/c1", map[string]interface{}{}))
	select {
	case <-ch:
		t.Fatal("empty update published a notification")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWriteErrorsCarryOpAndPath(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	c := NewClient(m)

	// Root must stay an object; setting a scalar at the root fails.
	err := c.Set(ctx, "", "scalar")
	require.Error(t, err)
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "set", se.Op)
}
