package store

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
)

// Backend is the raw key-value store underneath the content layer. Paths are
// slash separated ("courses/course_abc", "homeContent/contactInfo"); the empty
// path addresses the root.
type Backend interface {
	Get(ctx context.Context, path string, v interface{}) error
	Set(ctx context.Context, path string, v interface{}) error
	Update(ctx context.Context, path string, fields map[string]interface{}) error
	Delete(ctx context.Context, path string) error
	Push(ctx context.Context, path string, v interface{}) (string, error)
}

// Client wraps a Backend with in-process change subscriptions. Every write
// that succeeds through this client notifies subscriptions whose path
// overlaps the written path; each subscription then re-reads its own snapshot
// and delivers it on a dedicated goroutine, so a subscriber observes its own
// writes in the order issued.
type Client struct {
	backend Backend
	hub     *hub
}

func NewClient(b Backend) *Client {
	return &Client{backend: b, hub: newHub()}
}

// Get reads the value at path into v. An absent path decodes as JSON null
// (nil maps / zero structs); it is not an error.
func (c *Client) Get(ctx context.Context, path string, v interface{}) error {
	if err := c.backend.Get(ctx, path, v); err != nil {
		return &Error{Op: "get", Path: path, Err: err}
	}
	return nil
}

// Set overwrites the value at path.
func (c *Client) Set(ctx context.Context, path string, v interface{}) error {
	if err := c.backend.Set(ctx, path, v); err != nil {
		return &Error{Op: "set", Path: path, Err: err}
	}
	c.hub.publish(path)
	return nil
}

// Update shallow-merges fields into the value at path. Only the named
// top-level fields are replaced; nested values are not merged recursively.
// Updating an absent path creates it.
func (c *Client) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if err := c.backend.Update(ctx, path, fields); err != nil {
		return &Error{Op: "update", Path: path, Err: err}
	}
	c.hub.publish(path)
	return nil
}

// Delete removes the value at path and everything nested under it.
// Deleting an absent path succeeds.
func (c *Client) Delete(ctx context.Context, path string) error {
	if err := c.backend.Delete(ctx, path); err != nil {
		return &Error{Op: "delete", Path: path, Err: err}
	}
	c.hub.publish(path)
	return nil
}

// Push appends v under a store-generated key beneath path and returns the key.
func (c *Client) Push(ctx context.Context, path string, v interface{}) (string, error) {
	key, err := c.backend.Push(ctx, path, v)
	if err != nil {
		return "", &Error{Op: "push", Path: path, Err: err}
	}
	c.hub.publish(path + "/" + key)
	return key, nil
}

// Subscribe registers fn for the value at path. fn is invoked once with the
// current snapshot and again after every overlapping write through this
// client. Snapshots for one subscription are delivered sequentially; a
// subscriber that falls behind still receives one callback per write, each
// reflecting the state at fetch time. The returned cancel releases the
// subscription and is safe to call more than once.
//
// Fetch failures inside a subscription are logged and skipped; there is no
// error callback (callers treat "no snapshot yet" as still loading).
func (c *Client) Subscribe(path string, fn func(snapshot json.RawMessage)) (cancel func()) {
	sub := c.hub.add(path)
	go c.pump(sub, path, fn)

	var once sync.Once
	return func() {
		once.Do(func() {
			c.hub.remove(sub)
		})
	}
}

func (c *Client) pump(sub *subscription, path string, fn func(json.RawMessage)) {
	deliver := func() {
		var snap json.RawMessage
		if err := c.backend.Get(context.Background(), path, &snap); err != nil {
			log.Printf("[store] subscription fetch %q failed: %v", path, err)
			return
		}
		fn(snap)
	}

	// Initial snapshot. The subscription is already registered, so a write
	// racing this fetch just queues another delivery.
	deliver()

	for sub.wait() {
		deliver()
	}
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
