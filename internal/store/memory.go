package store

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"
)

// Memory is an in-process Backend with Realtime-Database path semantics:
// values form a JSON tree, setting nil deletes, deleting prunes empty
// parents. It backs local development (no FIREBASE_DATABASE_URL configured)
// and the test suite.
type Memory struct {
	mu   sync.RWMutex
	root map[string]interface{}
	seq  int64
}

func NewMemory() *Memory {
	return &Memory{root: map[string]interface{}{}}
}

func (m *Memory) Get(ctx context.Context, path string, v interface{}) error {
	m.mu.RLock()
	node, ok := m.lookup(splitPath(path))
	var raw []byte
	var err error
	if ok {
		raw, err = json.Marshal(node)
	} else {
		raw = []byte("null")
	}
	m.mu.RUnlock()
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

func (m *Memory) Set(ctx context.Context, path string, v interface{}) error {
	val, err := normalize(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if val == nil {
		m.remove(splitPath(path))
		return nil
	}
	return m.put(splitPath(path), val)
}

func (m *Memory) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	val, err := normalize(fields)
	if err != nil {
		return err
	}
	patch, _ := val.(map[string]interface{})

	m.mu.Lock()
	defer m.mu.Unlock()

	segs := splitPath(path)
	node, ok := m.lookup(segs)
	target, isMap := node.(map[string]interface{})
	if !ok || !isMap {
		target = map[string]interface{}{}
	}
	for k, v := range patch {
		if v == nil {
			delete(target, k)
		} else {
			target[k] = v
		}
	}
	if len(target) == 0 {
		m.remove(segs)
		return nil
	}
	return m.put(segs, target)
}

func (m *Memory) Delete(ctx context.Context, path string) error {
	m.mu.Lock()
	m.remove(splitPath(path))
	m.mu.Unlock()
	return nil
}

func (m *Memory) Push(ctx context.Context, path string, v interface{}) (string, error) {
	val, err := normalize(v)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	// Time-ordered keys, same shape as the hosted store's push ids.
	key := "-" + strconv.FormatInt(time.Now().UnixNano(), 36) + strconv.FormatInt(m.seq, 36)
	if err := m.put(append(splitPath(path), key), val); err != nil {
		return "", err
	}
	return key, nil
}

// normalize round-trips v through JSON so structs, maps and typed slices all
// land in the tree as plain map[string]interface{} / []interface{} values.
func normalize(v interface{}) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Memory) lookup(segs []string) (interface{}, bool) {
	var node interface{} = m.root
	for _, s := range segs {
		mp, ok := node.(map[string]interface{})
		if !ok {
			return nil, false
		}
		node, ok = mp[s]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

func (m *Memory) put(segs []string, val interface{}) error {
	if len(segs) == 0 {
		mp, ok := val.(map[string]interface{})
		if !ok {
			return &Error{Op: "set", Path: "/", Err: errRootNotObject}
		}
		m.root = mp
		return nil
	}
	cur := m.root
	for _, s := range segs[:len(segs)-1] {
		next, ok := cur[s].(map[string]interface{})
		if !ok {
			next = map[string]interface{}{}
			cur[s] = next
		}
		cur = next
	}
	cur[segs[len(segs)-1]] = val
	return nil
}

func (m *Memory) remove(segs []string) {
	if len(segs) == 0 {
		m.root = map[string]interface{}{}
		return
	}
	parents := make([]map[string]interface{}, 0, len(segs))
	cur := m.root
	for _, s := range segs[:len(segs)-1] {
		parents = append(parents, cur)
		next, ok := cur[s].(map[string]interface{})
		if !ok {
			return
		}
		cur = next
	}
	parents = append(parents, cur)
	delete(cur, segs[len(segs)-1])

	// Prune now-empty ancestors, mirroring the hosted store.
	for i := len(parents) - 1; i > 0; i-- {
		if len(parents[i]) == 0 {
			delete(parents[i-1], segs[i-1])
		}
	}
}
