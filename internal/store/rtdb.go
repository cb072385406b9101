package store

import (
	"context"

	"firebase.google.com/go/v4/db"
)

// rtdb is the production backend over Firebase Realtime Database. The paths
// used by the content layer are the database's wire contract and must match
// the existing data bit-exact.
type rtdb struct {
	client *db.Client
}

func NewRealtimeBackend(client *db.Client) Backend {
	return &rtdb{client: client}
}

func (b *rtdb) Get(ctx context.Context, path string, v interface{}) error {
	return b.client.NewRef(path).Get(ctx, v)
}

func (b *rtdb) Set(ctx context.Context, path string, v interface{}) error {
	return b.client.NewRef(path).Set(ctx, v)
}

func (b *rtdb) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	return b.client.NewRef(path).Update(ctx, fields)
}

func (b *rtdb) Delete(ctx context.Context, path string) error {
	return b.client.NewRef(path).Delete(ctx)
}

func (b *rtdb) Push(ctx context.Context, path string, v interface{}) (string, error) {
	ref, err := b.client.NewRef(path).Push(ctx, v)
	if err != nil {
		return "", err
	}
	return ref.Key, nil
}
