package content

import (
	"context"
	"encoding/json"

	"ielts-academy/backend/internal/store"
)

const (
	HomePath    = "homeContent/general"
	ContactPath = "homeContent/contactInfo"
)

// Service handles the two singleton records. Unlike the collections there is
// no id handling and no delete; updates are full overwrites.
type Service struct {
	store *store.Client
}

func NewService(st *store.Client) *Service {
	return &Service{store: st}
}

// GetHome returns nil when the record has never been written.
func (s *Service) GetHome(ctx context.Context) (*HomeContent, error) {
	var snap json.RawMessage
	if err := s.store.Get(ctx, HomePath, &snap); err != nil {
		return nil, err
	}
	if len(snap) == 0 || string(snap) == "null" {
		return nil, nil
	}
	var h HomeContent
	if err := json.Unmarshal(snap, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *Service) SetHome(ctx context.Context, h HomeContent) error {
	h.Trim()
	return s.store.Set(ctx, HomePath, h)
}

func (s *Service) SubscribeHome(fn func(*HomeContent)) (cancel func()) {
	return s.store.Subscribe(HomePath, func(snap json.RawMessage) {
		fn(decodeHome(snap))
	})
}

func (s *Service) GetContact(ctx context.Context) (*ContactInfo, error) {
	var snap json.RawMessage
	if err := s.store.Get(ctx, ContactPath, &snap); err != nil {
		return nil, err
	}
	if len(snap) == 0 || string(snap) == "null" {
		return nil, nil
	}
	var c ContactInfo
	if err := json.Unmarshal(snap, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) SetContact(ctx context.Context, c ContactInfo) error {
	c.Trim()
	return s.store.Set(ctx, ContactPath, c)
}

func (s *Service) SubscribeContact(fn func(*ContactInfo)) (cancel func()) {
	return s.store.Subscribe(ContactPath, func(snap json.RawMessage) {
		fn(decodeContact(snap))
	})
}

func decodeHome(snap json.RawMessage) *HomeContent {
	if len(snap) == 0 || string(snap) == "null" {
		return nil
	}
	var h HomeContent
	if err := json.Unmarshal(snap, &h); err != nil {
		return nil
	}
	return &h
}

func decodeContact(snap json.RawMessage) *ContactInfo {
	if len(snap) == 0 || string(snap) == "null" {
		return nil
	}
	var c ContactInfo
	if err := json.Unmarshal(snap, &c); err != nil {
		return nil
	}
	return &c
}
