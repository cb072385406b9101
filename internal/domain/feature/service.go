package feature

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"ielts-academy/backend/internal/store"

	"github.com/google/uuid"
)

const Path = "homeContent/features"

var (
	ErrNotFound   = errors.New("feature not found")
	ErrBadRequest = errors.New("bad request")
)

func IsErrNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
func IsErrBadRequest(err error) bool { return errors.Is(err, ErrBadRequest) }

type Service struct {
	store *store.Client
}

func NewService(st *store.Client) *Service {
	return &Service{store: st}
}

// GetAll returns every feature sorted by display order. A record without an
// order sorts as 0.
func (s *Service) GetAll(ctx context.Context) ([]Feature, error) {
	var raw map[string]Feature
	if err := s.store.Get(ctx, Path, &raw); err != nil {
		return nil, err
	}
	return toList(raw), nil
}

func (s *Service) GetActive(ctx context.Context) ([]Feature, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Feature, 0, len(all))
	for _, f := range all {
		if f.IsActive {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Feature, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	var snap json.RawMessage
	if err := s.store.Get(ctx, Path+"/"+id, &snap); err != nil {
		return nil, err
	}
	if len(snap) == 0 || string(snap) == "null" {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	var f Feature
	if err := json.Unmarshal(snap, &f); err != nil {
		return nil, err
	}
	f.ID = id
	return &f, nil
}

func (s *Service) Create(ctx context.Context, in CreateFeatureInput) (*Feature, error) {
	in.Trim()
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrBadRequest)
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	f := Feature{
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		IsActive:    isActive,
		Order:       in.Order,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	id := "feature_" + uuid.NewString()
	if err := s.store.Set(ctx, Path+"/"+id, f); err != nil {
		return nil, err
	}
	f.ID = id
	return &f, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateFeatureInput) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	return s.store.Update(ctx, Path+"/"+id, in.Fields())
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	return s.store.Delete(ctx, Path+"/"+id)
}

func (s *Service) Subscribe(fn func([]Feature)) (cancel func()) {
	return s.store.Subscribe(Path, func(snap json.RawMessage) {
		var raw map[string]Feature
		if len(snap) > 0 {
			_ = json.Unmarshal(snap, &raw)
		}
		fn(toList(raw))
	})
}

func toList(raw map[string]Feature) []Feature {
	out := make([]Feature, 0, len(raw))
	for id, f := range raw {
		f.ID = id
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}
