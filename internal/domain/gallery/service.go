package gallery

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

const Path = "homeContent/gallery"

var (
	ErrNotFound   = errors.New("gallery image not found")
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

func (s *Service) GetAll(ctx context.Context) ([]Image, error) {
	var raw map[string]Image
	if err := s.store.Get(ctx, Path, &raw); err != nil {
		return nil, err
	}
	return toList(raw), nil
}

func (s *Service) GetActive(ctx context.Context) ([]Image, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Image, 0, len(all))
	for _, img := range all {
		if img.IsActive {
			out = append(out, img)
		}
	}
	return out, nil
}

func (s *Service) GetByCategory(ctx context.Context, category string) ([]Image, error) {
	if category == "" {
		return s.GetActive(ctx)
	}
	if !ValidCategory(category) {
		return nil, fmt.Errorf("%w: invalid category %q", ErrBadRequest, category)
	}
	active, err := s.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Image, 0, len(active))
	for _, img := range active {
		if img.Category == category {
			out = append(out, img)
		}
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Image, error) {
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
	var img Image
	if err := json.Unmarshal(snap, &img); err != nil {
		return nil, err
	}
	img.ID = id
	return &img, nil
}

func (s *Service) Create(ctx context.Context, in CreateImageInput) (*Image, error) {
	in.Trim()
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrBadRequest)
	}
	if in.URL == "" {
		return nil, fmt.Errorf("%w: url is required", ErrBadRequest)
	}
	if !ValidCategory(in.Category) {
		return nil, fmt.Errorf("%w: invalid category %q", ErrBadRequest, in.Category)
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	img := Image{
		Title:       in.Title,
		Description: in.Description,
		URL:         in.URL,
		Category:    in.Category,
		IsActive:    isActive,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	id := "gallery_" + uuid.NewString()
	if err := s.store.Set(ctx, Path+"/"+id, img); err != nil {
		return nil, err
	}
	img.ID = id
	return &img, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateImageInput) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	fields := in.Fields()
	if cat, ok := fields["category"].(string); ok && !ValidCategory(cat) {
		return fmt.Errorf("%w: invalid category %q", ErrBadRequest, cat)
	}
	return s.store.Update(ctx, Path+"/"+id, fields)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	return s.store.Delete(ctx, Path+"/"+id)
}

func (s *Service) Subscribe(fn func([]Image)) (cancel func()) {
	return s.store.Subscribe(Path, func(snap json.RawMessage) {
		var raw map[string]Image
		if len(snap) > 0 {
			_ = json.Unmarshal(snap, &raw)
		}
		fn(toList(raw))
	})
}

func toList(raw map[string]Image) []Image {
	out := make([]Image, 0, len(raw))
	for id, img := range raw {
		img.ID = id
		out = append(out, img)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
