package testimonial

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

const Path = "homeContent/testimonials"

var (
	ErrNotFound   = errors.New("testimonial not found")
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

func (s *Service) GetAll(ctx context.Context) ([]Testimonial, error) {
	var raw map[string]Testimonial
	if err := s.store.Get(ctx, Path, &raw); err != nil {
		return nil, err
	}
	return toList(raw), nil
}

func (s *Service) GetActive(ctx context.Context) ([]Testimonial, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Testimonial, 0, len(all))
	for _, t := range all {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Testimonial, error) {
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
	var t Testimonial
	if err := json.Unmarshal(snap, &t); err != nil {
		return nil, err
	}
	t.ID = id
	return &t, nil
}

func (s *Service) Create(ctx context.Context, in CreateTestimonialInput) (*Testimonial, error) {
	in.Trim()
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	if in.Comment == "" {
		return nil, fmt.Errorf("%w: comment is required", ErrBadRequest)
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	image := in.Image
	if image == "" {
		image = avatarURL(in.Name)
	}

	t := Testimonial{
		Name:      in.Name,
		Band:      in.Band,
		Comment:   in.Comment,
		Image:     image,
		Course:    in.Course,
		Date:      in.Date,
		IsActive:  isActive,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	id := "testimonial_" + uuid.NewString()
	if err := s.store.Set(ctx, Path+"/"+id, t); err != nil {
		return nil, err
	}
	t.ID = id
	return &t, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateTestimonialInput) error {
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

func (s *Service) Subscribe(fn func([]Testimonial)) (cancel func()) {
	return s.store.Subscribe(Path, func(snap json.RawMessage) {
		var raw map[string]Testimonial
		if len(snap) > 0 {
			_ = json.Unmarshal(snap, &raw)
		}
		fn(toList(raw))
	})
}

func toList(raw map[string]Testimonial) []Testimonial {
	out := make([]Testimonial, 0, len(raw))
	for id, t := range raw {
		t.ID = id
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
