package teacher

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"ielts-academy/backend/internal/store"

	"github.com/google/uuid"
)

const Path = "teachers"

type Service struct {
	store *store.Client
}

func NewService(st *store.Client) *Service {
	return &Service{store: st}
}

func (s *Service) GetAll(ctx context.Context) ([]Teacher, error) {
	var raw map[string]Teacher
	if err := s.store.Get(ctx, Path, &raw); err != nil {
		return nil, err
	}
	return toList(raw), nil
}

func (s *Service) GetActive(ctx context.Context) ([]Teacher, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Teacher, 0, len(all))
	for _, t := range all {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Teacher, error) {
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
	var t Teacher
	if err := json.Unmarshal(snap, &t); err != nil {
		return nil, err
	}
	t.ID = id
	return &t, nil
}

func (s *Service) Create(ctx context.Context, in CreateTeacherInput) (*Teacher, error) {
	in.Trim()
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	if !ValidSpecialization(in.Specialization) {
		return nil, fmt.Errorf("%w: invalid specialization %q", ErrBadRequest, in.Specialization)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	t := Teacher{
		Name:           in.Name,
		Image:          in.Image,
		Qualification:  in.Qualification,
		Specialization: in.Specialization,
		Experience:     in.Experience,
		Bio:            in.Bio,
		Achievements:   in.Achievements,
		Email:          in.Email,
		IsActive:       isActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	id := "teacher_" + uuid.NewString()
	if err := s.store.Set(ctx, Path+"/"+id, t); err != nil {
		return nil, err
	}
	t.ID = id
	return &t, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateTeacherInput) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	fields := in.Fields()
	if len(fields) == 0 {
		return nil
	}
	if spec, ok := fields["specialization"].(string); ok && !ValidSpecialization(spec) {
		return fmt.Errorf("%w: invalid specialization %q", ErrBadRequest, spec)
	}
	fields["updatedAt"] = time.Now().UTC().Format(time.RFC3339)
	return s.store.Update(ctx, Path+"/"+id, fields)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	return s.store.Delete(ctx, Path+"/"+id)
}

func (s *Service) Subscribe(fn func([]Teacher)) (cancel func()) {
	return s.store.Subscribe(Path, func(snap json.RawMessage) {
		var raw map[string]Teacher
		if len(snap) > 0 {
			_ = json.Unmarshal(snap, &raw)
		}
		fn(toList(raw))
	})
}

func toList(raw map[string]Teacher) []Teacher {
	out := make([]Teacher, 0, len(raw))
	for id, t := range raw {
		t.ID = id
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
