package course

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"ielts-academy/backend/internal/store"
	"ielts-academy/backend/internal/utils"

	"github.com/google/uuid"
)

// Path is the collection prefix in the store.
const Path = "courses"

type Service struct {
	store *store.Client
}

func NewService(st *store.Client) *Service {
	return &Service{store: st}
}

func (s *Service) GetAll(ctx context.Context) ([]Course, error) {
	var raw map[string]Course
	if err := s.store.Get(ctx, Path, &raw); err != nil {
		return nil, err
	}
	return toList(raw), nil
}

func (s *Service) GetActive(ctx context.Context) ([]Course, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Course, 0, len(all))
	for _, c := range all {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

// GetByCategory filters active courses; "all" and "" return every active course.
func (s *Service) GetByCategory(ctx context.Context, category string) ([]Course, error) {
	active, err := s.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" || category == CategoryAll {
		return active, nil
	}
	if !ValidCategory(category) {
		return nil, fmt.Errorf("%w: invalid category %q", ErrBadRequest, category)
	}
	out := make([]Course, 0, len(active))
	for _, c := range active {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out, nil
}

// Search matches active courses on normalized title and description.
func (s *Service) Search(ctx context.Context, q string) ([]Course, error) {
	q = utils.NormalizeToken(q)
	active, err := s.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if q == "" {
		return active, nil
	}
	out := make([]Course, 0, len(active))
	for _, c := range active {
		if strings.Contains(utils.NormalizeToken(c.Title), q) ||
			strings.Contains(utils.NormalizeToken(c.Description), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Course, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	var snap json.RawMessage
	if err := s.store.Get(ctx, Path+"/"+id, &snap); err != nil {
		return nil, err
	}
	if isNull(snap) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	var c Course
	if err := json.Unmarshal(snap, &c); err != nil {
		return nil, err
	}
	c.ID = id
	return &c, nil
}

func (s *Service) Create(ctx context.Context, in CreateCourseInput) (*Course, error) {
	in.Trim()
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrBadRequest)
	}
	if !ValidCategory(in.Category) {
		return nil, fmt.Errorf("%w: invalid category %q", ErrBadRequest, in.Category)
	}

	now := nowISO()
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	c := Course{
		Title:       in.Title,
		Description: in.Description,
		Duration:    in.Duration,
		Schedule:    in.Schedule,
		Fee:         in.Fee,
		Syllabus:    in.Syllabus,
		Features:    in.Features,
		Popular:     in.Popular,
		Image:       in.Image,
		Category:    in.Category,
		Location:    in.Location,
		Contact:     in.Contact,
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id := "course_" + uuid.NewString()
	if err := s.store.Set(ctx, Path+"/"+id, c); err != nil {
		return nil, err
	}
	c.ID = id
	return &c, nil
}

// Update merge-patches the record and refreshes updatedAt. Patching an id
// that does not exist succeeds at the store level; callers treat that as a
// non-error.
func (s *Service) Update(ctx context.Context, id string, in UpdateCourseInput) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	in.Trim()
	fields := in.Fields()
	if len(fields) == 0 {
		return nil
	}
	if cat, ok := fields["category"].(string); ok && !ValidCategory(cat) {
		return fmt.Errorf("%w: invalid category %q", ErrBadRequest, cat)
	}
	fields["updatedAt"] = nowISO()
	return s.store.Update(ctx, Path+"/"+id, fields)
}

// Delete is idempotent; deleting an unknown id is not an error.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	return s.store.Delete(ctx, Path+"/"+id)
}

// Subscribe delivers the full course list on every change, starting with the
// current state. The returned cancel must be called to release the listener.
func (s *Service) Subscribe(fn func([]Course)) (cancel func()) {
	return s.store.Subscribe(Path, func(snap json.RawMessage) {
		fn(decodeList(snap))
	})
}

func decodeList(snap json.RawMessage) []Course {
	var raw map[string]Course
	if len(snap) > 0 {
		_ = json.Unmarshal(snap, &raw)
	}
	return toList(raw)
}

// toList flattens the keyed map into a list tagged with ids. The store
// returns keys in no useful order, so sort by id for a stable display order.
func toList(raw map[string]Course) []Course {
	out := make([]Course, 0, len(raw))
	for id, c := range raw {
		c.ID = id
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func isNull(snap json.RawMessage) bool {
	return len(snap) == 0 || string(snap) == "null"
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
