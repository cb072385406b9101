package question

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"ielts-academy/backend/internal/store"

	"github.com/google/uuid"
)

const Path = "questions"

type Service struct {
	store *store.Client
}

func NewService(st *store.Client) *Service {
	return &Service{store: st}
}

func (s *Service) GetAll(ctx context.Context) ([]Question, error) {
	var raw map[string]Question
	if err := s.store.Get(ctx, Path, &raw); err != nil {
		return nil, err
	}
	return toList(raw), nil
}

func (s *Service) GetBySection(ctx context.Context, section string) ([]Question, error) {
	if !ValidSection(section) {
		return nil, fmt.Errorf("%w: invalid section %q", ErrBadRequest, section)
	}
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Question, 0, len(all))
	for _, q := range all {
		if q.Section == section {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *Service) GetByDifficulty(ctx context.Context, difficulty string) ([]Question, error) {
	if !ValidDifficulty(difficulty) {
		return nil, fmt.Errorf("%w: invalid difficulty %q", ErrBadRequest, difficulty)
	}
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Question, 0, len(all))
	for _, q := range all {
		if q.Difficulty == difficulty {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Question, error) {
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
	var q Question
	if err := json.Unmarshal(snap, &q); err != nil {
		return nil, err
	}
	q.ID = id
	return &q, nil
}

func (s *Service) Create(ctx context.Context, createdBy string, in CreateQuestionInput) (*Question, error) {
	in.Trim()
	if in.Question == "" {
		return nil, fmt.Errorf("%w: question text is required", ErrBadRequest)
	}
	if !ValidType(in.Type) {
		return nil, fmt.Errorf("%w: invalid type %q", ErrBadRequest, in.Type)
	}
	if !ValidSection(in.Section) {
		return nil, fmt.Errorf("%w: invalid section %q", ErrBadRequest, in.Section)
	}
	if !ValidDifficulty(in.Difficulty) {
		return nil, fmt.Errorf("%w: invalid difficulty %q", ErrBadRequest, in.Difficulty)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	q := Question{
		Type:          in.Type,
		Section:       in.Section,
		Difficulty:    in.Difficulty,
		Question:      in.Question,
		Options:       in.Options,
		CorrectAnswer: in.CorrectAnswer,
		Points:        in.Points,
		TimeLimit:     in.TimeLimit,
		Explanation:   in.Explanation,
		Tags:          in.Tags,
		CreatedAt:     now,
		UpdatedAt:     now,
		CreatedBy:     createdBy,
	}

	id := "question_" + uuid.NewString()
	if err := s.store.Set(ctx, Path+"/"+id, q); err != nil {
		return nil, err
	}
	q.ID = id
	return &q, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateQuestionInput) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	fields := in.Fields()
	if len(fields) == 0 {
		return nil
	}
	if t, ok := fields["type"].(string); ok && !ValidType(t) {
		return fmt.Errorf("%w: invalid type %q", ErrBadRequest, t)
	}
	if sec, ok := fields["section"].(string); ok && !ValidSection(sec) {
		return fmt.Errorf("%w: invalid section %q", ErrBadRequest, sec)
	}
	if d, ok := fields["difficulty"].(string); ok && !ValidDifficulty(d) {
		return fmt.Errorf("%w: invalid difficulty %q", ErrBadRequest, d)
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

func (s *Service) Subscribe(fn func([]Question)) (cancel func()) {
	return s.store.Subscribe(Path, func(snap json.RawMessage) {
		var raw map[string]Question
		if len(snap) > 0 {
			_ = json.Unmarshal(snap, &raw)
		}
		fn(toList(raw))
	})
}

func toList(raw map[string]Question) []Question {
	out := make([]Question, 0, len(raw))
	for id, q := range raw {
		q.ID = id
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
