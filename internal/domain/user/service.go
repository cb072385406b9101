package user

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"ielts-academy/backend/internal/store"
)

const Path = "users"

// AllowList answers whether an email may bootstrap admin access without a
// role record. config.Config satisfies it.
type AllowList interface {
	IsAdminEmail(email string) bool
}

type Service struct {
	store *store.Client
	allow AllowList
}

func NewService(st *store.Client, allow AllowList) *Service {
	return &Service{store: st, allow: allow}
}

// Authorize resolves the identity's role. A missing role record is
// Unauthorized unless the email is on the configured allow-list, in which
// case it resolves to admin. That bootstrap default is a deliberate business
// rule for the trusted accounts listed in ADMIN_EMAILS; unknown identities
// never default to a role.
func (s *Service) Authorize(ctx context.Context, ident Identity) (string, error) {
	role, err := s.Role(ctx, ident.UID)
	if err != nil {
		return "", err
	}
	if role != "" {
		return role, nil
	}
	if s.allow.IsAdminEmail(ident.Email) {
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("%w: no role assigned to %s", ErrUnauthorized, ident.Email)
}

// Role reads users/<uid>/role; "" means no role record exists.
func (s *Service) Role(ctx context.Context, uid string) (string, error) {
	if uid == "" {
		return "", fmt.Errorf("%w: uid is required", ErrUnauthorized)
	}
	var role string
	if err := s.store.Get(ctx, Path+"/"+uid+"/role", &role); err != nil {
		return "", err
	}
	return role, nil
}

func (s *Service) Get(ctx context.Context, uid string) (*Profile, error) {
	var snap json.RawMessage
	if err := s.store.Get(ctx, Path+"/"+uid, &snap); err != nil {
		return nil, err
	}
	if len(snap) == 0 || string(snap) == "null" {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, uid)
	}
	var p Profile
	if err := json.Unmarshal(snap, &p); err != nil {
		return nil, err
	}
	if p.UID == "" {
		p.UID = uid
	}
	return &p, nil
}

// EnsureProfile upserts the session record: create-if-absent, else bump
// lastLogin. Callers treat failure as best-effort (an authenticated admin
// stays authenticated even if the profile write is rejected).
func (s *Service) EnsureProfile(ctx context.Context, ident Identity, role string) error {
	var snap json.RawMessage
	if err := s.store.Get(ctx, Path+"/"+ident.UID, &snap); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if len(snap) == 0 || string(snap) == "null" {
		name := ident.Name
		if name == "" {
			name = "Admin"
		}
		return s.store.Set(ctx, Path+"/"+ident.UID, Profile{
			UID:            ident.UID,
			Email:          ident.Email,
			Name:           name,
			Role:           role,
			ProfilePicture: ident.Picture,
			DateJoined:     now,
			LastLogin:      now,
		})
	}
	return s.store.Update(ctx, Path+"/"+ident.UID, map[string]interface{}{
		"lastLogin": now,
	})
}

// EnsureProfileBestEffort logs and swallows the error from EnsureProfile.
func (s *Service) EnsureProfileBestEffort(ctx context.Context, ident Identity, role string) {
	if err := s.EnsureProfile(ctx, ident, role); err != nil {
		log.Printf("[user] profile upsert for %s failed (continuing): %v", ident.UID, err)
	}
}
