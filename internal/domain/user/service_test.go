package user

import (
	"context"
	"testing"

	"ielts-academy/backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type allowList []string

func (a allowList) IsAdminEmail(email string) bool {
	for _, e := range a {
		if e == email {
			return true
		}
	}
	return false
}

func TestAuthorizeUsesStoredRole(t *testing.T) {
	ctx := context.Background()
	st := store.NewClient(store.NewMemory())
	svc := NewService(st, allowList{})

	require.NoError(t, st.Set(ctx, "users/uid-1", Profile{UID: "uid-1", Email: "t@x.com", Role: RoleTeacher}))

	role, err := svc.Authorize(ctx, Identity{UID: "uid-1", Email: "t@x.com"})
	require.NoError(t, err)
	assert.Equal(t, RoleTeacher, role)
}

func TestAuthorizeMissingRoleIsRejected(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewClient(store.NewMemory()), allowList{})

	_, err := svc.Authorize(ctx, Identity{UID: "uid-2", Email: "stranger@x.com"})
	assert.True(t, IsErrUnauthorized(err))
}

func TestAuthorizeAllowListBootstrapsAdmin(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewClient(store.NewMemory()), allowList{"owner@academy.com"})

	role, err := svc.Authorize(ctx, Identity{UID: "uid-3", Email: "owner@academy.com"})
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)
}

func TestAuthorizeStoredRoleWinsOverAllowList(t *testing.T) {
	ctx := context.Background()
	st := store.NewClient(store.NewMemory())
	svc := NewService(st, allowList{"demoted@academy.com"})

	require.NoError(t, st.Set(ctx, "users/uid-4", Profile{UID: "uid-4", Role: RoleStudent}))

	role, err := svc.Authorize(ctx, Identity{UID: "uid-4", Email: "demoted@academy.com"})
	require.NoError(t, err)
	assert.Equal(t, RoleStudent, role)
}

func TestEnsureProfileCreatesThenBumpsLastLogin(t *testing.T) {
	ctx := context.Background()
	st := store.NewClient(store.NewMemory())
	svc := NewService(st, allowList{})

	ident := Identity{UID: "uid-5", Email: "a@x.com", Name: "Admin A"}
	require.NoError(t, svc.EnsureProfile(ctx, ident, RoleAdmin))

	p, err := svc.Get(ctx, "uid-5")
	require.NoError(t, err)
	assert.Equal(t, "Admin A", p.Name)
	assert.Equal(t, RoleAdmin, p.Role)
	assert.NotEmpty(t, p.DateJoined)

	joined := p.DateJoined
	require.NoError(t, svc.EnsureProfile(ctx, ident, RoleAdmin))

	p2, err := svc.Get(ctx, "uid-5")
	require.NoError(t, err)
	assert.Equal(t, joined, p2.DateJoined)
	assert.NotEmpty(t, p2.LastLogin)
	assert.Equal(t, "Admin A", p2.Name)
}

func TestGetUnknownProfile(t *testing.T) {
	svc := NewService(store.NewClient(store.NewMemory()), allowList{})
	_, err := svc.Get(context.Background(), "ghost")
	assert.True(t, IsErrNotFound(err))
}
