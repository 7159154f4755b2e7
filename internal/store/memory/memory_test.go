package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olopa-labs/olopa/internal/contracts"
	"github.com/olopa-labs/olopa/internal/store"
	"github.com/olopa-labs/olopa/internal/store/memory"
	"github.com/olopa-labs/olopa/internal/user"
)

func TestUsers(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, user.User{Name: "Ada", Email: "ada@example.com", Password: "hash", Role: user.RoleFreelancer})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = s.CreateUser(ctx, user.User{Name: "Other", Email: "ada@example.com", Password: "hash", Role: user.RoleEmployer})
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)

	byEmail, err := s.GetUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := s.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", byID.Name)

	_, err = s.GetUserByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.GetUserByID(ctx, "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestContracts(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	first, err := s.CreateContract(ctx, contracts.Contract{Title: "C1", Employer: "addr", Amount: 1})
	require.NoError(t, err)
	assert.Equal(t, contracts.StatusCreated, first.Status) // defaulted
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)

	second, err := s.CreateContract(ctx, contracts.Contract{Title: "C2", Employer: "addr", Amount: 2, Status: contracts.StatusSimulated})
	require.NoError(t, err)
	assert.Equal(t, contracts.StatusSimulated, second.Status)

	list, err := s.ListContracts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "C1", list[0].Title)
	assert.Equal(t, "C2", list[1].Title)
}
