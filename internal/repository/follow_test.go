package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playforge/gridgame-backend/testing/suite"
)

func TestFollowRepository_IsMutual(t *testing.T) {
	t.Run("Requires edges in both directions", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		followRepo := NewFollowRepository(st.Connection)
		alice := newTestPlayer(t, ctx, st, "alice")
		bob := newTestPlayer(t, ctx, st, "bob")

		// Given: no follows yet
		mutual, err := followRepo.IsMutual(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, mutual)

		// When: only alice follows bob
		require.NoError(t, followRepo.Create(ctx, alice.ID, bob.ID))
		mutual, err = followRepo.IsMutual(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, mutual)

		// Then: the reciprocal edge makes it mutual either way around
		require.NoError(t, followRepo.Create(ctx, bob.ID, alice.ID))
		mutual, err = followRepo.IsMutual(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, mutual)

		mutual, err = followRepo.IsMutual(ctx, bob.ID, alice.ID)
		require.NoError(t, err)
		assert.True(t, mutual)
	})

	t.Run("Refollowing is a no-op", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		followRepo := NewFollowRepository(st.Connection)
		alice := newTestPlayer(t, ctx, st, "alice")
		bob := newTestPlayer(t, ctx, st, "bob")

		require.NoError(t, followRepo.Create(ctx, alice.ID, bob.ID))
		require.NoError(t, followRepo.Create(ctx, alice.ID, bob.ID))

		players, err := followRepo.ListFollowing(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, players, 1)
		assert.Equal(t, bob.ID, players[0].ID)
	})
}
