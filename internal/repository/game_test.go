package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playforge/gridgame-backend/internal/apperror"
	"github.com/playforge/gridgame-backend/internal/entity"
	"github.com/playforge/gridgame-backend/testing/suite"
)

func TestGameRepository_CreateAndGet(t *testing.T) {
	t.Run("Roundtrips a game", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		gameRepo := NewGameRepository(st.Connection)

		// Given: a stored game
		creator := newTestPlayer(t, ctx, st, "alice")
		game := entity.NewGame(uuid.NewString(), 4, 4, "secret", true, creator.ID)
		require.NoError(t, gameRepo.Create(ctx, game))

		// When: reading it back
		stored, err := gameRepo.GetByID(ctx, game.ID)

		// Then: all creation fields survive
		require.NoError(t, err)
		assert.Equal(t, game.ID, stored.ID)
		assert.Equal(t, 4, stored.BoardRows)
		assert.Equal(t, 4, stored.BoardColumns)
		assert.Equal(t, "secret", stored.Password)
		assert.True(t, stored.IsMutualFollowsOnly)
		assert.Equal(t, 1, stored.OpenSeats)
		assert.Equal(t, creator.ID, stored.CreatedBy)
		assert.False(t, stored.IsComplete)
		assert.Empty(t, stored.NextTurn)
	})

	t.Run("Unknown id reads as not found", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		gameRepo := NewGameRepository(st.Connection)

		_, err := gameRepo.GetByID(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestGameRepository_UpdateState(t *testing.T) {
	t.Run("Persists the tail state", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		gameRepo := NewGameRepository(st.Connection)
		creator := newTestPlayer(t, ctx, st, "alice")
		game := newTestGame(t, ctx, st, creator.ID)

		// When: recording one accepted move
		game.CompleteTurnsCount = 1
		game.NextTurn = creator.ID
		require.NoError(t, gameRepo.UpdateState(ctx, game, 0))

		// Then: the stored game reflects it
		stored, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.CompleteTurnsCount)
		assert.Equal(t, creator.ID, stored.NextTurn)
	})

	t.Run("A stale writer fails the turn-count guard", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		gameRepo := NewGameRepository(st.Connection)
		creator := newTestPlayer(t, ctx, st, "alice")
		game := newTestGame(t, ctx, st, creator.ID)

		// Given: another writer already advanced the game
		game.CompleteTurnsCount = 1
		require.NoError(t, gameRepo.UpdateState(ctx, game, 0))

		// When: writing against the old turn count
		err := gameRepo.UpdateState(ctx, game, 0)

		// Then: the write is rejected instead of clobbering state
		require.ErrorIs(t, err, apperror.ErrConcurrentUpdate)
	})
}

func TestGameRepository_ListJoinable(t *testing.T) {
	t.Run("Excludes own, full, and complete games", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		gameRepo := NewGameRepository(st.Connection)
		alice := newTestPlayer(t, ctx, st, "alice")
		bob := newTestPlayer(t, ctx, st, "bob")

		open := newTestGame(t, ctx, st, alice.ID)

		full := entity.NewGame(uuid.NewString(), 3, 3, "", false, alice.ID)
		full.OpenSeats = 0
		require.NoError(t, gameRepo.Create(ctx, full))

		complete := entity.NewGame(uuid.NewString(), 3, 3, "", false, alice.ID)
		complete.IsComplete = true
		require.NoError(t, gameRepo.Create(ctx, complete))

		newTestGame(t, ctx, st, bob.ID) // bob's own game

		games, err := gameRepo.ListJoinable(ctx, bob.ID, entity.DefaultJoinableSearch())

		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, open.ID, games[0].ID)
	})

	t.Run("Password-protection flag narrows the listing", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		gameRepo := NewGameRepository(st.Connection)
		alice := newTestPlayer(t, ctx, st, "alice")
		bob := newTestPlayer(t, ctx, st, "bob")

		newTestGame(t, ctx, st, alice.ID)
		locked := entity.NewGame(uuid.NewString(), 3, 3, "pw", false, alice.ID)
		require.NoError(t, gameRepo.Create(ctx, locked))

		protected := true
		search := entity.DefaultJoinableSearch()
		search.IsPasswordProtected = &protected

		games, err := gameRepo.ListJoinable(ctx, bob.ID, search)

		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, locked.ID, games[0].ID)
	})

	t.Run("Minimum board bounds only apply above the default size", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		gameRepo := NewGameRepository(st.Connection)
		alice := newTestPlayer(t, ctx, st, "alice")
		bob := newTestPlayer(t, ctx, st, "bob")

		newTestGame(t, ctx, st, alice.ID)
		big := entity.NewGame(uuid.NewString(), 5, 5, "", false, alice.ID)
		require.NoError(t, gameRepo.Create(ctx, big))

		// Given: minRows at the default of 3, no filtering happens
		minRows := 3
		search := entity.DefaultJoinableSearch()
		search.MinRows = &minRows
		games, err := gameRepo.ListJoinable(ctx, bob.ID, search)
		require.NoError(t, err)
		assert.Len(t, games, 2)

		// When: raising the bound above the default
		minRows = 4
		games, err = gameRepo.ListJoinable(ctx, bob.ID, search)

		// Then: only the larger board remains
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, big.ID, games[0].ID)
	})
}

func TestGameRepository_ListByPlayer(t *testing.T) {
	t.Run("Returns seated games with the active filter", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		gameRepo := NewGameRepository(st.Connection)
		seatRepo := NewSeatRepository(st.Connection)
		alice := newTestPlayer(t, ctx, st, "alice")

		ongoing := newTestGame(t, ctx, st, alice.ID)
		require.NoError(t, seatRepo.Create(ctx, ongoing.ID, alice.ID))

		done := entity.NewGame(uuid.NewString(), 3, 3, "", false, alice.ID)
		done.IsComplete = true
		require.NoError(t, gameRepo.Create(ctx, done))
		require.NoError(t, seatRepo.Create(ctx, done.ID, alice.ID))

		// When: listing without a filter
		games, err := gameRepo.ListByPlayer(ctx, alice.ID, entity.GameSearch{})
		require.NoError(t, err)
		assert.Len(t, games, 2)

		// When: listing only active games
		active := true
		games, err = gameRepo.ListByPlayer(ctx, alice.ID, entity.GameSearch{Active: &active})

		// Then: the complete game is filtered out
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, ongoing.ID, games[0].ID)
	})
}
