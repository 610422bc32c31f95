package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playforge/gridgame-backend/internal/apperror"
	"github.com/playforge/gridgame-backend/internal/entity"
	"github.com/playforge/gridgame-backend/testing/suite"
)

func TestSeatRepository_Take(t *testing.T) {
	t.Run("Seats the player and decrements open seats", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		seatRepo := NewSeatRepository(st.Connection)
		alice := newTestPlayer(t, ctx, st, "alice")
		bob := newTestPlayer(t, ctx, st, "bob")
		game := newTestGame(t, ctx, st, alice.ID)
		require.NoError(t, seatRepo.Create(ctx, game.ID, alice.ID))

		// When: bob takes the open seat
		openSeats, err := seatRepo.Take(ctx, game.ID, bob.ID)

		// Then: no seats remain and bob holds an unordered seat
		require.NoError(t, err)
		assert.Equal(t, 0, openSeats)

		seat, err := seatRepo.Get(ctx, game.ID, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.UnassignedTurnOrder, seat.TurnOrder)
	})

	t.Run("Taking a seat in a full game fails", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		seatRepo := NewSeatRepository(st.Connection)
		alice := newTestPlayer(t, ctx, st, "alice")
		bob := newTestPlayer(t, ctx, st, "bob")
		carol := newTestPlayer(t, ctx, st, "carol")
		game := newTestGame(t, ctx, st, alice.ID)
		require.NoError(t, seatRepo.Create(ctx, game.ID, alice.ID))

		_, err := seatRepo.Take(ctx, game.ID, bob.ID)
		require.NoError(t, err)

		// When: a third player races for the filled seat
		_, err = seatRepo.Take(ctx, game.ID, carol.ID)

		// Then: the conditional decrement rejects the join
		require.ErrorIs(t, err, apperror.ErrGameFull)
	})
}

func TestSeatRepository_AssignTurnOrders(t *testing.T) {
	t.Run("Writes every order and the next-turn pointer atomically", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		seatRepo := NewSeatRepository(st.Connection)
		gameRepo := NewGameRepository(st.Connection)
		alice := newTestPlayer(t, ctx, st, "alice")
		bob := newTestPlayer(t, ctx, st, "bob")
		game := newTestGame(t, ctx, st, alice.ID)
		require.NoError(t, seatRepo.Create(ctx, game.ID, alice.ID))
		_, err := seatRepo.Take(ctx, game.ID, bob.ID)
		require.NoError(t, err)

		// When: assigning bob first, alice second
		require.NoError(t, seatRepo.AssignTurnOrders(ctx, game.ID, []string{bob.ID, alice.ID}))

		// Then: seats come back sorted by turn order and next turn is bob
		seats, err := seatRepo.ListByGame(ctx, game.ID)
		require.NoError(t, err)
		require.Len(t, seats, 2)
		assert.Equal(t, bob.ID, seats[0].PlayerID)
		assert.Equal(t, 1, seats[0].TurnOrder)
		assert.Equal(t, alice.ID, seats[1].PlayerID)
		assert.Equal(t, 2, seats[1].TurnOrder)

		stored, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, bob.ID, stored.NextTurn)
	})
}

func TestSeatRepository_Get(t *testing.T) {
	t.Run("A missing seat reads as not found", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		seatRepo := NewSeatRepository(st.Connection)
		alice := newTestPlayer(t, ctx, st, "alice")
		game := newTestGame(t, ctx, st, alice.ID)

		_, err := seatRepo.Get(ctx, game.ID, alice.ID)

		require.ErrorIs(t, err, apperror.ErrNotFound)
	})
}
