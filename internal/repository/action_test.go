package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playforge/gridgame-backend/internal/entity"
	"github.com/playforge/gridgame-backend/testing/suite"
)

func TestActionRepository(t *testing.T) {
	t.Run("Log is ordered by turn then action number", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		actionRepo := NewActionRepository(st.Connection)
		alice := newTestPlayer(t, ctx, st, "alice")
		bob := newTestPlayer(t, ctx, st, "bob")
		game := newTestGame(t, ctx, st, alice.ID)

		// Given: moves inserted out of turn order
		for _, move := range []struct {
			player string
			turn   int
			cell   int
		}{
			{bob.ID, 2, 0},
			{alice.ID, 1, 4},
			{alice.ID, 3, 8},
		} {
			require.NoError(t, actionRepo.Create(ctx, &entity.GameAction{
				ID:           uuid.NewString(),
				GameID:       game.ID,
				PlayerID:     move.player,
				TurnNumber:   move.turn,
				ActionNumber: 1,
				Action:       move.cell,
			}))
		}

		// When: listing the log
		actions, err := actionRepo.ListByGame(ctx, game.ID)

		// Then: turns come back 1, 2, 3
		require.NoError(t, err)
		require.Len(t, actions, 3)
		assert.Equal(t, []int{1, 2, 3},
			[]int{actions[0].TurnNumber, actions[1].TurnNumber, actions[2].TurnNumber})
	})

	t.Run("Player cells are sorted ascending", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		actionRepo := NewActionRepository(st.Connection)
		alice := newTestPlayer(t, ctx, st, "alice")
		bob := newTestPlayer(t, ctx, st, "bob")
		game := newTestGame(t, ctx, st, alice.ID)

		for turn, cell := range map[int]int{1: 8, 3: 0, 5: 4} {
			require.NoError(t, actionRepo.Create(ctx, &entity.GameAction{
				ID: uuid.NewString(), GameID: game.ID, PlayerID: alice.ID,
				TurnNumber: turn, ActionNumber: 1, Action: cell,
			}))
		}
		require.NoError(t, actionRepo.Create(ctx, &entity.GameAction{
			ID: uuid.NewString(), GameID: game.ID, PlayerID: bob.ID,
			TurnNumber: 2, ActionNumber: 1, Action: 1,
		}))

		cells, err := actionRepo.ListPlayerCells(ctx, game.ID, alice.ID)

		require.NoError(t, err)
		assert.Equal(t, []int{0, 4, 8}, cells)

		all, err := actionRepo.ListCells(ctx, game.ID)
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})

	t.Run("Replaying a cell violates the log's uniqueness", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		actionRepo := NewActionRepository(st.Connection)
		alice := newTestPlayer(t, ctx, st, "alice")
		game := newTestGame(t, ctx, st, alice.ID)

		first := &entity.GameAction{
			ID: uuid.NewString(), GameID: game.ID, PlayerID: alice.ID,
			TurnNumber: 1, ActionNumber: 1, Action: 4,
		}
		require.NoError(t, actionRepo.Create(ctx, first))

		dup := &entity.GameAction{
			ID: uuid.NewString(), GameID: game.ID, PlayerID: alice.ID,
			TurnNumber: 2, ActionNumber: 1, Action: 4,
		}

		require.Error(t, actionRepo.Create(ctx, dup))
	})
}
