package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/playforge/gridgame-backend/internal/entity"
	"github.com/playforge/gridgame-backend/internal/repository/storage"
)

func newTestPlayer(t *testing.T, ctx context.Context, st *storage.SQLiteStorage, username string) *entity.Player {
	t.Helper()

	player := &entity.Player{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		UserType:     entity.UserTypeStandard,
	}
	require.NoError(t, NewPlayerRepository(st.Connection).Create(ctx, player))

	return player
}

func newTestGame(t *testing.T, ctx context.Context, st *storage.SQLiteStorage, createdBy string) *entity.Game {
	t.Helper()

	game := entity.NewGame(uuid.NewString(), 3, 3, "", false, createdBy)
	require.NoError(t, NewGameRepository(st.Connection).Create(ctx, game))

	return game
}
