package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/playforge/gridgame-backend/internal/apperror"
	"github.com/playforge/gridgame-backend/internal/entity"
)

type PlayerRepository interface {
	Create(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	GetByUsername(ctx context.Context, username string) (*entity.Player, error)
}

type dbPlayer struct {
	conn *sql.DB
}

func NewPlayerRepository(conn *sql.DB) PlayerRepository {
	return &dbPlayer{
		conn: conn,
	}
}

func (that *dbPlayer) Create(ctx context.Context, player *entity.Player) error {
	query := `INSERT INTO players (id, username, email, password_hash, user_type)
		VALUES (?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query,
		player.ID, player.Username, player.Email, player.PasswordHash, player.UserType)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("username %s: %w", player.Username, apperror.ErrUsernameTaken)
		}
		return fmt.Errorf("can't create player: %w", err)
	}

	return nil
}

func (that *dbPlayer) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	query := `SELECT id, username, email, password_hash, user_type, created_at
		FROM players WHERE id = ?`

	return that.get(ctx, query, id)
}

func (that *dbPlayer) GetByUsername(ctx context.Context, username string) (*entity.Player, error) {
	query := `SELECT id, username, email, password_hash, user_type, created_at
		FROM players WHERE username = ?`

	return that.get(ctx, query, username)
}

func (that *dbPlayer) get(ctx context.Context, query string, arg any) (*entity.Player, error) {
	var player entity.Player
	err := that.conn.QueryRowContext(ctx, query, arg).Scan(&player.ID, &player.Username,
		&player.Email, &player.PasswordHash, &player.UserType, &player.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("player: %w", apperror.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("can't get player: %w", err)
	}

	return &player, nil
}
