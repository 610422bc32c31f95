package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/playforge/gridgame-backend/internal/entity"
)

type FollowRepository interface {
	Create(ctx context.Context, playerID, followingID string) error

	// IsMutual reports whether both follow edges exist between the players.
	IsMutual(ctx context.Context, playerID, otherID string) (bool, error)

	// ListFollowing returns the players someone follows, oldest follow first.
	ListFollowing(ctx context.Context, playerID string) ([]*entity.Player, error)
}

type dbFollow struct {
	conn *sql.DB
}

func NewFollowRepository(conn *sql.DB) FollowRepository {
	return &dbFollow{
		conn: conn,
	}
}

func (that *dbFollow) Create(ctx context.Context, playerID, followingID string) error {
	query := `INSERT OR IGNORE INTO player_followings (player_id, following_id) VALUES (?, ?)`

	_, err := that.conn.ExecContext(ctx, query, playerID, followingID)
	if err != nil {
		return fmt.Errorf("can't create follow: %w", err)
	}

	return nil
}

func (that *dbFollow) IsMutual(ctx context.Context, playerID, otherID string) (bool, error) {
	query := `SELECT COUNT(*) FROM player_followings
		WHERE (player_id = ? AND following_id = ?)
		   OR (player_id = ? AND following_id = ?)`

	var edges int
	err := that.conn.QueryRowContext(ctx, query, playerID, otherID, otherID, playerID).Scan(&edges)
	if err != nil {
		return false, fmt.Errorf("can't check mutual follow: %w", err)
	}

	return edges == 2, nil
}

func (that *dbFollow) ListFollowing(ctx context.Context, playerID string) ([]*entity.Player, error) {
	query := `SELECT players.id, players.username, players.email, players.password_hash,
			players.user_type, players.created_at
		FROM players
		JOIN player_followings ON player_followings.following_id = players.id
		WHERE player_followings.player_id = ?
		ORDER BY player_followings.created_at ASC`

	rows, err := that.conn.QueryContext(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("can't list followed players: %w", err)
	}
	defer rows.Close()

	var players []*entity.Player
	for rows.Next() {
		var player entity.Player
		if err = rows.Scan(&player.ID, &player.Username, &player.Email,
			&player.PasswordHash, &player.UserType, &player.CreatedAt); err != nil {
			return nil, fmt.Errorf("can't scan player: %w", err)
		}
		players = append(players, &player)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read followed players: %w", err)
	}

	return players, nil
}
