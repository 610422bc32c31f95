package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/playforge/gridgame-backend/internal/entity"
)

type ActionRepository interface {
	// Create appends one move to the game's immutable log.
	Create(ctx context.Context, action *entity.GameAction) error

	// ListByGame returns the full log ordered by (turnNumber, actionNumber).
	ListByGame(ctx context.Context, gameID string) ([]*entity.GameAction, error)

	// ListCells returns every played cell index for a game, both players.
	ListCells(ctx context.Context, gameID string) ([]int, error)

	// ListPlayerCells returns one player's cells, sorted ascending.
	ListPlayerCells(ctx context.Context, gameID, playerID string) ([]int, error)
}

type dbAction struct {
	conn *sql.DB
}

func NewActionRepository(conn *sql.DB) ActionRepository {
	return &dbAction{
		conn: conn,
	}
}

func (that *dbAction) Create(ctx context.Context, action *entity.GameAction) error {
	query := `INSERT INTO game_actions (id, game_id, player_id, turn_number, action_number, action)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query,
		action.ID, action.GameID, action.PlayerID,
		action.TurnNumber, action.ActionNumber, action.Action)
	if err != nil {
		return fmt.Errorf("can't create action: %w", err)
	}

	return nil
}

func (that *dbAction) ListByGame(ctx context.Context, gameID string) ([]*entity.GameAction, error) {
	query := `SELECT id, game_id, player_id, turn_number, action_number, action, created_at
		FROM game_actions WHERE game_id = ?
		ORDER BY turn_number ASC, action_number ASC`

	rows, err := that.conn.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("can't list actions: %w", err)
	}
	defer rows.Close()

	var actions []*entity.GameAction
	for rows.Next() {
		var action entity.GameAction
		if err = rows.Scan(&action.ID, &action.GameID, &action.PlayerID,
			&action.TurnNumber, &action.ActionNumber, &action.Action, &action.CreatedAt); err != nil {
			return nil, fmt.Errorf("can't scan action: %w", err)
		}
		actions = append(actions, &action)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read actions: %w", err)
	}

	return actions, nil
}

func (that *dbAction) ListCells(ctx context.Context, gameID string) ([]int, error) {
	query := `SELECT action FROM game_actions WHERE game_id = ?`

	return that.listCells(ctx, query, gameID)
}

func (that *dbAction) ListPlayerCells(ctx context.Context, gameID, playerID string) ([]int, error) {
	query := `SELECT action FROM game_actions
		WHERE game_id = ? AND player_id = ? ORDER BY action ASC`

	return that.listCells(ctx, query, gameID, playerID)
}

func (that *dbAction) listCells(ctx context.Context, query string, args ...any) ([]int, error) {
	rows, err := that.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("can't list cells: %w", err)
	}
	defer rows.Close()

	var cells []int
	for rows.Next() {
		var cell int
		if err = rows.Scan(&cell); err != nil {
			return nil, fmt.Errorf("can't scan cell: %w", err)
		}
		cells = append(cells, cell)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read cells: %w", err)
	}

	return cells, nil
}
