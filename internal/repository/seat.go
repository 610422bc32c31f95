package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/playforge/gridgame-backend/internal/apperror"
	"github.com/playforge/gridgame-backend/internal/entity"
)

type SeatRepository interface {
	// Create seats a player without a turn order, for the game creator.
	Create(ctx context.Context, gameID, playerID string) error

	// Take seats a player and decrements the game's open seat count in one
	// transaction. The conditional decrement makes the second of two racing
	// joins fail with ErrGameFull. Returns the seats left open.
	Take(ctx context.Context, gameID, playerID string) (int, error)

	Get(ctx context.Context, gameID, playerID string) (*entity.GameSeat, error)

	// ListByGame returns a game's seats ordered by turn order.
	ListByGame(ctx context.Context, gameID string) ([]*entity.GameSeat, error)

	// AssignTurnOrders writes every seat's turn order and the game's next-turn
	// pointer in one transaction. ordered holds player ids in play order.
	AssignTurnOrders(ctx context.Context, gameID string, ordered []string) error
}

type dbSeat struct {
	conn *sql.DB
}

func NewSeatRepository(conn *sql.DB) SeatRepository {
	return &dbSeat{
		conn: conn,
	}
}

func (that *dbSeat) Create(ctx context.Context, gameID, playerID string) error {
	query := `INSERT INTO game_seats (game_id, player_id) VALUES (?, ?)`

	_, err := that.conn.ExecContext(ctx, query, gameID, playerID)
	if err != nil {
		return fmt.Errorf("can't create seat: %w", err)
	}

	return nil
}

func (that *dbSeat) Take(ctx context.Context, gameID, playerID string) (int, error) {
	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("can't begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	result, err := tx.ExecContext(ctx,
		`UPDATE games SET open_seats = open_seats - 1, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND open_seats > 0`, gameID)
	if err != nil {
		return 0, fmt.Errorf("can't take seat: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("can't read affected rows: %w", err)
	}
	if affected == 0 {
		return 0, fmt.Errorf("game %s: %w", gameID, apperror.ErrGameFull)
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO game_seats (game_id, player_id) VALUES (?, ?)`, gameID, playerID); err != nil {
		return 0, fmt.Errorf("can't create seat: %w", err)
	}

	var openSeats int
	if err = tx.QueryRowContext(ctx,
		`SELECT open_seats FROM games WHERE id = ?`, gameID).Scan(&openSeats); err != nil {
		return 0, fmt.Errorf("can't read open seats: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("can't commit seat: %w", err)
	}

	return openSeats, nil
}

func (that *dbSeat) Get(ctx context.Context, gameID, playerID string) (*entity.GameSeat, error) {
	query := `SELECT game_id, player_id, turn_order FROM game_seats
		WHERE game_id = ? AND player_id = ?`

	var seat entity.GameSeat
	err := that.conn.QueryRowContext(ctx, query, gameID, playerID).
		Scan(&seat.GameID, &seat.PlayerID, &seat.TurnOrder)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("seat for player %s: %w", playerID, apperror.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("can't get seat: %w", err)
	}

	return &seat, nil
}

func (that *dbSeat) ListByGame(ctx context.Context, gameID string) ([]*entity.GameSeat, error) {
	query := `SELECT game_id, player_id, turn_order FROM game_seats
		WHERE game_id = ? ORDER BY turn_order ASC`

	rows, err := that.conn.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("can't list seats: %w", err)
	}
	defer rows.Close()

	var seats []*entity.GameSeat
	for rows.Next() {
		var seat entity.GameSeat
		if err = rows.Scan(&seat.GameID, &seat.PlayerID, &seat.TurnOrder); err != nil {
			return nil, fmt.Errorf("can't scan seat: %w", err)
		}
		seats = append(seats, &seat)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read seats: %w", err)
	}

	return seats, nil
}

func (that *dbSeat) AssignTurnOrders(ctx context.Context, gameID string, ordered []string) error {
	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	for index, playerID := range ordered {
		if _, err = tx.ExecContext(ctx,
			`UPDATE game_seats SET turn_order = ? WHERE game_id = ? AND player_id = ?`,
			index+1, gameID, playerID); err != nil {
			return fmt.Errorf("can't assign turn order: %w", err)
		}
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE games SET next_turn = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		ordered[0], gameID); err != nil {
		return fmt.Errorf("can't set next turn: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit turn orders: %w", err)
	}

	return nil
}
