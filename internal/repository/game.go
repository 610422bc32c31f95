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

type GameRepository interface {
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)

	// UpdateState persists the mutable tail-state fields of a game. The
	// expectedTurns guard makes a losing concurrent writer fail with
	// ErrConcurrentUpdate instead of clobbering the move count.
	UpdateState(ctx context.Context, game *entity.Game, expectedTurns int) error

	ListJoinable(ctx context.Context, playerID string, search entity.GameSearch) ([]*entity.Game, error)
	ListByPlayer(ctx context.Context, playerID string, search entity.GameSearch) ([]*entity.Game, error)
}

type dbGame struct {
	conn *sql.DB
}

func NewGameRepository(conn *sql.DB) GameRepository {
	return &dbGame{
		conn: conn,
	}
}

const gameColumns = `id, board_rows, board_columns, player_count, open_seats, password,
	is_mutual_follows_only, complete_turns_count, is_complete, next_turn, winner,
	created_by, created_at, updated_at`

func (that *dbGame) Create(ctx context.Context, game *entity.Game) error {
	query := `INSERT INTO games (id, board_rows, board_columns, player_count, open_seats,
		password, is_mutual_follows_only, complete_turns_count, is_complete, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query,
		game.ID, game.BoardRows, game.BoardColumns, game.PlayerCount, game.OpenSeats,
		game.Password, game.IsMutualFollowsOnly, game.CompleteTurnsCount, game.IsComplete,
		game.CreatedBy)
	if err != nil {
		return fmt.Errorf("can't create game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = ?`

	game, err := scanGame(that.conn.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("game %s: %w", id, apperror.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("can't get game by id: %w", err)
	}

	return game, nil
}

func (that *dbGame) UpdateState(ctx context.Context, game *entity.Game, expectedTurns int) error {
	query := `UPDATE games
		SET complete_turns_count = ?, is_complete = ?, next_turn = ?, winner = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND complete_turns_count = ?`

	result, err := that.conn.ExecContext(ctx, query,
		game.CompleteTurnsCount, game.IsComplete, game.NextTurn, game.Winner,
		game.ID, expectedTurns)
	if err != nil {
		return fmt.Errorf("can't update game state: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("game %s: %w", game.ID, apperror.ErrConcurrentUpdate)
	}

	return nil
}

func (that *dbGame) ListJoinable(ctx context.Context, playerID string, search entity.GameSearch) ([]*entity.Game, error) {
	where := []string{"is_complete = 0", "created_by != ?", "open_seats > 0"}
	args := []any{playerID}

	clauses, clauseArgs := searchClauses(search)
	where = append(where, clauses...)
	args = append(args, clauseArgs...)

	query := `SELECT ` + gameColumns + ` FROM games WHERE ` +
		strings.Join(where, " AND ") + ` ORDER BY created_at ASC`

	return that.list(ctx, query, args...)
}

func (that *dbGame) ListByPlayer(ctx context.Context, playerID string, search entity.GameSearch) ([]*entity.Game, error) {
	where := []string{"game_seats.player_id = ?"}
	args := []any{playerID}

	if search.Active != nil {
		// active=true means not complete; the filter shape mirrors the
		// is_complete != active comparison of the mobile clients.
		where = append(where, "games.is_complete != ?")
		args = append(args, *search.Active)
	}

	query := `SELECT ` + prefixColumns(gameColumns, "games.") + `
		FROM games
		JOIN game_seats ON game_seats.game_id = games.id
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY games.created_at ASC`

	return that.list(ctx, query, args...)
}

// searchClauses translates the optional discovery filters to SQL. Minimum
// bounds only apply above the default board size of 3.
func searchClauses(search entity.GameSearch) ([]string, []any) {
	var where []string
	var args []any

	if search.IsPasswordProtected != nil {
		if *search.IsPasswordProtected {
			where = append(where, "password != ''")
		} else {
			where = append(where, "password = ''")
		}
	}
	if search.IsMutualFollowsOnly != nil {
		where = append(where, "is_mutual_follows_only = ?")
		args = append(args, *search.IsMutualFollowsOnly)
	}
	if search.MinRows != nil && *search.MinRows > entity.DefaultBoardRows {
		where = append(where, "board_rows >= ?")
		args = append(args, *search.MinRows)
	}
	if search.MaxRows != nil {
		where = append(where, "board_rows <= ?")
		args = append(args, *search.MaxRows)
	}
	if search.MinColumns != nil && *search.MinColumns > entity.DefaultBoardColumns {
		where = append(where, "board_columns >= ?")
		args = append(args, *search.MinColumns)
	}
	if search.MaxColumns != nil {
		where = append(where, "board_columns <= ?")
		args = append(args, *search.MaxColumns)
	}

	return where, args
}

func prefixColumns(columns, prefix string) string {
	parts := strings.Split(columns, ",")
	for i, part := range parts {
		parts[i] = prefix + strings.TrimSpace(part)
	}
	return strings.Join(parts, ", ")
}

func (that *dbGame) list(ctx context.Context, query string, args ...any) ([]*entity.Game, error) {
	rows, err := that.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("can't list games: %w", err)
	}
	defer rows.Close()

	var games []*entity.Game
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("can't scan game: %w", err)
		}
		games = append(games, game)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read games: %w", err)
	}

	return games, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (*entity.Game, error) {
	var game entity.Game
	err := row.Scan(&game.ID, &game.BoardRows, &game.BoardColumns, &game.PlayerCount,
		&game.OpenSeats, &game.Password, &game.IsMutualFollowsOnly, &game.CompleteTurnsCount,
		&game.IsComplete, &game.NextTurn, &game.Winner, &game.CreatedBy,
		&game.CreatedAt, &game.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &game, nil
}
