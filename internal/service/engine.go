package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/playforge/gridgame-backend/internal/apperror"
	"github.com/playforge/gridgame-backend/internal/board"
	"github.com/playforge/gridgame-backend/internal/entity"
)

type gameRepo interface {
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	UpdateState(ctx context.Context, game *entity.Game, expectedTurns int) error
	ListJoinable(ctx context.Context, playerID string, search entity.GameSearch) ([]*entity.Game, error)
	ListByPlayer(ctx context.Context, playerID string, search entity.GameSearch) ([]*entity.Game, error)
}

type seatRepo interface {
	Create(ctx context.Context, gameID, playerID string) error
	Take(ctx context.Context, gameID, playerID string) (int, error)
	Get(ctx context.Context, gameID, playerID string) (*entity.GameSeat, error)
	ListByGame(ctx context.Context, gameID string) ([]*entity.GameSeat, error)
	AssignTurnOrders(ctx context.Context, gameID string, ordered []string) error
}

type actionRepo interface {
	Create(ctx context.Context, action *entity.GameAction) error
	ListByGame(ctx context.Context, gameID string) ([]*entity.GameAction, error)
	ListCells(ctx context.Context, gameID string) ([]int, error)
	ListPlayerCells(ctx context.Context, gameID, playerID string) ([]int, error)
}

type followRepo interface {
	IsMutual(ctx context.Context, playerID, otherID string) (bool, error)
}

// Shuffle permutes n elements via swap. Injected so seat ordering is
// deterministic in tests; production wiring passes rand.Shuffle.
type Shuffle func(n int, swap func(i, j int))

// GameEngine orchestrates game creation, seat-filling, move validation, state
// advancement and completion transitions.
type GameEngine struct {
	logger *slog.Logger

	games   gameRepo
	seats   seatRepo
	actions actionRepo
	follows followRepo

	shuffle Shuffle
}

func NewGameEngine(logger *slog.Logger, games gameRepo, seats seatRepo, actions actionRepo, follows followRepo, shuffle Shuffle) *GameEngine {
	return &GameEngine{
		logger:  logger,
		games:   games,
		seats:   seats,
		actions: actions,
		follows: follows,
		shuffle: shuffle,
	}
}

// CreateGame persists a new game and seats the creator. Only square boards are
// supported; asymmetric boards need a separate win-length setting first.
func (that *GameEngine) CreateGame(ctx context.Context, creatorID string, settings entity.GameSettings) (*entity.Game, error) {
	if settings.Rows != settings.Columns {
		return nil, fmt.Errorf("%dx%d: %w", settings.Rows, settings.Columns, apperror.ErrNonSquareBoard)
	}

	game := entity.NewGame(uuid.NewString(), settings.Rows, settings.Columns,
		settings.Password, settings.IsMutualFollowsOnly, creatorID)

	if err := that.games.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err := that.seats.Create(ctx, game.ID, creatorID); err != nil {
		return nil, fmt.Errorf("failed to seat creator: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "rows", game.BoardRows)

	return game, nil
}

// JoinGame validates the seat gates, seats the player, and on the last seat
// assigns the shuffled turn order.
func (that *GameEngine) JoinGame(ctx context.Context, gameID, playerID, password string) error {
	game, err := that.games.GetByID(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to get game by id: %w", err)
	}

	if !game.HasOpenSeats() {
		return fmt.Errorf("game %s: %w", gameID, apperror.ErrGameFull)
	}

	// Rejoining is a no-op; the player already holds a seat.
	if _, err = that.seats.Get(ctx, gameID, playerID); err == nil {
		return nil
	}

	if game.IsPasswordProtected() && password != game.Password {
		return fmt.Errorf("game %s: %w", gameID, apperror.ErrWrongPassword)
	}

	if game.IsMutualFollowsOnly {
		mutual, followErr := that.follows.IsMutual(ctx, playerID, game.CreatedBy)
		if followErr != nil {
			return fmt.Errorf("failed to check mutual follow: %w", followErr)
		}
		if !mutual {
			return fmt.Errorf("game %s: %w", gameID, apperror.ErrNotMutualFollows)
		}
	}

	openSeats, err := that.seats.Take(ctx, gameID, playerID)
	if err != nil {
		return fmt.Errorf("failed to take seat: %w", err)
	}

	if openSeats == 0 {
		if err = that.assignTurnOrder(ctx, gameID); err != nil {
			return err
		}
	}

	return nil
}

// assignTurnOrder runs exactly once per game, on the seat-filling transition.
// All seats get their 1-based order in one atomic batch.
func (that *GameEngine) assignTurnOrder(ctx context.Context, gameID string) error {
	seats, err := that.seats.ListByGame(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to list seats: %w", err)
	}

	ordered := make([]string, len(seats))
	for i, seat := range seats {
		ordered[i] = seat.PlayerID
	}
	that.shuffle(len(ordered), func(i, j int) {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	})

	if err = that.seats.AssignTurnOrders(ctx, gameID, ordered); err != nil {
		return fmt.Errorf("failed to assign turn orders: %w", err)
	}

	that.logger.Info("turn order assigned", "gameID", gameID, "first", ordered[0])

	return nil
}

// SubmitMove appends one move to the game's log and advances the cached game
// state: win detection, draw on a full board, or next-turn rotation.
func (that *GameEngine) SubmitMove(ctx context.Context, gameID, playerID string, cell int) error {
	game, err := that.games.GetByID(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to get game by id: %w", err)
	}

	if game.IsComplete {
		return fmt.Errorf("game %s: %w", gameID, apperror.ErrGameComplete)
	}

	if playerID != game.NextTurn {
		return fmt.Errorf("game %s: %w", gameID, apperror.ErrNotYourTurn)
	}

	if !board.InBounds(cell, game.BoardRows, game.BoardColumns) {
		return fmt.Errorf("cell %d: %w", cell, apperror.ErrCellOutOfBounds)
	}

	playedCells, err := that.actions.ListCells(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to list played cells: %w", err)
	}
	for _, played := range playedCells {
		if played == cell {
			return fmt.Errorf("cell %d: %w", cell, apperror.ErrCellOccupied)
		}
	}

	action := &entity.GameAction{
		ID:           uuid.NewString(),
		GameID:       gameID,
		PlayerID:     playerID,
		TurnNumber:   game.CompleteTurnsCount + 1,
		ActionNumber: 1,
		Action:       cell,
	}
	if err = that.actions.Create(ctx, action); err != nil {
		return fmt.Errorf("failed to append action: %w", err)
	}

	playerCells, err := that.actions.ListPlayerCells(ctx, gameID, playerID)
	if err != nil {
		return fmt.Errorf("failed to list player cells: %w", err)
	}

	row, col := board.RowCol(cell, game.BoardColumns)
	if board.IsWinningMove(game.BoardRows, game.BoardColumns, row, col, playerCells) {
		game.Winner = playerID
		game.IsComplete = true
	}

	expectedTurns := game.CompleteTurnsCount
	game.CompleteTurnsCount++

	// Full board with no winner is a draw.
	if game.CompleteTurnsCount == game.BoardSize() {
		game.IsComplete = true
	}

	if game.IsComplete {
		game.NextTurn = ""
	} else {
		next, nextErr := that.nextSeatedPlayer(ctx, game, playerID)
		if nextErr != nil {
			return nextErr
		}
		game.NextTurn = next
	}

	if err = that.games.UpdateState(ctx, game, expectedTurns); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsComplete {
		that.logger.Info("game complete", "gameID", gameID, "winner", game.Winner,
			"turns", game.CompleteTurnsCount)
	}

	return nil
}

// ResignGame completes the game immediately. If the game has started the next
// player by turn order wins; a game that never filled completes with no winner.
func (that *GameEngine) ResignGame(ctx context.Context, gameID, playerID string) error {
	game, err := that.games.GetByID(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to get game by id: %w", err)
	}

	if game.HasStarted() {
		winner, nextErr := that.nextSeatedPlayer(ctx, game, playerID)
		if nextErr != nil {
			return nextErr
		}
		game.Winner = winner
	}

	game.IsComplete = true
	game.NextTurn = ""

	if err = that.games.UpdateState(ctx, game, game.CompleteTurnsCount); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Info("game resigned", "gameID", gameID, "player", playerID, "winner", game.Winner)

	return nil
}

// nextSeatedPlayer walks the turn order one position past playerID, wrapping
// after the last seat.
func (that *GameEngine) nextSeatedPlayer(ctx context.Context, game *entity.Game, playerID string) (string, error) {
	seats, err := that.seats.ListByGame(ctx, game.ID)
	if err != nil {
		return "", fmt.Errorf("failed to list seats: %w", err)
	}

	current := -1
	for i, seat := range seats {
		if seat.PlayerID == playerID {
			current = i
			break
		}
	}
	if current == -1 {
		return "", fmt.Errorf("game %s player %s: %w", game.ID, playerID, apperror.ErrPlayerNotSeated)
	}

	return seats[(current+1)%game.PlayerCount].PlayerID, nil
}

// MoveHistory returns a game's ordered move log, optionally only turns after
// sinceTurn. Only seated players or admins may read it.
func (that *GameEngine) MoveHistory(ctx context.Context, gameID string, sinceTurn int, requester *entity.Player) ([]*entity.GameAction, error) {
	game, err := that.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	actions, err := that.actions.ListByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}

	if len(actions) == 0 {
		return nil, fmt.Errorf("game %s: %w", gameID, apperror.ErrNoActions)
	}

	if !that.mayReadHistory(game, actions, requester) {
		return nil, fmt.Errorf("game %s: %w", gameID, apperror.ErrForbidden)
	}

	filtered := make([]*entity.GameAction, 0, len(actions))
	for _, action := range actions {
		if action.TurnNumber > sinceTurn {
			filtered = append(filtered, action)
		}
	}

	return filtered, nil
}

// A reader proves membership by holding the next turn, having created the
// game, or having at least one logged action. Admins may always read.
func (that *GameEngine) mayReadHistory(game *entity.Game, actions []*entity.GameAction, requester *entity.Player) bool {
	if requester.IsAdmin() {
		return true
	}
	if game.NextTurn == requester.ID || game.CreatedBy == requester.ID {
		return true
	}
	for _, action := range actions {
		if action.PlayerID == requester.ID {
			return true
		}
	}
	return false
}

// JoinableGames lists games the player could join: open seats, not their own,
// not complete, newest last.
func (that *GameEngine) JoinableGames(ctx context.Context, playerID string, search entity.GameSearch) ([]*entity.Game, error) {
	games, err := that.games.ListJoinable(ctx, playerID, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list joinable games: %w", err)
	}

	return games, nil
}

// PlayerGames lists games the player holds a seat in.
func (that *GameEngine) PlayerGames(ctx context.Context, playerID string, search entity.GameSearch) ([]*entity.Game, error) {
	games, err := that.games.ListByPlayer(ctx, playerID, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list player games: %w", err)
	}

	return games, nil
}
