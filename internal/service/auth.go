package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/playforge/gridgame-backend/internal/apperror"
	"github.com/playforge/gridgame-backend/internal/entity"
)

type playerRepo interface {
	Create(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	GetByUsername(ctx context.Context, username string) (*entity.Player, error)
}

type tokenRepo interface {
	Save(ctx context.Context, token, playerID string, ttl time.Duration) error
	Resolve(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// AuthService is the account/identity collaborator: registration, opaque
// bearer tokens, and per-request identity resolution.
type AuthService struct {
	players  playerRepo
	tokens   tokenRepo
	tokenTTL time.Duration
}

func NewAuthService(players playerRepo, tokens tokenRepo, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		players:  players,
		tokens:   tokens,
		tokenTTL: tokenTTL,
	}
}

func (that *AuthService) Register(ctx context.Context, username, email, password string) (*entity.Player, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	player := &entity.Player{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		UserType:     entity.UserTypeStandard,
	}

	if err = that.players.Create(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

func (that *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	player, err := that.players.GetByUsername(ctx, username)
	if errors.Is(err, apperror.ErrNotFound) {
		return "", apperror.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to get player by username: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte(password)) != nil {
		return "", apperror.ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err = that.tokens.Save(ctx, token, player.ID, that.tokenTTL); err != nil {
		return "", fmt.Errorf("failed to save token: %w", err)
	}

	return token, nil
}

// PlayerByToken resolves a bearer token to its player for the auth middleware.
func (that *AuthService) PlayerByToken(ctx context.Context, token string) (*entity.Player, error) {
	playerID, err := that.tokens.Resolve(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}

	player, err := that.players.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

func (that *AuthService) Logout(ctx context.Context, token string) error {
	if err := that.tokens.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}

	return nil
}
