package service

import (
	"context"
	"fmt"

	"github.com/playforge/gridgame-backend/internal/entity"
)

type followEdgeRepo interface {
	Create(ctx context.Context, playerID, followingID string) error
	IsMutual(ctx context.Context, playerID, otherID string) (bool, error)
	ListFollowing(ctx context.Context, playerID string) ([]*entity.Player, error)
}

// FollowService maintains the social follow graph consulted by the
// mutual-follows join gate.
type FollowService struct {
	players playerRepo
	follows followEdgeRepo
}

func NewFollowService(players playerRepo, follows followEdgeRepo) *FollowService {
	return &FollowService{
		players: players,
		follows: follows,
	}
}

// Follow records playerID following targetID and returns the followed player.
func (that *FollowService) Follow(ctx context.Context, playerID, targetID string) (*entity.Player, error) {
	target, err := that.players.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if err = that.follows.Create(ctx, playerID, target.ID); err != nil {
		return nil, fmt.Errorf("failed to create follow: %w", err)
	}

	return target, nil
}

func (that *FollowService) Following(ctx context.Context, playerID string) ([]*entity.Player, error) {
	players, err := that.follows.ListFollowing(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followed players: %w", err)
	}

	return players, nil
}
