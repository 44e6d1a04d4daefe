package location

import (
	"context"

	"go.uber.org/zap"

	"sevanear/internal/domain"
)

// DefaultCoordinate is the Kozhikode fallback used when every strategy in
// the chain fails.
var DefaultCoordinate = domain.Coordinate{Latitude: 11.2588, Longitude: 75.7804}

// Chain resolves the current position by trying strategies in order, falling
// through on any error and resolving to a fixed coordinate when none
// succeed. It never fails outward.
type Chain struct {
	strategies []domain.Strategy
	fallback   domain.Coordinate
	log        *zap.Logger
}

// NewChain builds a chain over the given strategies with the given fallback.
func NewChain(log *zap.Logger, fallback domain.Coordinate, strategies ...domain.Strategy) *Chain {
	if log == nil {
		log = zap.NewNop()
	}
	return &Chain{strategies: strategies, fallback: fallback, log: log}
}

// Position returns the first strategy's coordinate, or the fallback.
func (c *Chain) Position(ctx context.Context) domain.Coordinate {
	for _, s := range c.strategies {
		pos, err := s.Position(ctx)
		if err != nil {
			c.log.Debug("location strategy unavailable", zap.Error(err))
			continue
		}
		return pos
	}
	return c.fallback
}

// Compile-time assertion that Chain implements domain.Locator.
var _ domain.Locator = (*Chain)(nil)
