package cache

import (
	"context"
	"fmt"
)

type noopCache struct{}

// NewNoop returns a cache that stores nothing. Every Get is a miss and every counter stays at one.
func NewNoop() Cache {
	return noopCache{}
}

func (noopCache) Save(context.Context, string, any, int) error {
	return nil
}

func (noopCache) Get(_ context.Context, key string, _ any) error {
	return fmt.Errorf("cache disabled, %s: %w", key, Nil)
}

func (noopCache) Increment(context.Context, string, int) (int64, error) {
	return 1, nil
}

func (noopCache) Clear(context.Context, string) error {
	return nil
}
