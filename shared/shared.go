package shared

import (
	"context"
	"roomapi/shared/cache"
	"roomapi/shared/constant"
	"roomapi/shared/dto"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins prefix and the non-empty parts with ':'.
func BuildCacheKey(prefix string, parts ...string) string {
	key := []string{prefix}

	for _, part := range parts {
		if part != constant.Empty {
			key = append(key, part)
		}
	}

	return strings.Join(key, cacheKeySeparator)
}

// InvalidateCaches drops every key under prefix. Failures are logged, not returned.
func InvalidateCaches(ctx context.Context, c cache.Cache, prefix string) {
	if err := c.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// FilterByID matches the row whose fieldID column equals id.
func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []dto.Condition{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
