package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"

	"venuely/shared/cache"
	"venuely/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the prefix and every non-empty part with ":".
func BuildCacheKey(prefix string, parts ...string) string {
	key := []string{prefix}

	for _, part := range parts {
		if part == "" {
			continue
		}

		key = append(key, part)
	}

	return strings.Join(key, cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key from the paging params and the rendered filter.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	keys := make([]string, 0, len(args))
	for key := range args {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	var builder strings.Builder

	fmt.Fprintf(&builder, "%d|%d|%s|%s|%s", params.Page, params.Limit, params.SortBy, params.SortDir, where)

	for _, key := range keys {
		fmt.Fprintf(&builder, "|%s=%v", key, args[key])
	}

	sum := sha256.Sum256([]byte(builder.String()))

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:8]))
}

// InvalidateCaches removes every key under prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
