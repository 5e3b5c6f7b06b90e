package fares

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/faretex/faretex/pkg/redis_client"
)

// OperatorCache fronts the reference store with a short lived redis cache so
// that a burst of submissions from the same operator only hits Mongo once.
type OperatorCache struct {
	Cache *cache.Cache[string]
}

func (c *OperatorCache) Setup() {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(90*time.Minute))

	c.Cache = cache.New[string](redisStore)
}

func (c *OperatorCache) Get(ctx context.Context, operatorCode string) (*Operator, error) {
	cacheKey := fmt.Sprintf("operator_reference:%s", operatorCode)

	operatorCacheValue, err := c.Cache.Get(ctx, cacheKey)
	if err == nil {
		if operatorCacheValue == "N/A" {
			return nil, fmt.Errorf("%w: no reference data for operator %s", ErrInputUnavailable, operatorCode)
		}

		if operator := decodeCachedOperator(operatorCacheValue); operator != nil {
			return operator, nil
		}
		// corrupted cache entry, fall through to the reference store
	}

	operator, lookupErr := GetOperator(ctx, operatorCode)

	if operator == nil {
		c.Cache.Set(ctx, cacheKey, "N/A")
		return nil, lookupErr
	}

	operatorJSON, _ := json.Marshal(operator)
	c.Cache.Set(ctx, cacheKey, string(operatorJSON))

	return operator, nil
}

func decodeCachedOperator(value string) *Operator {
	var operator *Operator
	if err := json.Unmarshal([]byte(value), &operator); err != nil {
		return nil
	}

	return operator
}
