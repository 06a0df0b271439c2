package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"appraisal/internal/cache"
	apperrors "appraisal/internal/errors"
)

// ClearCachedState drops cached identities and feedback summaries. Run it
// after the store is reset, otherwise entries for dropped users outlive them.
func ClearCachedState(ctx context.Context, c *cache.Client) (int, error) {
	total := 0
	for _, prefix := range []string{userCacheKeyPrefix, summaryCacheKeyPrefix} {
		n, err := c.DeletePrefix(ctx, prefix)
		total += n
		if err != nil {
			return total, fmt.Errorf("clear %s*: %w", prefix, err)
		}
	}
	return total, nil
}

// storeError classifies a repository error. Missing rows become notFound;
// everything else is reported as ErrStoreUnavailable with the cause attached.
func storeError(op string, err error, notFound error) error {
	if err == nil {
		return nil
	}
	if notFound != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("%s: %w: %v", op, apperrors.ErrStoreUnavailable, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
