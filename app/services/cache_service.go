package services

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/neighborhood-resolver/app/models"
)

// CacheService memoizes single-record resolutions behind the lookup API. The
// reference set never changes within a process lifetime, so entries never go
// stale and a size-bounded LRU is enough.
type CacheService struct {
	cache  *lru.Cache[string, *models.OutputRow]
	logger *zap.Logger
}

// NewCacheService creates an LRU cache of the given size.
func NewCacheService(size int, logger *zap.Logger) (*CacheService, error) {
	cache, err := lru.New[string, *models.OutputRow](size)
	if err != nil {
		return nil, err
	}
	return &CacheService{cache: cache, logger: logger}, nil
}

// Key builds the cache key from the raw request fields.
func (cs *CacheService) Key(province, district, neighborhood string) string {
	return strings.Join([]string{province, district, neighborhood}, "\x1f")
}

func (cs *CacheService) Get(key string) (*models.OutputRow, bool) {
	return cs.cache.Get(key)
}

func (cs *CacheService) Set(key string, row *models.OutputRow) {
	cs.cache.Add(key, row)
}

func (cs *CacheService) Len() int {
	return cs.cache.Len()
}

func (cs *CacheService) Purge() {
	cs.cache.Purge()
	cs.logger.Info("resolution cache purged")
}
