package estimator

import (
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/price-scout/internal/metrics"
	"github.com/yourusername/price-scout/internal/models"
)

// CachedEstimator wraps an Estimator with in-memory result memoization.
// Sound because estimation is deterministic in (records, now).
type CachedEstimator struct {
	next      Estimator
	cache     *cache.Cache
	logger    *logrus.Logger
	mu        sync.RWMutex
	hitCount  uint64
	missCount uint64
}

// NewCachedEstimator creates a new caching estimator
func NewCachedEstimator(next Estimator, ttl time.Duration, logger *logrus.Logger) *CachedEstimator {
	if logger == nil {
		logger = logrus.New()
	}
	return &CachedEstimator{
		next:   next,
		cache:  cache.New(ttl, ttl*2),
		logger: logger,
	}
}

// Estimate returns the memoized result for this input when present, otherwise
// delegates and stores the outcome
func (ce *CachedEstimator) Estimate(records []models.ComparableRecord, now time.Time) (*models.EstimationResult, error) {
	key := Fingerprint(records, now)

	if cached, found := ce.cache.Get(key); found {
		if result, ok := cached.(models.EstimationResult); ok {
			ce.recordHit()
			ce.logger.WithField("cache_key", key).Debug("Cache hit for estimate")
			out := result
			return &out, nil
		}
	}
	ce.recordMiss()

	result, err := ce.next.Estimate(records, now)
	if err != nil {
		return nil, err
	}

	// Stored by value so callers cannot mutate the cached copy
	ce.cache.Set(key, *result, cache.DefaultExpiration)
	return result, nil
}

// Clear flushes the entire cache
func (ce *CachedEstimator) Clear() {
	ce.mu.Lock()
	defer ce.mu.Unlock()

	ce.cache.Flush()
	ce.hitCount = 0
	ce.missCount = 0
}

// ItemCount returns the number of memoized results
func (ce *CachedEstimator) ItemCount() int {
	return ce.cache.ItemCount()
}

// Stats returns cache statistics
func (ce *CachedEstimator) Stats() (hits, misses uint64, ratio float64) {
	ce.mu.RLock()
	defer ce.mu.RUnlock()

	hits = ce.hitCount
	misses = ce.missCount
	total := hits + misses
	if total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return
}

func (ce *CachedEstimator) recordHit() {
	ce.mu.Lock()
	ce.hitCount++
	ce.mu.Unlock()
	ce.updateMetrics()
}

func (ce *CachedEstimator) recordMiss() {
	ce.mu.Lock()
	ce.missCount++
	ce.mu.Unlock()
	ce.updateMetrics()
}

func (ce *CachedEstimator) updateMetrics() {
	_, _, ratio := ce.Stats()
	metrics.UpdateCacheHitRatio(ratio)
}
