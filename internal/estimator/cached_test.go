package estimator

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/price-scout/internal/models"
)

type stubEstimator struct {
	calls  int
	result *models.EstimationResult
	err    error
}

func (s *stubEstimator) Estimate(records []models.ComparableRecord, now time.Time) (*models.EstimationResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := *s.result
	return &out, nil
}

func stubResult(price float64) *models.EstimationResult {
	return &models.EstimationResult{
		ID:              uuid.NewSHA1(uuid.NameSpaceOID, []byte("test")),
		SuggestedPrice:  price,
		PriceRange:      models.PriceRange{Min: price - 5, Max: price + 5},
		ConfidenceScore: 0.72,
		ConfidenceLabel: models.ConfidenceHigh,
		CompsUsed:       5,
	}
}

func cacheFixture(now time.Time) []models.ComparableRecord {
	records := make([]models.ComparableRecord, 0, 5)
	for _, price := range []float64{40, 42, 44, 46, 48} {
		records = append(records, datedComp(price, 3, now))
	}
	return records
}

func TestCachedEstimatorMemoizesResult(t *testing.T) {
	now := time.Date(2025, time.April, 2, 10, 0, 0, 0, time.UTC)
	records := cacheFixture(now)

	stub := &stubEstimator{result: stubResult(44)}
	cached := NewCachedEstimator(stub, time.Minute, nil)

	first, err := cached.Estimate(records, now)
	if err != nil {
		t.Fatalf("first Estimate failed: %v", err)
	}
	second, err := cached.Estimate(records, now)
	if err != nil {
		t.Fatalf("second Estimate failed: %v", err)
	}

	if stub.calls != 1 {
		t.Fatalf("expected 1 delegate call, got %d", stub.calls)
	}
	if first.SuggestedPrice != second.SuggestedPrice || first.ID != second.ID {
		t.Fatalf("cached result differs: %v vs %v", first, second)
	}
	if cached.ItemCount() != 1 {
		t.Fatalf("expected 1 cached item, got %d", cached.ItemCount())
	}

	hits, misses, ratio := cached.Stats()
	if hits != 1 || misses != 1 {
		t.Fatalf("expected 1 hit and 1 miss, got %d and %d", hits, misses)
	}
	if ratio != 0.5 {
		t.Fatalf("expected hit ratio 0.5, got %f", ratio)
	}
}

func TestCachedEstimatorDistinguishesInputs(t *testing.T) {
	now := time.Date(2025, time.April, 2, 10, 0, 0, 0, time.UTC)
	records := cacheFixture(now)

	stub := &stubEstimator{result: stubResult(44)}
	cached := NewCachedEstimator(stub, time.Minute, nil)

	if _, err := cached.Estimate(records, now); err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	if _, err := cached.Estimate(records, now.Add(time.Hour)); err != nil {
		t.Fatalf("Estimate with shifted clock failed: %v", err)
	}

	if stub.calls != 2 {
		t.Fatalf("expected 2 delegate calls for distinct inputs, got %d", stub.calls)
	}
	if cached.ItemCount() != 2 {
		t.Fatalf("expected 2 cached items, got %d", cached.ItemCount())
	}
}

func TestCachedEstimatorDoesNotCacheErrors(t *testing.T) {
	now := time.Date(2025, time.April, 2, 10, 0, 0, 0, time.UTC)
	records := cacheFixture(now)

	wantErr := errors.New("upstream failed")
	stub := &stubEstimator{err: wantErr}
	cached := NewCachedEstimator(stub, time.Minute, nil)

	for i := 0; i < 2; i++ {
		if _, err := cached.Estimate(records, now); !errors.Is(err, wantErr) {
			t.Fatalf("expected upstream error, got %v", err)
		}
	}

	if stub.calls != 2 {
		t.Fatalf("expected errors to bypass the cache, got %d delegate calls", stub.calls)
	}
	if cached.ItemCount() != 0 {
		t.Fatalf("expected empty cache after errors, got %d items", cached.ItemCount())
	}
}

func TestCachedEstimatorClear(t *testing.T) {
	now := time.Date(2025, time.April, 2, 10, 0, 0, 0, time.UTC)
	records := cacheFixture(now)

	stub := &stubEstimator{result: stubResult(44)}
	cached := NewCachedEstimator(stub, time.Minute, nil)

	if _, err := cached.Estimate(records, now); err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	cached.Clear()

	if cached.ItemCount() != 0 {
		t.Fatalf("expected empty cache after Clear, got %d items", cached.ItemCount())
	}
	hits, misses, _ := cached.Stats()
	if hits != 0 || misses != 0 {
		t.Fatalf("expected zeroed stats after Clear, got %d hits and %d misses", hits, misses)
	}

	if _, err := cached.Estimate(records, now); err != nil {
		t.Fatalf("Estimate after Clear failed: %v", err)
	}
	if stub.calls != 2 {
		t.Fatalf("expected delegate call after Clear, got %d total calls", stub.calls)
	}
}

func TestCachedEstimatorReturnsCopy(t *testing.T) {
	now := time.Date(2025, time.April, 2, 10, 0, 0, 0, time.UTC)
	records := cacheFixture(now)

	stub := &stubEstimator{result: stubResult(44)}
	cached := NewCachedEstimator(stub, time.Minute, nil)

	first, err := cached.Estimate(records, now)
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	first.SuggestedPrice = -1

	second, err := cached.Estimate(records, now)
	if err != nil {
		t.Fatalf("second Estimate failed: %v", err)
	}
	if second.SuggestedPrice != 44 {
		t.Fatalf("cached copy was mutated through the first result, got %f", second.SuggestedPrice)
	}
}
