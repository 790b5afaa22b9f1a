package datasource

import (
	"context"
	"strings"

	"github.com/yourusername/price-scout/internal/models"
)

// StaticSource implements CompSource over an in-memory record set
// It backs tests and offline estimation runs
type StaticSource struct {
	name    string
	comps   []models.RawComp
	enabled bool
}

// NewStaticSource creates a new static comp source
func NewStaticSource(name string, comps []models.RawComp) *StaticSource {
	return &StaticSource{
		name:    name,
		comps:   comps,
		enabled: true,
	}
}

// FetchComps returns comps whose title matches the query
// An empty query returns every record
func (s *StaticSource) FetchComps(ctx context.Context, query string) ([]models.RawComp, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !s.enabled {
		return nil, NewSourceError(s.name, ErrCodeDisabled, "source is disabled", ErrSourceDisabled)
	}

	if query == "" {
		out := make([]models.RawComp, len(s.comps))
		copy(out, s.comps)
		return out, nil
	}

	needle := strings.ToLower(query)
	matched := make([]models.RawComp, 0, len(s.comps))
	for _, comp := range s.comps {
		if strings.Contains(strings.ToLower(comp.Title), needle) {
			matched = append(matched, comp)
		}
	}

	return matched, nil
}

// Name returns the source name
func (s *StaticSource) Name() string {
	return s.name
}

// IsEnabled returns whether the source is enabled
func (s *StaticSource) IsEnabled() bool {
	return s.enabled
}

// SetEnabled toggles the source on or off
func (s *StaticSource) SetEnabled(enabled bool) {
	s.enabled = enabled
}
