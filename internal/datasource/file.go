package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/yourusername/price-scout/internal/models"
)

// FileSource implements CompSource over a JSON file holding an array of raw comps
type FileSource struct {
	name    string
	path    string
	enabled bool
	logger  *log.Logger
}

// NewFileSource creates a new file-backed comp source
func NewFileSource(name, path string, logger *log.Logger) *FileSource {
	return &FileSource{
		name:    name,
		path:    path,
		enabled: true,
		logger:  logger,
	}
}

// FetchComps reads the backing file and returns comps whose title matches the query
// An empty query returns every record
func (f *FileSource) FetchComps(ctx context.Context, query string) ([]models.RawComp, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !f.enabled {
		return nil, NewSourceError(f.name, ErrCodeDisabled, "source is disabled", ErrSourceDisabled)
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewSourceError(f.name, ErrCodeNotFound, fmt.Sprintf("comp file not found at %s", f.path), err)
		}
		return nil, NewSourceError(f.name, ErrCodeUnknown, "failed to read comp file", err)
	}

	var comps []models.RawComp
	if err := json.Unmarshal(data, &comps); err != nil {
		return nil, NewSourceError(f.name, ErrCodeInvalidData, "failed to parse comp file", ErrInvalidData)
	}

	if f.logger != nil {
		f.logger.Printf("Loaded %d comps from %s", len(comps), f.path)
	}

	if query == "" {
		return comps, nil
	}

	needle := strings.ToLower(query)
	matched := make([]models.RawComp, 0, len(comps))
	for _, comp := range comps {
		if strings.Contains(strings.ToLower(comp.Title), needle) {
			matched = append(matched, comp)
		}
	}

	return matched, nil
}

// Name returns the source name
func (f *FileSource) Name() string {
	return f.name
}

// IsEnabled returns whether the source is enabled
func (f *FileSource) IsEnabled() bool {
	return f.enabled
}
