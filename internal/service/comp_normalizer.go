package service

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yourusername/price-scout/internal/models"
)

// CompNormalizer normalizes raw comparable sales from various sources to standard format
type CompNormalizer struct {
	platformAliasMap map[string]models.Platform // Maps provider platform labels to canonical names
	logger           *log.Logger
}

// NewCompNormalizer creates a new comp normalizer
func NewCompNormalizer(logger *log.Logger) *CompNormalizer {
	return &CompNormalizer{
		platformAliasMap: buildPlatformAliasMap(),
		logger:           logger,
	}
}

// NormalizeComp converts a RawComp from any source to the internal ComparableRecord model
func (n *CompNormalizer) NormalizeComp(raw *models.RawComp) (*models.ComparableRecord, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: raw comp is nil", models.ErrInvalidRecord)
	}

	record := &models.ComparableRecord{
		Title:     sanitizeTitle(raw.Title),
		SoldPrice: n.NormalizePrice(raw.SoldPrice),
		SaleDate:  n.NormalizeSaleDate(raw.SaleDate),
		Platform:  n.normalizePlatform(raw.Platform),
		Condition: normalizeCondition(raw.Condition),
	}

	return record, nil
}

// NormalizeBatch converts raw comps in order, preserving unusable records so
// downstream filtering can count them
func (n *CompNormalizer) NormalizeBatch(raws []models.RawComp) []models.ComparableRecord {
	records := make([]models.ComparableRecord, 0, len(raws))
	for i := range raws {
		record, err := n.NormalizeComp(&raws[i])
		if err != nil {
			continue
		}
		records = append(records, *record)
	}
	return records
}

// NormalizePrice converts a raw sold price to a decimal amount
// Unparsable or negative prices become zero, which marks the record unusable
func (n *CompNormalizer) NormalizePrice(price json.Number) decimal.Decimal {
	if price == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(price.String())
	if err != nil {
		n.logger.Printf("Warning: unparsable sold price %q, treating record as unusable", price)
		return decimal.Zero
	}

	if d.IsNegative() {
		return decimal.Zero
	}

	return d
}

// NormalizeSaleDate parses a raw sale date string into UTC
// Missing or unparsable dates become nil and receive the reduced time weight
func (n *CompNormalizer) NormalizeSaleDate(dateStr *string) *time.Time {
	if dateStr == nil || *dateStr == "" {
		return nil
	}

	// Try full timestamp first (e.g. "2026-01-15T14:30:00Z")
	if t, err := time.Parse(time.RFC3339, *dateStr); err == nil {
		utc := t.UTC()
		return &utc
	}

	// Fall back to date-only format (e.g. "2026-01-15")
	if t, err := time.Parse("2006-01-02", *dateStr); err == nil {
		utc := t.UTC()
		return &utc
	}

	n.logger.Printf("Warning: unparsable sale date %q, treating as unknown", *dateStr)
	return nil
}

// normalizePlatform converts provider-specific platform labels to canonical format
func (n *CompNormalizer) normalizePlatform(platform string) models.Platform {
	trimmed := strings.ToUpper(strings.TrimSpace(platform))
	if trimmed == "" {
		return models.PlatformOther
	}

	// Try exact match first
	if canonical, ok := n.platformAliasMap[trimmed]; ok {
		return canonical
	}

	// Keep unrecognized labels as-is so weighting can fall back to the default
	return models.Platform(trimmed)
}

// normalizeCondition lowercases and trims a raw condition label
func normalizeCondition(condition *string) string {
	if condition == nil {
		return models.ConditionUnknown
	}

	normalized := strings.Join(strings.Fields(strings.ToLower(*condition)), " ")
	if normalized == "" {
		return models.ConditionUnknown
	}

	return normalized
}

// sanitizeTitle removes extra whitespace from listing titles
func sanitizeTitle(title string) string {
	return strings.Join(strings.Fields(title), " ")
}

// buildPlatformAliasMap returns mapping of platform label variations to canonical names
func buildPlatformAliasMap() map[string]models.Platform {
	return map[string]models.Platform{
		"EBAY":                 models.PlatformEBay,
		"EBAY.COM":             models.PlatformEBay,
		"WWW.EBAY.COM":         models.PlatformEBay,
		"AMAZON":               models.PlatformAmazon,
		"AMAZON.COM":           models.PlatformAmazon,
		"AMZN":                 models.PlatformAmazon,
		"ETSY":                 models.PlatformEtsy,
		"POSHMARK":             models.PlatformPoshmark,
		"POSH":                 models.PlatformPoshmark,
		"MERCARI":              models.PlatformMercari,
		"DEPOP":                models.PlatformDepop,
		"FACEBOOK":             models.PlatformFacebook,
		"FACEBOOK MARKETPLACE": models.PlatformFacebook,
		"FB MARKETPLACE":       models.PlatformFacebook,
		"FB":                   models.PlatformFacebook,
		"CRAIGSLIST":           models.PlatformCraigslist,
		"CL":                   models.PlatformCraigslist,
		"OTHER":                models.PlatformOther,
		"UNKNOWN":              models.PlatformOther,
	}
}
