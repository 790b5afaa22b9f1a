package service

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yourusername/price-scout/internal/models"
)

// maxReasonablePrice caps sold prices accepted without a validation problem
var maxReasonablePrice = decimal.NewFromInt(1000000)

// CompValidator validates normalized comparable records
type CompValidator struct {
	logger *log.Logger
}

// NewCompValidator creates a new comp validator
func NewCompValidator(logger *log.Logger) *CompValidator {
	return &CompValidator{logger: logger}
}

// ValidateComp validates a record for required fields and constraints
func (v *CompValidator) ValidateComp(record *models.ComparableRecord) []string {
	var problems []string

	// Check required fields
	if record.Title == "" {
		problems = append(problems, "title is required")
	}

	if !record.SoldPrice.IsPositive() {
		problems = append(problems, fmt.Sprintf("sold price must be positive, got %s", record.SoldPrice))
	}

	if record.SoldPrice.GreaterThan(maxReasonablePrice) {
		problems = append(problems, fmt.Sprintf("sold price out of range (max %s), got %s", maxReasonablePrice, record.SoldPrice))
	}

	if record.Condition == "" {
		problems = append(problems, "condition is required")
	}

	// Check sale date is not in the future or unreasonably old
	now := time.Now()
	if record.SaleDate != nil {
		if record.SaleDate.After(now.Add(24 * time.Hour)) {
			problems = append(problems, fmt.Sprintf("sale date in future by %v", record.SaleDate.Sub(now)))
		}

		if record.SaleDate.Before(now.Add(-10 * 365 * 24 * time.Hour)) {
			problems = append(problems, "sale date more than 10 years in past")
		}
	}

	return problems
}

// UsableRecords returns the subset of records carrying a positive sold price
func (v *CompValidator) UsableRecords(records []models.ComparableRecord) []models.ComparableRecord {
	usable := make([]models.ComparableRecord, 0, len(records))
	for _, record := range records {
		if record.HasPrice() {
			usable = append(usable, record)
		}
	}
	return usable
}

// IsValidPlatform checks if a platform is one of the canonical marketplaces
func (v *CompValidator) IsValidPlatform(platform models.Platform) bool {
	validPlatforms := map[models.Platform]bool{
		models.PlatformEBay:       true,
		models.PlatformAmazon:     true,
		models.PlatformEtsy:       true,
		models.PlatformPoshmark:   true,
		models.PlatformMercari:    true,
		models.PlatformDepop:      true,
		models.PlatformFacebook:   true,
		models.PlatformCraigslist: true,
		models.PlatformOther:      true,
	}

	return validPlatforms[platform]
}

// IsValidCondition checks if a condition label is commonly used
func (v *CompValidator) IsValidCondition(condition string) bool {
	validConditions := map[string]bool{
		"new": true, "like new": true, "excellent": true, "very good": true,
		"good": true, "acceptable": true, "fair": true, "poor": true,
		"used": true, "refurbished": true, "for parts": true,
		models.ConditionUnknown: true,
	}

	return validConditions[condition]
}

// IsValidTitle checks if a listing title is in expected format
func (v *CompValidator) IsValidTitle(title string) bool {
	// Simple validation: non-empty and reasonable length
	return len(title) > 0 && len(title) < 500
}
