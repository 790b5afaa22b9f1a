package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Platform represents the marketplace a comparable sale was observed on
type Platform string

const (
	PlatformEBay       Platform = "EBAY"
	PlatformAmazon     Platform = "AMAZON"
	PlatformEtsy       Platform = "ETSY"
	PlatformPoshmark   Platform = "POSHMARK"
	PlatformMercari    Platform = "MERCARI"
	PlatformDepop      Platform = "DEPOP"
	PlatformFacebook   Platform = "FACEBOOK"
	PlatformCraigslist Platform = "CRAIGSLIST"
	PlatformOther      Platform = "OTHER"
)

// ConditionUnknown is the bucket for records without a usable condition label
const ConditionUnknown = "unknown"

// RawComp represents a comparable sale as delivered by a marketplace search
// client, before normalization
type RawComp struct {
	Title     string      `json:"title"`
	SoldPrice json.Number `json:"sold_price"`
	SaleDate  *string     `json:"sale_date"` // ISO-8601 or null
	Platform  string      `json:"platform"`
	Condition *string     `json:"condition"`
}

// ComparableRecord represents a normalized completed sale used as market evidence
type ComparableRecord struct {
	Title     string          `json:"title" validate:"required"`
	SoldPrice decimal.Decimal `json:"sold_price"`
	SaleDate  *time.Time      `json:"sale_date"`
	Platform  Platform        `json:"platform" validate:"required"`
	Condition string          `json:"condition" validate:"required"`
}

// PriceFloat returns the sold price as a float64 for statistical work
func (c *ComparableRecord) PriceFloat() float64 {
	price, _ := c.SoldPrice.Float64()
	return price
}

// HasPrice checks whether the record carries a usable positive price
func (c *ComparableRecord) HasPrice() bool {
	return c.SoldPrice.IsPositive()
}

// AgeDays returns the fractional age of the sale in days at the given time,
// floored at 0 for future-dated records
func (c *ComparableRecord) AgeDays(now time.Time) float64 {
	if c.SaleDate == nil {
		return 0
	}
	days := now.Sub(*c.SaleDate).Hours() / 24
	if days < 0 {
		return 0
	}
	return days
}

// SoldWithin checks whether the sale happened inside the window ending at now.
// Records without a sale date never count as recent.
func (c *ComparableRecord) SoldWithin(window time.Duration, now time.Time) bool {
	if c.SaleDate == nil {
		return false
	}
	return !c.SaleDate.Before(now.Add(-window))
}
