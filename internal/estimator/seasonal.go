package estimator

import (
	"strings"
	"time"
)

// seasonCategory identifies the demand pattern a listing title falls under
type seasonCategory int

const (
	seasonGeneric seasonCategory = iota
	seasonWinterWear
	seasonSummerWear
	seasonElectronics
	seasonSports
)

// Ordered keyword tables; the first category with a matching keyword wins.
var seasonKeywordTable = []struct {
	category seasonCategory
	keywords []string
}{
	{seasonWinterWear, []string{
		"coat", "parka", "jacket", "sweater", "hoodie", "beanie",
		"scarf", "glove", "mitten", "boots", "fleece", "thermal",
		"ski", "snowboard", "snow",
	}},
	{seasonSummerWear, []string{
		"swimsuit", "swim trunk", "bikini", "shorts", "sandal",
		"flip flop", "tank top", "sunglasses", "beach",
	}},
	{seasonElectronics, []string{
		"laptop", "tablet", "phone", "console", "headphone", "earbud",
		"camera", "monitor", "keyboard", "gpu", "graphics card", "tv",
		"speaker", "smartwatch",
	}},
	{seasonSports, []string{
		"baseball", "softball", "golf", "tennis", "bike", "bicycle",
		"kayak", "paddle", "surfboard", "cleat", "lacrosse", "soccer",
	}},
}

// SeasonalMultiplier scores how the month a comp sold in shifts its relevance
// to today's market. Listings are bucketed by title keywords; each bucket has
// its own high and low season. Comps without a sale date score a flat 1.0.
func SeasonalMultiplier(title string, saleDate *time.Time) float64 {
	if saleDate == nil {
		return 1.0
	}
	month := saleDate.Month()

	switch detectSeasonCategory(title) {
	case seasonWinterWear:
		if month == time.December || month <= time.February {
			return 1.25
		}
		if month >= time.June && month <= time.August {
			return 0.75
		}
		return 1.0
	case seasonSummerWear:
		if month >= time.June && month <= time.August {
			return 1.25
		}
		if month == time.December || month <= time.February {
			return 0.75
		}
		return 1.0
	case seasonElectronics:
		if month == time.November || month == time.December {
			return 1.15
		}
		if month <= time.February {
			return 0.85
		}
		return 1.0
	case seasonSports:
		if month >= time.April && month <= time.September {
			return 1.10
		}
		return 0.90
	default:
		if month == time.November || month == time.December {
			return 1.1
		}
		if month <= time.February {
			return 0.9
		}
		return 1.0
	}
}

func detectSeasonCategory(title string) seasonCategory {
	normalized := strings.ToLower(title)
	for _, entry := range seasonKeywordTable {
		for _, keyword := range entry.keywords {
			if strings.Contains(normalized, keyword) {
				return entry.category
			}
		}
	}
	return seasonGeneric
}
