package listing

import (
	"strconv"
	"strings"
)

const (
	lastPrefixConstant = "last "

	dayFilterDaysConstant        = 1
	weekFilterDaysConstant       = 7
	monthFilterDaysConstant      = 30
	quarterFilterDaysConstant    = 90
	halfYearFilterDaysConstant   = 180
	yearFilterDaysConstant       = 365
)

var namedTimeFilters = map[string]int{
	"today":    dayFilterDaysConstant,
	"day":      dayFilterDaysConstant,
	"week":     weekFilterDaysConstant,
	"month":    monthFilterDaysConstant,
	"3 months": quarterFilterDaysConstant,
	"6 months": halfYearFilterDaysConstant,
	"year":     yearFilterDaysConstant,
}

// ParseTimeFilter maps a human recency expression to a day count. Named
// spans, an optional "last " prefix, and bare integers are recognized;
// anything else reports false so callers can fall back to an unfiltered
// listing.
func ParseTimeFilter(filterText string) (int, bool) {
	normalizedText := strings.ToLower(strings.TrimSpace(filterText))
	normalizedText = strings.TrimPrefix(normalizedText, lastPrefixConstant)
	if len(normalizedText) == 0 {
		return 0, false
	}

	if filterDays, known := namedTimeFilters[normalizedText]; known {
		return filterDays, true
	}

	if filterDays, parseError := strconv.Atoi(normalizedText); parseError == nil && filterDays > 0 {
		return filterDays, true
	}

	return 0, false
}
