package listing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gclone/internal/listing"
)

func TestParseTimeFilter(t *testing.T) {
	testCases := []struct {
		name               string
		filterText         string
		expectedDays       int
		expectedRecognized bool
	}{
		{name: "today", filterText: "today", expectedDays: 1, expectedRecognized: true},
		{name: "day", filterText: "day", expectedDays: 1, expectedRecognized: true},
		{name: "week", filterText: "week", expectedDays: 7, expectedRecognized: true},
		{name: "last_week", filterText: "last week", expectedDays: 7, expectedRecognized: true},
		{name: "month", filterText: "month", expectedDays: 30, expectedRecognized: true},
		{name: "three_months", filterText: "3 months", expectedDays: 90, expectedRecognized: true},
		{name: "six_months", filterText: "6 months", expectedDays: 180, expectedRecognized: true},
		{name: "year", filterText: "year", expectedDays: 365, expectedRecognized: true},
		{name: "integer_days", filterText: "30", expectedDays: 30, expectedRecognized: true},
		{name: "mixed_case_with_padding", filterText: "  Week ", expectedDays: 7, expectedRecognized: true},
		{name: "unrecognized_word", filterText: "bogus", expectedRecognized: false},
		{name: "empty", filterText: "", expectedRecognized: false},
		{name: "negative_days", filterText: "-5", expectedRecognized: false},
		{name: "zero_days", filterText: "0", expectedRecognized: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			filterDays, recognized := listing.ParseTimeFilter(testCase.filterText)
			require.Equal(t, testCase.expectedRecognized, recognized)
			if testCase.expectedRecognized {
				require.Equal(t, testCase.expectedDays, filterDays)
			}
		})
	}
}
