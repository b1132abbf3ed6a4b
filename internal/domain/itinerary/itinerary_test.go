package itinerary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/domain/catalog"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/shared/types"
)

func samplePackage() *catalog.Package {
	return &catalog.Package{
		Slug:         "awaken-3-day-mind-body-reset-rishikesh",
		Title:        "Awaken",
		Type:         catalog.Wellness,
		ShortSummary: "Sunrise yoga and sound healing.",
		Location:     "Rishikesh, India",
		DurationDays: 3,
		PriceFrom:    18999,
		Highlights:   []string{"Sunrise yoga"},
		Inclusions:   []string{"Stay", "Daily yoga"},
		Exclusions:   []string{"Flights"},
		Itinerary: []catalog.ItineraryDay{
			{DayNumber: 1, Title: "Arrival & Grounding", Description: "Check-in", Meals: types.Some(catalog.Meals{Dinner: true})},
			{DayNumber: 2, Title: "Energy Alignment", Meals: types.Some(catalog.Meals{Breakfast: true, Lunch: true, Dinner: true})},
			{DayNumber: 3, Title: "Integration"},
		},
		Departures: []catalog.Departure{
			{StartDate: catalog.MustDate("2025-10-02"), EndDate: catalog.MustDate("2025-10-04"), Availability: catalog.Available},
			{
				StartDate:     catalog.MustDate("2025-11-14"),
				EndDate:       catalog.MustDate("2025-11-16"),
				Availability:  catalog.Limited,
				PriceOverride: types.Some(19999.0),
				CTALabel:      types.Some("Few seats left"),
			},
		},
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, samplePackage()))
	out := buf.String()

	assert.Contains(t, out, "Awaken\n======\n")
	assert.Contains(t, out, "Rishikesh, India • 3 days • From ₹18,999")
	assert.Contains(t, out, "Day 1: Arrival & Grounding [D]\n    Check-in\n")
	assert.Contains(t, out, "Day 2: Energy Alignment [BLD]\n")
	assert.Contains(t, out, "Day 3: Integration\n")
	assert.Contains(t, out, "  + Daily yoga\n")
	assert.Contains(t, out, "2025-10-02 to 2025-10-04 (2N)  Available  ₹18,999")
	assert.Contains(t, out, "2025-11-14 to 2025-11-16 (2N)  Limited  ₹19,999  (Few seats left)")

	day1 := strings.Index(out, "Day 1:")
	day2 := strings.Index(out, "Day 2:")
	day3 := strings.Index(out, "Day 3:")
	assert.True(t, day1 < day2 && day2 < day3)
}

func TestRenderWithoutDepartures(t *testing.T) {
	p := samplePackage()
	p.Departures = nil

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, p))
	assert.Contains(t, buf.String(), "Dates coming soon")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "awaken-3-day-mind-body-reset-rishikesh-itinerary.txt", Filename(samplePackage()))
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{18999, "₹18,999"},
		{118999, "₹1,18,999"},
		{12345678, "₹1,23,45,678"},
		{19999.6, "₹20,000"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.in))
		})
	}
}
