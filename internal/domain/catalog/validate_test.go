package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/shared/types"
)

func TestNewRejectsInvalidDefinitions(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(pkgs []Package) []Package
		wantMsg string
	}{
		{
			name: "duplicate slug",
			mutate: func(pkgs []Package) []Package {
				pkgs[1].Slug = pkgs[0].Slug
				return pkgs
			},
			wantMsg: "duplicate slug",
		},
		{
			name: "slug not url safe",
			mutate: func(pkgs []Package) []Package {
				pkgs[0].Slug = "Awaken Reset"
				return pkgs
			},
			wantMsg: "not a URL-safe slug",
		},
		{
			name: "zero itinerary days",
			mutate: func(pkgs []Package) []Package {
				pkgs[0].Itinerary = nil
				return pkgs
			},
			wantMsg: "at least one itinerary day",
		},
		{
			name: "duplicate day number",
			mutate: func(pkgs []Package) []Package {
				pkgs[1].Itinerary[2].DayNumber = 2
				return pkgs
			},
			wantMsg: "duplicate day number 2",
		},
		{
			name: "non positive day number",
			mutate: func(pkgs []Package) []Package {
				pkgs[1].Itinerary[0].DayNumber = 0
				return pkgs
			},
			wantMsg: "itinerary[0].dayNumber",
		},
		{
			name: "unknown retreat type",
			mutate: func(pkgs []Package) []Package {
				pkgs[0].Type = "wellness"
				return pkgs
			},
			wantMsg: "unknown retreat type",
		},
		{
			name: "non positive duration",
			mutate: func(pkgs []Package) []Package {
				pkgs[0].DurationDays = 0
				return pkgs
			},
			wantMsg: "durationDays",
		},
		{
			name: "negative price",
			mutate: func(pkgs []Package) []Package {
				pkgs[0].PriceFrom = -1
				return pkgs
			},
			wantMsg: "priceFrom",
		},
		{
			name: "start after end",
			mutate: func(pkgs []Package) []Package {
				pkgs[1].Departures[0].StartDate = MustDate("2025-12-09")
				return pkgs
			},
			wantMsg: "is after end date",
		},
		{
			name: "negative price override",
			mutate: func(pkgs []Package) []Package {
				pkgs[1].Departures[0].PriceOverride = types.Some(-5.0)
				return pkgs
			},
			wantMsg: "priceOverride",
		},
		{
			name: "missing availability",
			mutate: func(pkgs []Package) []Package {
				pkgs[1].Departures[0].Availability = 0
				return pkgs
			},
			wantMsg: "availability is required",
		},
		{
			name: "disallowed image host",
			mutate: func(pkgs []Package) []Package {
				pkgs[0].Gallery = []string{"https://example.com/a.jpg"}
				return pkgs
			},
			wantMsg: `image host "example.com" is not allowed`,
		},
		{
			name: "non https image",
			mutate: func(pkgs []Package) []Package {
				pkgs[0].HeroImage = "http://images.unsplash.com/a.jpg"
				return pkgs
			},
			wantMsg: "absolute https URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := New(tt.mutate(fixturePackages()), WithImageHosts(DefaultImageHosts...))
			require.Error(t, err)
			assert.Nil(t, store)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.True(t, errors.Is(err, ErrInvalidDefinition))

			var catErr *Error
			require.True(t, errors.As(err, &catErr))
			assert.Equal(t, KindInvalidDefinition, catErr.Kind)
		})
	}
}

func TestNewReportsEveryViolation(t *testing.T) {
	pkgs := fixturePackages()
	pkgs[0].Itinerary = nil
	pkgs[3].Slug = pkgs[2].Slug

	_, err := New(pkgs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "packages[0].itinerary")
	assert.Contains(t, err.Error(), "packages[3].slug")
}

func TestNewAllowsEmptyDepartures(t *testing.T) {
	pkgs := fixturePackages()
	for i := range pkgs {
		pkgs[i].Departures = nil
	}

	store, err := New(pkgs)
	require.NoError(t, err)
	assert.Equal(t, 4, store.Len())
}

func TestNewWithoutImageHostsSkipsHostCheck(t *testing.T) {
	pkgs := fixturePackages()
	pkgs[0].HeroImage = "https://cdn.example.org/hero.jpg"

	_, err := New(pkgs)
	assert.NoError(t, err)
}

func TestNewEmptyCatalog(t *testing.T) {
	store, err := New(nil)
	require.NoError(t, err)
	assert.Empty(t, store.List())
	assert.Empty(t, store.FilterByType(Wellness))
}

func TestNewRejectsReservedSlugs(t *testing.T) {
	for _, slug := range ReservedSlugs {
		t.Run(slug, func(t *testing.T) {
			pkgs := fixturePackages()
			pkgs[1].Slug = slug

			_, err := New(pkgs)
			require.Error(t, err)
			assert.ErrorContains(t, err, "packages[1].slug")
			assert.ErrorContains(t, err, "is reserved")
		})
	}
}

func TestNewReportsTitleForNonPositiveDay(t *testing.T) {
	pkgs := fixturePackages()
	pkgs[0].Itinerary[0].DayNumber = 0
	pkgs[0].Itinerary[0].Title = " "

	_, err := New(pkgs)
	require.Error(t, err)
	assert.ErrorContains(t, err, "packages[0].itinerary[0].dayNumber")
	assert.ErrorContains(t, err, "packages[0].itinerary[0].title")
}
