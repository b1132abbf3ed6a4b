package loader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/domain/catalog"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/shared/types"
)

// mapPackages converts decoded DTOs into domain packages. All conversion
// errors are collected so one pass reports every bad field.
func mapPackages(dtos []packageDTO) ([]catalog.Package, error) {
	var errs []error
	out := make([]catalog.Package, 0, len(dtos))

	for i, d := range dtos {
		prefix := fmt.Sprintf("packages[%d]", i)

		rt, err := resolveType(d.RetreatType, d.Category)
		if err != nil {
			errs = append(errs, fieldErr(prefix+".retreatType", err))
		}

		pkg := catalog.Package{
			Slug:           strings.TrimSpace(d.Slug),
			Title:          d.Title,
			Type:           rt,
			ShortSummary:   d.ShortSummary,
			Location:       d.Location,
			DurationDays:   d.DurationDays,
			PriceFrom:      d.PriceFrom,
			HeroImage:      d.HeroImage,
			Gallery:        nonNil(d.Gallery),
			Highlights:     nonNil(d.Highlights),
			Amenities:      nonNil(d.Amenities),
			WellnessFocus:  nonNil(d.WellnessFocus),
			CorporateFocus: nonNil(d.CorporateFocus),
			Inclusions:     nonNil(d.Inclusions),
			Exclusions:     nonNil(d.Exclusions),
			Itinerary:      make([]catalog.ItineraryDay, 0, len(d.Itinerary)),
			Departures:     make([]catalog.Departure, 0, len(d.Departures)),
		}

		for _, day := range d.Itinerary {
			meals := types.None[catalog.Meals]()
			if day.Meals != nil {
				meals = types.Some(catalog.Meals{
					Breakfast: day.Meals.Breakfast,
					Lunch:     day.Meals.Lunch,
					Dinner:    day.Meals.Dinner,
				})
			}
			pkg.Itinerary = append(pkg.Itinerary, catalog.ItineraryDay{
				DayNumber:   day.DayNumber,
				Title:       day.Title,
				Description: day.Description,
				Meals:       meals,
			})
		}

		for j, dep := range d.Departures {
			field := fmt.Sprintf("%s.departures[%d]", prefix, j)

			start, err := catalog.ParseDate(dep.StartDate)
			if err != nil {
				errs = append(errs, fieldErr(field+".startDate", err))
			}
			end, err := catalog.ParseDate(dep.EndDate)
			if err != nil {
				errs = append(errs, fieldErr(field+".endDate", err))
			}
			avail, err := catalog.ParseAvailability(dep.Availability)
			if err != nil {
				errs = append(errs, fieldErr(field+".availability", err))
			}

			pkg.Departures = append(pkg.Departures, catalog.Departure{
				StartDate:     start,
				EndDate:       end,
				Availability:  avail,
				PriceOverride: types.FromPtr(dep.PriceOverride),
				CTALabel:      types.FromPtr(dep.CTALabel),
			})
		}

		out = append(out, pkg)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

// resolveType accepts either retreatType or its category alias.
// When both are given they must agree.
func resolveType(retreatType, category string) (catalog.RetreatType, error) {
	retreatType = strings.TrimSpace(retreatType)
	category = strings.TrimSpace(category)

	switch {
	case retreatType == "" && category == "":
		return "", fmt.Errorf("retreat type is required")
	case retreatType == "":
		return catalog.ParseRetreatType(category)
	case category != "" && category != retreatType:
		return "", fmt.Errorf("category %q conflicts with retreatType %q", category, retreatType)
	default:
		return catalog.ParseRetreatType(retreatType)
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func fieldErr(field string, err error) error {
	return &catalog.FieldError{Field: field, Msg: err.Error()}
}
