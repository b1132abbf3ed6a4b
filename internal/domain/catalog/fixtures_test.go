package catalog

import "github.com/GriffinCanCode/RetreatCatalog/backend/internal/shared/types"

func day(n int, title string) ItineraryDay {
	return ItineraryDay{DayNumber: n, Title: title, Description: title + " description"}
}

func fixturePackages() []Package {
	return []Package{
		{
			Slug:         "awaken-3-day-mind-body-reset-rishikesh",
			Title:        "Awaken — 3-Day Mind-Body Reset (Rishikesh)",
			Type:         Wellness,
			ShortSummary: "Sunrise yoga, sound healing, Ganga aarti.",
			Location:     "Rishikesh, Uttarakhand, India",
			DurationDays: 3,
			PriceFrom:    18999,
			HeroImage:    "https://images.unsplash.com/photo-1541233349642-6e425fe6190e",
			Gallery:      []string{"https://images.unsplash.com/photo-1506126613408-eca07ce68773"},
			Itinerary: []ItineraryDay{
				{DayNumber: 1, Title: "Arrival & Grounding", Meals: types.Some(Meals{Dinner: true})},
				{DayNumber: 2, Title: "Energy Alignment", Meals: types.Some(Meals{Breakfast: true, Lunch: true, Dinner: true})},
				{DayNumber: 3, Title: "Integration", Meals: types.Some(Meals{Breakfast: true})},
			},
			Departures: []Departure{
				{StartDate: MustDate("2025-10-02"), EndDate: MustDate("2025-10-04"), Availability: Available},
				{StartDate: MustDate("2025-11-14"), EndDate: MustDate("2025-11-16"), Availability: Limited, PriceOverride: types.Some(19999.0)},
			},
		},
		{
			Slug:         "team-thrive-offsite-goa",
			Title:        "Team Thrive — Creativity & Resilience Offsite (Goa)",
			Type:         Corporate,
			Location:     "Goa, India",
			DurationDays: 3,
			PriceFrom:    34999,
			HeroImage:    "https://images.unsplash.com/photo-1512453979798-5ea266f8880c",
			Itinerary:    []ItineraryDay{day(1, "Arrivals & Kickoff"), day(2, "Create & Connect"), day(3, "Reflect & Depart")},
			Departures: []Departure{
				{StartDate: MustDate("2025-12-05"), EndDate: MustDate("2025-12-07"), Availability: Available},
			},
		},
		{
			Slug:         "community-roots-journey-kerala",
			Title:        "Community Roots — Backwaters & Culture (Kerala)",
			Type:         Community,
			Location:     "Alleppey & Kochi, Kerala, India",
			DurationDays: 5,
			PriceFrom:    27999,
			HeroImage:    "https://images.unsplash.com/photo-1589428757587-47d6c19fef3a?q=80&w=650",
			Itinerary: []ItineraryDay{
				day(1, "Kochi Arrival"), day(2, "Backwaters"), day(3, "Village Life"), day(4, "Culture Night"), day(5, "Depart"),
			},
		},
		{
			Slug:         "mice-oman-muscat-3n4d",
			Title:        "MICE Oman — Muscat 3N/4D",
			Type:         MICE,
			Location:     "Muscat, Oman",
			DurationDays: 4,
			PriceFrom:    59999,
			HeroImage:    "https://images.unsplash.com/photo-1526772662000-3f88f10405ff",
			Itinerary:    []ItineraryDay{day(1, "Arrival & Welcome"), day(2, "Conference"), day(3, "Desert Escape"), day(4, "City Tour & Depart")},
			Departures: []Departure{
				{StartDate: MustDate("2025-11-01"), EndDate: MustDate("2025-11-04"), Availability: Limited},
			},
		},
	}
}
