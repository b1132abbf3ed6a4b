package catalog

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/shared/types"
)

// RetreatType classifies a package. It doubles as the listing category.
type RetreatType string

const (
	Wellness  RetreatType = "Wellness"
	Corporate RetreatType = "Corporate"
	Community RetreatType = "Community"
	MICE      RetreatType = "MICE"
)

// RetreatTypes lists every retreat type in presentation order
func RetreatTypes() []RetreatType {
	return []RetreatType{Wellness, Corporate, Community, MICE}
}

// ParseRetreatType converts s into a RetreatType. Matching is exact.
func ParseRetreatType(s string) (RetreatType, error) {
	switch t := RetreatType(s); t {
	case Wellness, Corporate, Community, MICE:
		return t, nil
	default:
		return "", fmt.Errorf("unknown retreat type %q", s)
	}
}

func (t RetreatType) String() string { return string(t) }

// Section is the site section a type is listed under, e.g. "Community Tours"
func (t RetreatType) Section() string {
	switch t {
	case Community, MICE:
		return string(t) + " Tours"
	default:
		return string(t) + " Retreats"
	}
}

// BasePath is the site path of the type's listing page
func (t RetreatType) BasePath() string {
	switch t {
	case Community, MICE:
		return "/tours/" + strings.ToLower(string(t))
	default:
		return "/retreats/" + strings.ToLower(string(t))
	}
}

// Availability is the booking status of a departure
type Availability int

const (
	Available Availability = iota + 1
	Limited
	SoldOut
)

// ParseAvailability accepts the labels used in catalog definitions.
// "Sold Out" and "SoldOut" are equivalent.
func ParseAvailability(s string) (Availability, error) {
	switch s {
	case "Available":
		return Available, nil
	case "Limited":
		return Limited, nil
	case "Sold Out", "SoldOut":
		return SoldOut, nil
	default:
		return 0, fmt.Errorf("unknown availability %q", s)
	}
}

// String returns the display label
func (a Availability) String() string {
	switch a {
	case Available:
		return "Available"
	case Limited:
		return "Limited"
	case SoldOut:
		return "Sold Out"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the display label
func (a Availability) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes a display label
func (a *Availability) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAvailability(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// DateLayout is the calendar date format used on the wire and in definitions
const DateLayout = "2006-01-02"

// Date is a calendar date without a time of day
type Date struct {
	time.Time
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return Date{Time: t}, nil
}

// MustDate parses s and panics on error. Intended for tests and literals.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string { return d.Format(DateLayout) }

// MarshalJSON encodes the date as YYYY-MM-DD
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a YYYY-MM-DD date
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Meals records which meals are included on an itinerary day
type Meals struct {
	Breakfast bool `json:"breakfast"`
	Lunch     bool `json:"lunch"`
	Dinner    bool `json:"dinner"`
}

// Codes returns the included meals as B/L/D markers
func (m Meals) Codes() string {
	var sb strings.Builder
	if m.Breakfast {
		sb.WriteByte('B')
	}
	if m.Lunch {
		sb.WriteByte('L')
	}
	if m.Dinner {
		sb.WriteByte('D')
	}
	return sb.String()
}

// ItineraryDay is one day of a package's schedule
type ItineraryDay struct {
	DayNumber   int                   `json:"dayNumber"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Meals       types.Optional[Meals] `json:"meals"`
}

// Departure is one bookable date range for a package
type Departure struct {
	StartDate     Date                    `json:"startDate"`
	EndDate       Date                    `json:"endDate"`
	Availability  Availability            `json:"availability"`
	PriceOverride types.Optional[float64] `json:"priceOverride"`
	CTALabel      types.Optional[string]  `json:"ctaLabel"`
}

// EffectivePrice returns the override when present, else priceFrom
func (d Departure) EffectivePrice(priceFrom float64) float64 {
	return d.PriceOverride.OrElse(priceFrom)
}

// Bookable reports whether the departure can still take enquiries
func (d Departure) Bookable() bool {
	return d.Availability != SoldOut
}

// Nights returns the number of nights between start and end
func (d Departure) Nights() int {
	return int(d.EndDate.Sub(d.StartDate.Time).Hours() / 24)
}

// Package is a sellable travel or retreat offering
type Package struct {
	Slug           string         `json:"slug"`
	Title          string         `json:"title"`
	Type           RetreatType    `json:"retreatType"`
	ShortSummary   string         `json:"shortSummary"`
	Location       string         `json:"location"`
	DurationDays   int            `json:"durationDays"`
	PriceFrom      float64        `json:"priceFrom"`
	HeroImage      string         `json:"heroImage"`
	Gallery        []string       `json:"gallery"`
	Highlights     []string       `json:"highlights"`
	Amenities      []string       `json:"amenities"`
	WellnessFocus  []string       `json:"wellnessFocus"`
	CorporateFocus []string       `json:"corporateFocus"`
	Inclusions     []string       `json:"inclusions"`
	Exclusions     []string       `json:"exclusions"`
	Itinerary      []ItineraryDay `json:"itinerary"`
	Departures     []Departure    `json:"departures"`
}

// clone returns a copy of p that shares no backing arrays with it
func (p Package) clone() Package {
	p.Gallery = slices.Clone(p.Gallery)
	p.Highlights = slices.Clone(p.Highlights)
	p.Amenities = slices.Clone(p.Amenities)
	p.WellnessFocus = slices.Clone(p.WellnessFocus)
	p.CorporateFocus = slices.Clone(p.CorporateFocus)
	p.Inclusions = slices.Clone(p.Inclusions)
	p.Exclusions = slices.Clone(p.Exclusions)
	p.Itinerary = slices.Clone(p.Itinerary)
	p.Departures = slices.Clone(p.Departures)
	return p
}

// Summary contains the card-level fields shown in listings
type Summary struct {
	Slug         string      `json:"slug"`
	Title        string      `json:"title"`
	Type         RetreatType `json:"retreatType"`
	ShortSummary string      `json:"shortSummary"`
	Location     string      `json:"location"`
	DurationDays int         `json:"durationDays"`
	PriceFrom    float64     `json:"priceFrom"`
	HeroImage    string      `json:"heroImage"`
}

// ToSummary extracts card fields from a package
func (p *Package) ToSummary() Summary {
	return Summary{
		Slug:         p.Slug,
		Title:        p.Title,
		Type:         p.Type,
		ShortSummary: p.ShortSummary,
		Location:     p.Location,
		DurationDays: p.DurationDays,
		PriceFrom:    p.PriceFrom,
		HeroImage:    p.HeroImage,
	}
}

// Summaries converts packages to summaries, preserving order
func Summaries(pkgs []*Package) []Summary {
	out := make([]Summary, len(pkgs))
	for i, p := range pkgs {
		out[i] = p.ToSummary()
	}
	return out
}

// ComingSoon reports whether the package has no scheduled departures
func (p *Package) ComingSoon() bool {
	return len(p.Departures) == 0
}
