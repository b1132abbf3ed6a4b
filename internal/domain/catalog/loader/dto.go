package loader

// definitionFile is the on-disk shape shared by the YAML, TOML and JSON decoders
type definitionFile struct {
	Packages []packageDTO `yaml:"packages" toml:"packages" json:"packages"`
}

type packageDTO struct {
	Slug           string         `yaml:"slug" toml:"slug" json:"slug"`
	Title          string         `yaml:"title" toml:"title" json:"title"`
	RetreatType    string         `yaml:"retreatType" toml:"retreatType" json:"retreatType"`
	Category       string         `yaml:"category" toml:"category" json:"category"`
	ShortSummary   string         `yaml:"shortSummary" toml:"shortSummary" json:"shortSummary"`
	Location       string         `yaml:"location" toml:"location" json:"location"`
	DurationDays   int            `yaml:"durationDays" toml:"durationDays" json:"durationDays"`
	PriceFrom      float64        `yaml:"priceFrom" toml:"priceFrom" json:"priceFrom"`
	HeroImage      string         `yaml:"heroImage" toml:"heroImage" json:"heroImage"`
	Gallery        []string       `yaml:"gallery" toml:"gallery" json:"gallery"`
	Highlights     []string       `yaml:"highlights" toml:"highlights" json:"highlights"`
	Amenities      []string       `yaml:"amenities" toml:"amenities" json:"amenities"`
	WellnessFocus  []string       `yaml:"wellnessFocus" toml:"wellnessFocus" json:"wellnessFocus"`
	CorporateFocus []string       `yaml:"corporateFocus" toml:"corporateFocus" json:"corporateFocus"`
	Inclusions     []string       `yaml:"inclusions" toml:"inclusions" json:"inclusions"`
	Exclusions     []string       `yaml:"exclusions" toml:"exclusions" json:"exclusions"`
	Itinerary      []dayDTO       `yaml:"itinerary" toml:"itinerary" json:"itinerary"`
	Departures     []departureDTO `yaml:"departures" toml:"departures" json:"departures"`
}

type dayDTO struct {
	DayNumber   int       `yaml:"dayNumber" toml:"dayNumber" json:"dayNumber"`
	Title       string    `yaml:"title" toml:"title" json:"title"`
	Description string    `yaml:"description" toml:"description" json:"description"`
	Meals       *mealsDTO `yaml:"meals" toml:"meals" json:"meals"`
}

// mealsDTO uses the B/L/D shorthand of the site's definitions
type mealsDTO struct {
	Breakfast bool `yaml:"B" toml:"B" json:"B"`
	Lunch     bool `yaml:"L" toml:"L" json:"L"`
	Dinner    bool `yaml:"D" toml:"D" json:"D"`
}

type departureDTO struct {
	StartDate     string   `yaml:"startDate" toml:"startDate" json:"startDate"`
	EndDate       string   `yaml:"endDate" toml:"endDate" json:"endDate"`
	Availability  string   `yaml:"availability" toml:"availability" json:"availability"`
	PriceOverride *float64 `yaml:"priceOverride" toml:"priceOverride" json:"priceOverride"`
	CTALabel      *string  `yaml:"ctaLabel" toml:"ctaLabel" json:"ctaLabel"`
}
