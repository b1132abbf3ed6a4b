package catalog

import (
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/shared/types"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/shared/utils"
)

// Store holds the immutable package table.
// It is safe for concurrent use because nothing writes to it after New returns.
type Store struct {
	packages []*Package
	bySlug   map[string]*Package
	version  string
}

// New copies pkgs, validates the copy and builds a Store from it. Later
// changes to pkgs do not reach the Store. Packages keep their definition order.
func New(pkgs []Package, opts ...Option) (*Store, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	owned := make([]Package, len(pkgs))
	for i := range pkgs {
		owned[i] = pkgs[i].clone()
	}

	if err := validate(owned, o); err != nil {
		return nil, &Error{Op: "catalog.new", Kind: KindInvalidDefinition, Err: err}
	}

	s := &Store{
		packages: make([]*Package, len(owned)),
		bySlug:   make(map[string]*Package, len(owned)),
	}
	for i := range owned {
		p := &owned[i]
		s.packages[i] = p
		s.bySlug[p.Slug] = p
	}

	version, err := utils.NewHasher().HashJSON(s.packages)
	if err != nil {
		return nil, &Error{Op: "catalog.version", Kind: KindInvalidDefinition, Err: err}
	}
	s.version = utils.Short(version)
	return s, nil
}

// Version is a digest of the catalog contents. Stores built from equal
// definitions share a version.
func (s *Store) Version() string {
	return s.version
}

// List returns every package in definition order
func (s *Store) List() []*Package {
	out := make([]*Package, len(s.packages))
	copy(out, s.packages)
	return out
}

// Len returns the number of packages
func (s *Store) Len() int {
	return len(s.packages)
}

// GetBySlug looks up a package by exact, case-sensitive slug.
// An unknown slug yields (nil, false).
func (s *Store) GetBySlug(slug string) (*Package, bool) {
	p, ok := s.bySlug[slug]
	return p, ok
}

// GetInType looks up a slug within a single retreat type. A slug that
// belongs to a different type is treated as absent.
func (s *Store) GetInType(t RetreatType, slug string) (*Package, bool) {
	p, ok := s.bySlug[slug]
	if !ok || p.Type != t {
		return nil, false
	}
	return p, true
}

// FilterByType returns packages of type t in definition order.
// The result is empty, never nil, when nothing matches.
func (s *Store) FilterByType(t RetreatType) []*Package {
	out := make([]*Package, 0)
	for _, p := range s.packages {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

// FilterByCategory is FilterByType under its listing-page name
func (s *Store) FilterByCategory(category RetreatType) []*Package {
	return s.FilterByType(category)
}

// Select returns FilterByType(t) when t is present, else List()
func (s *Store) Select(t types.Optional[RetreatType]) []*Package {
	if rt, ok := t.Get(); ok {
		return s.FilterByType(rt)
	}
	return s.List()
}

// Slugs returns the slugs of the selected packages in definition order
func (s *Store) Slugs(t types.Optional[RetreatType]) []string {
	pkgs := s.Select(t)
	out := make([]string, len(pkgs))
	for i, p := range pkgs {
		out[i] = p.Slug
	}
	return out
}

// CalendarEntry is a departure flattened with its package context
type CalendarEntry struct {
	Slug      string      `json:"slug"`
	Title     string      `json:"title"`
	Type      RetreatType `json:"retreatType"`
	Departure Departure   `json:"departure"`
	Price     float64     `json:"price"`
	Bookable  bool        `json:"bookable"`
}

// Departures flattens departures across the selected packages, keeping
// package order and then each package's departure order
func (s *Store) Departures(t types.Optional[RetreatType]) []CalendarEntry {
	out := make([]CalendarEntry, 0)
	for _, p := range s.Select(t) {
		for _, d := range p.Departures {
			out = append(out, CalendarEntry{
				Slug:      p.Slug,
				Title:     p.Title,
				Type:      p.Type,
				Departure: d,
				Price:     d.EffectivePrice(p.PriceFrom),
				Bookable:  d.Bookable(),
			})
		}
	}
	return out
}
