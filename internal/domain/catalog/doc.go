// Package catalog provides the read-only travel package catalog.
//
// The catalog is a fixed table of retreat packages built once at startup
// and never mutated afterwards. Every listing and detail endpoint reads from
// the same Store, so concurrent readers need no locking.
//
// Components:
//   - Package, ItineraryDay, Departure: the data model
//   - RetreatType, Availability: closed enumerations
//   - Store: List, GetBySlug, FilterByType, FilterByCategory
//   - New: validates definition invariants and builds the Store
//
// Invariants enforced by New:
//   - Slugs are unique and URL-safe
//   - Every package has at least one itinerary day
//   - Itinerary day numbers are unique within a package
//   - Departure start dates do not fall after end dates
//
// Lookups against unknown slugs are an expected outcome: GetBySlug returns
// (nil, false), never an error.
//
// Example Usage:
//
//	store, err := catalog.New(pkgs, catalog.WithImageHosts("images.unsplash.com"))
//	pkg, ok := store.GetBySlug("team-thrive-offsite-goa")
//	wellness := store.FilterByType(catalog.Wellness)
package catalog
