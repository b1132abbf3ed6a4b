package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

// SlugPattern matches lowercase, hyphen-separated URL-safe slugs
var SlugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ReservedSlugs collide with fixed routes under /packages and cannot name a package
var ReservedSlugs = []string{"slugs", "stats"}

// DefaultImageHosts are the remote image hosts the frontend is allowed to load
var DefaultImageHosts = []string{
	"images.unsplash.com",
	"plus.unsplash.com",
	"cdn.sanity.io",
}

type options struct {
	imageHosts map[string]struct{}
}

// Option configures catalog construction
type Option func(*options)

// WithImageHosts restricts image URLs to the given hosts. With no hosts,
// image URLs are only checked for being absolute https URLs.
func WithImageHosts(hosts ...string) Option {
	return func(o *options) {
		o.imageHosts = make(map[string]struct{}, len(hosts))
		for _, h := range hosts {
			h = strings.ToLower(strings.TrimSpace(h))
			if h != "" {
				o.imageHosts[h] = struct{}{}
			}
		}
	}
}

// validate checks every definition invariant and returns all violations joined
func validate(pkgs []Package, o *options) error {
	var errs []error
	seen := make(map[string]int, len(pkgs))

	for i := range pkgs {
		p := &pkgs[i]
		prefix := fmt.Sprintf("packages[%d]", i)

		if !SlugPattern.MatchString(p.Slug) {
			errs = append(errs, invalidField(prefix+".slug", "%q is not a URL-safe slug", p.Slug))
		} else if slices.Contains(ReservedSlugs, p.Slug) {
			errs = append(errs, invalidField(prefix+".slug", "%q is reserved", p.Slug))
		} else if first, dup := seen[p.Slug]; dup {
			errs = append(errs, invalidField(prefix+".slug", "duplicate slug %q (first defined at packages[%d])", p.Slug, first))
		} else {
			seen[p.Slug] = i
		}

		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, invalidField(prefix+".title", "title is required"))
		}
		if strings.TrimSpace(p.Location) == "" {
			errs = append(errs, invalidField(prefix+".location", "location is required"))
		}
		if _, err := ParseRetreatType(string(p.Type)); err != nil {
			errs = append(errs, invalidField(prefix+".retreatType", "%v", err))
		}
		if p.DurationDays <= 0 {
			errs = append(errs, invalidField(prefix+".durationDays", "must be positive, got %d", p.DurationDays))
		}
		if p.PriceFrom < 0 {
			errs = append(errs, invalidField(prefix+".priceFrom", "must not be negative, got %v", p.PriceFrom))
		}

		if err := o.checkImage(p.HeroImage); err != nil {
			errs = append(errs, invalidField(prefix+".heroImage", "%v", err))
		}
		for j, img := range p.Gallery {
			if err := o.checkImage(img); err != nil {
				errs = append(errs, invalidField(fmt.Sprintf("%s.gallery[%d]", prefix, j), "%v", err))
			}
		}

		errs = append(errs, validateItinerary(prefix, p.Itinerary)...)
		errs = append(errs, validateDepartures(prefix, p.Departures)...)
	}

	return errors.Join(errs...)
}

func validateItinerary(prefix string, days []ItineraryDay) []error {
	if len(days) == 0 {
		return []error{invalidField(prefix+".itinerary", "at least one itinerary day is required")}
	}

	var errs []error
	numbers := make(map[int]struct{}, len(days))
	for j, d := range days {
		field := fmt.Sprintf("%s.itinerary[%d]", prefix, j)
		if d.DayNumber <= 0 {
			errs = append(errs, invalidField(field+".dayNumber", "must be positive, got %d", d.DayNumber))
		} else if _, dup := numbers[d.DayNumber]; dup {
			errs = append(errs, invalidField(field+".dayNumber", "duplicate day number %d", d.DayNumber))
		} else {
			numbers[d.DayNumber] = struct{}{}
		}

		if strings.TrimSpace(d.Title) == "" {
			errs = append(errs, invalidField(field+".title", "title is required"))
		}
	}
	return errs
}

func validateDepartures(prefix string, deps []Departure) []error {
	var errs []error
	for j, d := range deps {
		field := fmt.Sprintf("%s.departures[%d]", prefix, j)
		if d.StartDate.IsZero() || d.EndDate.IsZero() {
			errs = append(errs, invalidField(field, "start and end dates are required"))
			continue
		}
		if d.StartDate.After(d.EndDate.Time) {
			errs = append(errs, invalidField(field, "start date %s is after end date %s", d.StartDate, d.EndDate))
		}
		if d.Availability < Available || d.Availability > SoldOut {
			errs = append(errs, invalidField(field+".availability", "availability is required"))
		}
		if price, ok := d.PriceOverride.Get(); ok && price < 0 {
			errs = append(errs, invalidField(field+".priceOverride", "must not be negative, got %v", price))
		}
	}
	return errs
}

// checkImage verifies an image reference is an absolute https URL on an allowed host.
// Reachability is not checked.
func (o *options) checkImage(raw string) error {
	if raw == "" {
		return fmt.Errorf("image URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid image URL %q: %w", raw, err)
	}
	if u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("image URL %q must be an absolute https URL", raw)
	}
	if len(o.imageHosts) == 0 {
		return nil
	}
	if _, ok := o.imageHosts[strings.ToLower(u.Hostname())]; !ok {
		return fmt.Errorf("image host %q is not allowed", u.Hostname())
	}
	return nil
}
