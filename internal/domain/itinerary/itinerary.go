// Package itinerary renders a downloadable plain-text itinerary for a package.
package itinerary

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/domain/catalog"
)

// ContentType is the MIME type of rendered documents
const ContentType = "text/plain; charset=utf-8"

var funcs = template.FuncMap{
	"price": FormatPrice,
	"meals": func(d catalog.ItineraryDay) string {
		m, ok := d.Meals.Get()
		if !ok || m.Codes() == "" {
			return ""
		}
		return " [" + m.Codes() + "]"
	},
	"join": strings.Join,
	"rule": func(s string) string { return strings.Repeat("=", len([]rune(s))) },
}

var doc = template.Must(template.New("itinerary").Funcs(funcs).Parse(`{{ .Title }}
{{ rule .Title }}
{{ .Location }} • {{ .DurationDays }} days • From {{ price .PriceFrom }}
{{ with .ShortSummary }}
{{ . }}
{{ end }}
ITINERARY
{{ range .Itinerary }}Day {{ .DayNumber }}: {{ .Title }}{{ meals . }}
{{ with .Description }}    {{ . }}
{{ end }}{{ end }}
{{- with .Highlights }}
HIGHLIGHTS
{{ range . }}  - {{ . }}
{{ end }}{{ end }}
{{- with .Inclusions }}
INCLUSIONS
{{ range . }}  + {{ . }}
{{ end }}{{ end }}
{{- with .Exclusions }}
EXCLUSIONS
{{ range . }}  - {{ . }}
{{ end }}{{ end }}
DATES & PRICES
{{ range .Departures }}  {{ .StartDate }} to {{ .EndDate }} ({{ .Nights }}N)  {{ .Availability }}  {{ price (.EffectivePrice $.PriceFrom) }}{{ with .CTALabel.OrElse "" }}  ({{ . }}){{ end }}
{{ else }}  Dates coming soon
{{ end }}
Meals: B = breakfast, L = lunch, D = dinner
`))

// Render writes the itinerary document for p to w
func Render(w io.Writer, p *catalog.Package) error {
	if err := doc.Execute(w, p); err != nil {
		return fmt.Errorf("failed to render itinerary for %s: %w", p.Slug, err)
	}
	return nil
}

// Filename returns the attachment name for a package's itinerary
func Filename(p *catalog.Package) string {
	return p.Slug + "-itinerary.txt"
}

// FormatPrice renders a rupee amount with Indian digit grouping, e.g. ₹1,18,999
func FormatPrice(amount float64) string {
	whole := int64(amount + 0.5)
	neg := whole < 0
	if neg {
		whole = -whole
	}

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	if len(digits) > 3 {
		head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
		digits = strings.Join(groups, ",") + "," + tail
	}

	if neg {
		return "-₹" + digits
	}
	return "₹" + digits
}
