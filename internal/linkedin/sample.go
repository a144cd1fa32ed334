package linkedin

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Sample listings stand in for provider results when the quota is
// exhausted or the search comes back empty. They live here, away from the
// lifecycle engine, as fixture data.

var sampleCompanies = []string{
	"Meta", "Google", "Apple", "Microsoft", "Amazon", "Netflix", "Uber", "Airbnb",
	"Stripe", "Square", "Coinbase", "Robinhood", "Spotify", "Slack", "Zoom", "Figma",
}

var sampleLocations = []string{
	"San Francisco, CA", "Seattle, WA", "New York, NY", "Austin, TX",
	"Remote", "Los Angeles, CA", "Boston, MA", "Chicago, IL",
}

type sampleTemplate struct {
	title        string
	description  string
	requirements []string
}

var sampleTemplates = []sampleTemplate{
	{
		title:        "Senior %s",
		description:  "We are looking for an experienced %s to join our team. You will be responsible for leading strategic initiatives and driving growth.",
		requirements: []string{"5+ years experience", "Leadership skills", "Strategic thinking"},
	},
	{
		title:        "%s Manager",
		description:  "Join our dynamic team as a %s Manager. Lead cross-functional teams and deliver innovative solutions.",
		requirements: []string{"3+ years experience", "Team leadership", "Project management"},
	},
	{
		title:        "Head of %s",
		description:  "We're seeking a Head of %s to scale our organization and drive strategic initiatives.",
		requirements: []string{"8+ years experience", "Executive leadership", "Vision and strategy"},
	},
}

// titleCase upper-cases the first rune of each word. Keywords are free
// text, so the first rune may be multi-byte.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// SampleListings produces six synthetic postings with staggered posted_at
// times so they flow through the monitoring window like real discoveries.
func SampleListings(keywords []string, now time.Time) []Listing {
	now = now.UTC()

	listings := make([]Listing, 0, 6)
	for i := 0; i < 6; i++ {
		tmpl := sampleTemplates[i%len(sampleTemplates)]
		keyword := "Product"
		if len(keywords) > 0 {
			keyword = keywords[i%len(keywords)]
		}

		postedMinutesAgo := time.Duration((i*30)+(i*15)) * time.Minute
		listings = append(listings, Listing{
			ExternalID:  fmt.Sprintf("sample_job_%d", i+1),
			Title:       fmt.Sprintf(tmpl.title, titleCase(keyword)),
			Company:     sampleCompanies[i%len(sampleCompanies)],
			Location:    sampleLocations[i%len(sampleLocations)],
			Salary:      fmt.Sprintf("$%dk - $%dk", 120+(i*20), 150+(i*25)),
			Description: fmt.Sprintf(tmpl.description, keyword),
			URL:         fmt.Sprintf("https://linkedin.com/jobs/view/sample_%d", i+1),
			PostedAt:    now.Add(-postedMinutesAgo),
			Source:      "sample",
		})
	}
	return listings
}
