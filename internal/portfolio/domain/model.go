package domain

import (
	"regexp"
	"sort"
	"strings"

	"github.com/plussdev/portfolio-backend/internal/i18n"
)

// Card represents one portfolio entry. French fields are optional overrides;
// an absent override falls back to the primary-language field at render time.
type Card struct {
	ID            string   `json:"id" firestore:"-"`
	Title         string   `json:"title" firestore:"title"`
	TitleFr       string   `json:"titleFr,omitempty" firestore:"titleFr,omitempty"`
	Description   string   `json:"description" firestore:"description"`
	DescriptionFr string   `json:"descriptionFr,omitempty" firestore:"descriptionFr,omitempty"`
	Category      string   `json:"category,omitempty" firestore:"category,omitempty"`
	CategoryFr    string   `json:"categoryFr,omitempty" firestore:"categoryFr,omitempty"`
	Image         string   `json:"image" firestore:"image"`
	DemoURL       string   `json:"demoUrl,omitempty" firestore:"demoUrl,omitempty"`
	Techs         []string `json:"techs,omitempty" firestore:"techs,omitempty"`
	SortOrder     int      `json:"sortOrder" firestore:"sortOrder"`
}

// LocalizedCard is the public, render-ready view of a card for one language.
type LocalizedCard struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category,omitempty"`
	Image       string   `json:"image"`
	DemoURL     string   `json:"demoUrl,omitempty"`
	Techs       []string `json:"techs,omitempty"`
	SortOrder   int      `json:"sortOrder"`
}

// Localized resolves the bilingual fields for the given language and
// normalizes the demo URL for display.
func (c Card) Localized(lang i18n.Language) LocalizedCard {
	out := LocalizedCard{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Image:       c.Image,
		DemoURL:     NormalizeDemoURL(c.DemoURL),
		Techs:       c.Techs,
		SortOrder:   c.SortOrder,
	}
	if lang == i18n.French {
		if c.TitleFr != "" {
			out.Title = c.TitleFr
		}
		if c.DescriptionFr != "" {
			out.Description = c.DescriptionFr
		}
		if c.CategoryFr != "" {
			out.Category = c.CategoryFr
		}
	}
	return out
}

var schemeRe = regexp.MustCompile(`^https?://`)

// NormalizeDemoURL prepends https:// to bare domains. Empty input stays empty
// so the caller renders no link at all.
func NormalizeDemoURL(raw string) string {
	if raw == "" {
		return ""
	}
	if schemeRe.MatchString(raw) {
		return raw
	}
	return "https://" + raw
}

// ParseTechs splits a comma-separated input into technology names: whitespace
// trimmed, empty segments dropped, order and duplicates preserved.
func ParseTechs(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SortCards orders cards ascending by sortOrder, ties broken by id so the
// ordering stays deterministic when several records share a sortOrder.
func SortCards(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		if cards[i].SortOrder != cards[j].SortOrder {
			return cards[i].SortOrder < cards[j].SortOrder
		}
		return cards[i].ID < cards[j].ID
	})
}
