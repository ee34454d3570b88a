// Package content assembles the localized marketing copy for the public
// pages: the service offerings and the pricing packs. Everything is derived
// from the i18n table, so the two languages can never drift apart from the
// page structure.
package content

import (
	"strconv"

	"github.com/plussdev/portfolio-backend/internal/i18n"
)

type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Pack struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Features []string `json:"features"`
	Delivery string   `json:"delivery"`
	Support  string   `json:"support"`
	Popular  bool     `json:"popular"`
}

var serviceIDs = []string{"web", "ecommerce", "cards"}

func Services(lang i18n.Language) []Service {
	out := make([]Service, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		out = append(out, Service{
			ID:          id,
			Title:       i18n.Lookup(lang, "services."+id+".title"),
			Description: i18n.Lookup(lang, "services."+id+".description"),
		})
	}
	return out
}

type packSpec struct {
	id       string
	delivery string
	support  string
	popular  bool
}

var packSpecs = []packSpec{
	{id: "visibility", delivery: "packs.delivery.basic", support: "packs.support.email"},
	{id: "management", delivery: "packs.delivery.standard", support: "packs.support.priority", popular: true},
	{id: "innovative", delivery: "packs.delivery.premium", support: "packs.support.dedicated"},
}

const featuresPerPack = 6

func Packs(lang i18n.Language) []Pack {
	out := make([]Pack, 0, len(packSpecs))
	for _, spec := range packSpecs {
		p := Pack{
			ID:       spec.id,
			Title:    i18n.Lookup(lang, "packs."+spec.id+".title"),
			Subtitle: i18n.Lookup(lang, "packs."+spec.id+".subtitle"),
			Delivery: i18n.Lookup(lang, spec.delivery),
			Support:  i18n.Lookup(lang, spec.support),
			Popular:  spec.popular,
		}
		for i := 1; i <= featuresPerPack; i++ {
			p.Features = append(p.Features, i18n.Lookup(lang, "packs."+spec.id+".feature"+strconv.Itoa(i)))
		}
		out = append(out, p)
	}
	return out
}
