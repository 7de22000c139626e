package repositories

import (
	"github.com/aplamondon/go-restomenu/app/models"
	"github.com/aplamondon/go-restomenu/app/utils/names"
)

// Bilingual names are folded on every write and display-formatted on every
// read, so storage stays lower-case and callers always see "Spicy wings".
// The encode/decode pair lives here, at the data-access boundary, instead
// of being hidden in model hooks.

func encodeOption(o *models.Option) {
	o.NameEN = names.Fold(o.NameEN)
	o.NameFR = names.Fold(o.NameFR)
}

func decodeOption(o *models.Option) {
	o.NameEN = names.Display(o.NameEN)
	o.NameFR = names.Display(o.NameFR)
	for i := range o.Categories {
		decodeCategory(&o.Categories[i])
	}
}

func encodeCategory(c *models.Category) {
	c.NameEN = names.Fold(c.NameEN)
	c.NameFR = names.Fold(c.NameFR)
}

func decodeCategory(c *models.Category) {
	c.NameEN = names.Display(c.NameEN)
	c.NameFR = names.Display(c.NameFR)
	for i := range c.Options {
		o := &c.Options[i]
		o.NameEN = names.Display(o.NameEN)
		o.NameFR = names.Display(o.NameFR)
	}
}

func encodeProduct(p *models.Product) {
	p.NameEN = names.Fold(p.NameEN)
	p.NameFR = names.Fold(p.NameFR)
}

func decodeProduct(p *models.Product) {
	p.NameEN = names.Display(p.NameEN)
	p.NameFR = names.Display(p.NameFR)
	for i := range p.Categories {
		decodeCategory(&p.Categories[i])
	}
	for i := range p.Options {
		o := &p.Options[i]
		o.NameEN = names.Display(o.NameEN)
		o.NameFR = names.Display(o.NameFR)
	}
}
