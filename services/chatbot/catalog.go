// File: services/chatbot/catalog.go
package chatbot

import (
	"strings"

	"befixed/models"
)

// Catalog is the static list of service offerings. It is loaded once at
// startup and never mutated at runtime, so it is safe for concurrent reads.
type Catalog struct {
	offerings []models.ServiceOffering
}

// DefaultCatalog returns the catalog of BeFixed service offerings.
func DefaultCatalog() *Catalog {
	return NewCatalog([]models.ServiceOffering{
		{ID: "electricidad", Label: "Electricidad", Icon: "⚡", Category: models.CategoryTechnical},
		{ID: "plomeria", Label: "Plomería", Icon: "🚿", Category: models.CategoryTechnical},
		{ID: "cerrajeria", Label: "Cerrajería", Icon: "🔑", Category: models.CategoryTechnical},
		{ID: "gas", Label: "Gas", Icon: "🔥", Category: models.CategoryTechnical},
		{ID: "refrigeracion", Label: "Aire acondicionado", Icon: "❄️", Category: models.CategoryTechnical},
		{ID: "limpieza", Label: "Limpieza", Icon: "🧹", Category: models.CategoryHome},
		{ID: "mudanza", Label: "Mudanza", Icon: "📦", Category: models.CategoryHome},
		{ID: "jardineria", Label: "Jardinería", Icon: "🌱", Category: models.CategoryHome},
		{ID: "pintura", Label: "Pintura", Icon: "🎨", Category: models.CategoryHome},
		{ID: "montaje", Label: "Montaje de muebles", Icon: "🪑", Category: models.CategoryHome},
	})
}

// NewCatalog builds a catalog preserving the given insertion order.
func NewCatalog(offerings []models.ServiceOffering) *Catalog {
	return &Catalog{offerings: offerings}
}

// List returns the full catalog in insertion order.
func (c *Catalog) List() []models.ServiceOffering {
	out := make([]models.ServiceOffering, len(c.offerings))
	copy(out, c.offerings)
	return out
}

// FindByID returns the offering with the given id, or nil.
func (c *Catalog) FindByID(id string) *models.ServiceOffering {
	for i := range c.offerings {
		if c.offerings[i].ID == id {
			return &c.offerings[i]
		}
	}
	return nil
}

// FindByTextMention returns the first offering (in catalog order) whose id or
// label appears as a case-insensitive substring of the text, or nil. The
// first-match-in-order policy is deliberate: overlapping labels must resolve
// the same way every time.
func (c *Catalog) FindByTextMention(text string) *models.ServiceOffering {
	lower := strings.ToLower(text)
	for i := range c.offerings {
		if strings.Contains(lower, c.offerings[i].ID) ||
			strings.Contains(lower, strings.ToLower(c.offerings[i].Label)) {
			return &c.offerings[i]
		}
	}
	return nil
}
