// Package catalog matches free text against a tenant's products.
package catalog

import (
	"strconv"
	"strings"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/textnorm"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
)

const (
	// DefaultListLimit is how many product names are offered to the customer.
	DefaultListLimit = 20
	// FactsListLimit bounds the catalog passed to the reply renderer.
	FactsListLimit = 10
)

// BestMatch returns the product whose canonical name, or any name token longer
// than two characters, appears in normalizedMessage. The longest name wins;
// ties keep the earlier product.
func BestMatch(products []models.Product, normalizedMessage string) *models.Product {
	var best *models.Product
	for i := range products {
		name := textnorm.Normalize(products[i].Name)
		if strings.TrimSpace(name) == "" {
			continue
		}
		if !mentions(normalizedMessage, name) {
			continue
		}
		if best == nil || len(products[i].Name) > len(best.Name) {
			best = &products[i]
		}
	}
	return best
}

func mentions(msg, name string) bool {
	if strings.Contains(msg, name) {
		return true
	}
	for _, tok := range strings.Split(name, " ") {
		if len(tok) > 2 && strings.Contains(msg, tok) {
			return true
		}
	}
	return false
}

// Names lists up to limit product names in the given order.
func Names(products []models.Product, limit int) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		if limit > 0 && len(names) == limit {
			break
		}
		names = append(names, p.Name)
	}
	return names
}

// FormatPrice prints a price without trailing zeros ("1500", "99.9").
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
