// Package yamlfile loads a replacement static catalog from a YAML document.
//
//	products:
//	  - id: p1
//	    name: Margherita Pizza
//	    description: Fresh tomatoes, basil, mozzarella
//	    price: "9.99"
//	    image: https://...
package yamlfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dwikikusuma/food-storefront/internal/catalog/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type document struct {
	Products []productYAML `yaml:"products"`
}

type productYAML struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Price       decimal.Decimal `yaml:"price"`
	Image       string          `yaml:"image"`
}

func Load(path string) ([]domain.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func Decode(r io.Reader) ([]domain.Product, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Products))
	out := make([]domain.Product, 0, len(doc.Products))
	for i, p := range doc.Products {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return nil, fmt.Errorf("product %d: id is required", i)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("product %d: duplicate id %q", i, id)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("product %q: price cannot be negative, got %s", id, p.Price)
		}
		seen[id] = struct{}{}

		out = append(out, domain.Product{
			ID:          id,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			ImageRef:    p.Image,
		})
	}
	return out, nil
}
