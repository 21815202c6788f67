package domain

// Product is a catalog entry. Catalog data is seeded once at startup and
// never mutated afterwards.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Price       int64    `json:"price"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
	InStock     bool     `json:"inStock"`
	Areas       []string `json:"areas,omitempty"`
}

// AvailableIn reports whether the product can be delivered to the given
// area. An empty Areas list means the product is available everywhere.
func (p Product) AvailableIn(area string) bool {
	if len(p.Areas) == 0 {
		return true
	}
	for _, a := range p.Areas {
		if a == area {
			return true
		}
	}
	return false
}

// Clone returns a value copy with its own backing slices.
func (p Product) Clone() Product {
	out := p
	if p.Sizes != nil {
		out.Sizes = append([]string(nil), p.Sizes...)
	}
	if p.Areas != nil {
		out.Areas = append([]string(nil), p.Areas...)
	}
	return out
}
