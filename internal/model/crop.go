package model

import "fmt"

// CropKind identifies a crop in the catalog.
type CropKind string

const (
	Wheat  CropKind = "wheat"
	Corn   CropKind = "corn"
	Potato CropKind = "potato"
	Carrot CropKind = "carrot"
)

// CropDefinition describes the static properties of one crop kind.
// Icon and Info are presentation metadata only.
type CropDefinition struct {
	Kind       CropKind `yaml:"id" json:"id"`
	GrowthDays int      `yaml:"growth_days" json:"growth_days"`
	SeedPrice  int      `yaml:"seed_price" json:"seed_price"`
	SellPrice  int      `yaml:"sell_price" json:"sell_price"`
	Icon       string   `yaml:"icon" json:"icon"`
	Info       string   `yaml:"info" json:"info"`
}

// Catalog is the closed lookup table of crop definitions. It is immutable
// after construction; engines dispatch on it rather than on hardcoded kinds.
type Catalog struct {
	defs  map[CropKind]CropDefinition
	order []CropKind
}

// NewCatalog builds a catalog from definitions, preserving their order for
// stable shop listings.
func NewCatalog(defs []CropDefinition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("catalog requires at least one crop")
	}
	c := &Catalog{
		defs:  make(map[CropKind]CropDefinition, len(defs)),
		order: make([]CropKind, 0, len(defs)),
	}
	for _, def := range defs {
		if def.Kind == "" {
			return nil, fmt.Errorf("crop definition missing kind")
		}
		if _, exists := c.defs[def.Kind]; exists {
			return nil, fmt.Errorf("duplicate crop kind: %s", def.Kind)
		}
		if def.GrowthDays < 1 {
			return nil, fmt.Errorf("crop %s: growth days must be >= 1", def.Kind)
		}
		if def.SeedPrice < 0 || def.SellPrice < 0 {
			return nil, fmt.Errorf("crop %s: prices must be non-negative", def.Kind)
		}
		c.defs[def.Kind] = def
		c.order = append(c.order, def.Kind)
	}
	return c, nil
}

// Get returns the definition for a crop kind.
func (c *Catalog) Get(kind CropKind) (CropDefinition, bool) {
	def, ok := c.defs[kind]
	return def, ok
}

// Kinds returns all crop kinds in catalog order.
func (c *Catalog) Kinds() []CropKind {
	out := make([]CropKind, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of crop kinds in the catalog.
func (c *Catalog) Len() int { return len(c.order) }

// DefaultCatalog returns the stock crop table.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultCropDefinitions())
	if err != nil {
		panic(err) // stock table is statically valid
	}
	return c
}

// DefaultCropDefinitions returns the stock crop definitions.
func DefaultCropDefinitions() []CropDefinition {
	return []CropDefinition{
		{Kind: Wheat, GrowthDays: 4, SeedPrice: 10, SellPrice: 25, Icon: "🌾", Info: "A staple grain. Hardy and reliable."},
		{Kind: Corn, GrowthDays: 5, SeedPrice: 15, SellPrice: 40, Icon: "🌽", Info: "A sweet and popular vegetable. Sells for a good price."},
		{Kind: Potato, GrowthDays: 3, SeedPrice: 5, SellPrice: 15, Icon: "🥔", Info: "Grows quickly, but sells for less. Good for beginners."},
		{Kind: Carrot, GrowthDays: 3, SeedPrice: 8, SellPrice: 20, Icon: "🥕", Info: "A fast-growing and profitable root vegetable."},
	}
}
