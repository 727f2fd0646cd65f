package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"esgweb/internal/schema"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed factors.yaml
var defaultFactors []byte

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownSeparate = errors.New("unknown separate")
	ErrUnknownMaterial = errors.New("unknown raw material")
)

type Material struct {
	ID        string          `yaml:"id"`
	Label     string          `yaml:"label"`
	Unit      string          `yaml:"unit"`
	RawFactor string          `yaml:"factor"`
	Factor    decimal.Decimal `yaml:"-"`
}

type Separate struct {
	Name      string     `yaml:"name"`
	Label     string     `yaml:"label"`
	Materials []Material `yaml:"materials"`
}

type Category struct {
	Name      string     `yaml:"name"`
	Label     string     `yaml:"label"`
	Separates []Separate `yaml:"separates"`
}

// Catalog emission factors offered by the calculator selectors
type Catalog struct {
	Categories []Category `yaml:"categories"`
}

// Default catalog compiled into the binary
func Default() (*Catalog, error) {
	return Parse(defaultFactors)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for i := range c.Categories {
		for j := range c.Categories[i].Separates {
			materials := c.Categories[i].Separates[j].Materials
			for k := range materials {
				factor, err := decimal.NewFromString(materials[k].RawFactor)
				if err != nil {
					return nil, fmt.Errorf("factor of %s: %w", materials[k].ID, err)
				}
				materials[k].Factor = factor
			}
		}
	}
	return &c, nil
}

func (c *Catalog) Category(name string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}

// Material looks a raw material up by its selector path
func (c *Catalog) Material(category, separate, id string) (Material, error) {
	cat, ok := c.Category(category)
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	for _, sep := range cat.Separates {
		if sep.Name != separate {
			continue
		}
		for _, m := range sep.Materials {
			if m.ID == id {
				return m, nil
			}
		}
		return Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, id)
	}
	return Material{}, fmt.Errorf("%w: %q", ErrUnknownSeparate, separate)
}

// Resolve fills unit and emission factor of a calculator row from its selections
func (c *Catalog) Resolve(state schema.SelectorState) (schema.SelectorState, error) {
	m, err := c.Material(state.Category, state.Separate, state.RawMaterial)
	if err != nil {
		return state, err
	}
	state.Unit = m.Unit
	state.EmissionFactor = m.Factor
	return state, nil
}

// Options categories in display order
func (c *Catalog) Options() []Category {
	return c.Categories
}
