// Package taxonomy holds the fixed adjective list of the behavioral
// questionnaire and the mapping of adjectives onto the four dimensions.
//
// A Table is immutable once built; the process-wide instance is constructed
// exactly once by Default from the embedded taxonomy.yaml.
package taxonomy

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.yaml.in/yaml/v4"
)

// Dimension — одна из четырёх поведенческих категорий.
type Dimension string

const (
	Executor    Dimension = "E"
	Comunicador Dimension = "C"
	Planejador  Dimension = "P"
	Analista    Dimension = "A"
)

// Dimensions lists the dimensions in reporting order.
var Dimensions = []Dimension{Executor, Comunicador, Planejador, Analista}

var dimensionNames = map[Dimension]string{
	Executor:    "Executor",
	Comunicador: "Comunicador",
	Planejador:  "Planejador",
	Analista:    "Analista",
}

// Name returns the human-readable dimension name used in narratives.
func (d Dimension) Name() string { return dimensionNames[d] }

// ParseName resolves a dimension by its display name (case-insensitive).
func ParseName(name string) (Dimension, bool) {
	name = strings.TrimSpace(name)
	for d, n := range dimensionNames {
		if strings.EqualFold(n, name) {
			return d, true
		}
	}
	return "", false
}

//go:embed taxonomy.yaml
var defaultDocument []byte

type document struct {
	Dimensions []struct {
		Code       string   `yaml:"code"`
		Name       string   `yaml:"name"`
		Adjectives []string `yaml:"adjectives"`
	} `yaml:"dimensions"`
	Adjectives []string `yaml:"adjectives"`
}

// Table is a read-only adjective lookup.
type Table struct {
	adjectives []string
	mapping    map[string]Dimension
}

// Load parses a taxonomy document. Every mapped adjective must be part of
// the adjective list and belong to a single dimension.
func Load(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}
	if len(doc.Adjectives) == 0 {
		return nil, errors.New("taxonomy: adjective list is empty")
	}

	listed := make(map[string]struct{}, len(doc.Adjectives))
	adjectives := make([]string, 0, len(doc.Adjectives))
	for _, a := range doc.Adjectives {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if _, dup := listed[a]; dup {
			return nil, fmt.Errorf("taxonomy: duplicate adjective %q", a)
		}
		listed[a] = struct{}{}
		adjectives = append(adjectives, a)
	}

	mapping := make(map[string]Dimension)
	for _, dim := range doc.Dimensions {
		d := Dimension(strings.TrimSpace(dim.Code))
		if _, ok := dimensionNames[d]; !ok {
			return nil, fmt.Errorf("taxonomy: unknown dimension code %q", dim.Code)
		}
		for _, a := range dim.Adjectives {
			a = strings.TrimSpace(a)
			if _, ok := listed[a]; !ok {
				return nil, fmt.Errorf("taxonomy: mapped adjective %q is not in the list", a)
			}
			if prev, ok := mapping[a]; ok && prev != d {
				return nil, fmt.Errorf("taxonomy: adjective %q mapped to both %s and %s", a, prev, d)
			}
			mapping[a] = d
		}
	}

	return &Table{adjectives: adjectives, mapping: mapping}, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the embedded taxonomy. It panics if the embedded document
// is broken, which can only happen at build time.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Load(defaultDocument)
		if err != nil {
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}

// Adjectives returns a copy of the adjective list in display order.
func (t *Table) Adjectives() []string {
	out := make([]string, len(t.adjectives))
	copy(out, t.adjectives)
	return out
}

// DimensionOf reports the dimension an adjective is assigned to.
func (t *Table) DimensionOf(adjective string) (Dimension, bool) {
	d, ok := t.mapping[adjective]
	return d, ok
}

// MappedCount is the number of adjectives that carry a dimension.
func (t *Table) MappedCount() int { return len(t.mapping) }
