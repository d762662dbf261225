// Package palette holds the reference colour dataset for the twelve-season
// taxonomy: each micro-season has four named colour groups with around five
// curated reference colours each. The dataset lives in an embedded YAML file
// and is loaded exactly once; every reference hex is converted to Lab at load
// so the classifier never recomputes it.
package palette

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/drapely/drapely/pkg/colour"
	"github.com/drapely/drapely/pkg/season"
)

//go:embed seasons.yaml
var seasonsYAML []byte

// Group names one of the four semantic colour buckets of a season palette.
type Group string

const (
	// GroupNeutrals holds base wardrobe colours.
	GroupNeutrals Group = "neutrals"
	// GroupAccents holds complementary but wearable colours.
	GroupAccents Group = "accents"
	// GroupBrights holds high-saturation statement colours.
	GroupBrights Group = "brights"
	// GroupSofts holds muted, desaturated variants.
	GroupSofts Group = "softs"
)

// Groups lists the four groups in their canonical enumeration order.
func Groups() []Group {
	return []Group{GroupNeutrals, GroupAccents, GroupBrights, GroupSofts}
}

// Colour is an immutable named reference colour. Lab is computed once at
// registry load and never recomputed.
type Colour struct {
	Name string     `json:"name"`
	Hex  string     `json:"hex"`
	Lab  colour.Lab `json:"lab"`
}

// SeasonPalette is a micro-season's four colour groups.
type SeasonPalette struct {
	Season   season.MicroSeason
	Neutrals []Colour
	Accents  []Colour
	Brights  []Colour
	Softs    []Colour
}

// Group returns the colours of one group.
func (sp SeasonPalette) Group(g Group) []Colour {
	switch g {
	case GroupNeutrals:
		return sp.Neutrals
	case GroupAccents:
		return sp.Accents
	case GroupBrights:
		return sp.Brights
	case GroupSofts:
		return sp.Softs
	}
	return nil
}

// Entry is one (micro-season, group, colour) triple of the registry.
type Entry struct {
	Season season.MicroSeason
	Group  Group
	Colour Colour
}

// Registry is the immutable collection of all season palettes. It is built
// once and exposes read accessors only, so any number of goroutines may use
// it concurrently without locking.
type Registry struct {
	seasons []SeasonPalette
	index   map[season.MicroSeason]int
}

// New builds a registry from already-structured season palettes, computing
// the Lab value of every colour from its hex literal. It fails on the first
// malformed hex or unknown micro-season; palette data is static
// configuration, never user input, so a defect here must not degrade
// silently.
func New(seasons []SeasonPalette) (*Registry, error) {
	r := &Registry{
		seasons: make([]SeasonPalette, 0, len(seasons)),
		index:   make(map[season.MicroSeason]int, len(seasons)),
	}

	for _, sp := range seasons {
		if !sp.Season.Valid() {
			return nil, fmt.Errorf("unknown micro-season %q", sp.Season)
		}
		if _, dup := r.index[sp.Season]; dup {
			return nil, fmt.Errorf("duplicate micro-season %q", sp.Season)
		}

		for _, g := range Groups() {
			colours := sp.Group(g)
			for i := range colours {
				lab, ok := colour.HexToLab(colours[i].Hex)
				if !ok {
					return nil, fmt.Errorf("%s/%s: colour %q has malformed hex %q",
						sp.Season, g, colours[i].Name, colours[i].Hex)
				}
				colours[i].Lab = lab
			}
		}

		r.index[sp.Season] = len(r.seasons)
		r.seasons = append(r.seasons, sp)
	}

	return r, nil
}

// yamlColour and yamlSeason mirror the structure of seasons.yaml.
type yamlColour struct {
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
}

type yamlSeason struct {
	Season   string       `yaml:"season"`
	Neutrals []yamlColour `yaml:"neutrals"`
	Accents  []yamlColour `yaml:"accents"`
	Brights  []yamlColour `yaml:"brights"`
	Softs    []yamlColour `yaml:"softs"`
}

type yamlFile struct {
	Seasons []yamlSeason `yaml:"seasons"`
}

// Load parses a YAML palette dataset and builds a registry from it.
// The declaration order of seasons in the document is preserved; the
// classifier depends on it for deterministic tie-breaking.
func Load(data []byte) (*Registry, error) {
	var doc yamlFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing palette dataset: %w", err)
	}

	seasons := make([]SeasonPalette, 0, len(doc.Seasons))
	for _, ys := range doc.Seasons {
		sp := SeasonPalette{Season: season.MicroSeason(ys.Season)}
		groups := []struct {
			dst  *[]Colour
			src  []yamlColour
			name Group
		}{
			{&sp.Neutrals, ys.Neutrals, GroupNeutrals},
			{&sp.Accents, ys.Accents, GroupAccents},
			{&sp.Brights, ys.Brights, GroupBrights},
			{&sp.Softs, ys.Softs, GroupSofts},
		}
		for _, g := range groups {
			if len(g.src) == 0 {
				return nil, fmt.Errorf("%s: group %q is empty", ys.Season, g.name)
			}
			for _, yc := range g.src {
				*g.dst = append(*g.dst, Colour{Name: yc.Name, Hex: yc.Hex})
			}
		}
		seasons = append(seasons, sp)
	}

	return New(seasons)
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := Load(seasonsYAML)
	if err != nil {
		// The embedded dataset is part of the build; failing to load it is
		// a programming error, not a runtime condition.
		panic(fmt.Sprintf("palette: embedded season dataset is invalid: %v", err))
	}
	return r
})

// Default returns the process-wide registry built from the embedded dataset.
// It is constructed on first use and immutable afterwards.
func Default() *Registry {
	return defaultRegistry()
}

// Palette returns the palette of one micro-season.
func (r *Registry) Palette(m season.MicroSeason) (SeasonPalette, bool) {
	i, ok := r.index[m]
	if !ok {
		return SeasonPalette{}, false
	}
	return r.seasons[i], true
}

// MicroSeasons lists the registry's micro-seasons in enumeration order.
func (r *Registry) MicroSeasons() []season.MicroSeason {
	out := make([]season.MicroSeason, len(r.seasons))
	for i, sp := range r.seasons {
		out[i] = sp.Season
	}
	return out
}

// MicroSeasonsFor lists the registry's micro-seasons belonging to a parent
// season, in enumeration order.
func (r *Registry) MicroSeasonsFor(p season.ParentSeason) []season.MicroSeason {
	var out []season.MicroSeason
	for _, sp := range r.seasons {
		if sp.Season.Parent() == p {
			out = append(out, sp.Season)
		}
	}
	return out
}

// Len returns the total number of reference colours in the registry.
func (r *Registry) Len() int {
	n := 0
	for _, sp := range r.seasons {
		for _, g := range Groups() {
			n += len(sp.Group(g))
		}
	}
	return n
}

// All returns an iterator over every (micro-season, group, colour) triple in
// the registry, in the fixed enumeration order: seasons as declared in the
// dataset, groups as neutrals, accents, brights, softs.
func (r *Registry) All() func(func(Entry) bool) {
	return func(yield func(Entry) bool) {
		for _, sp := range r.seasons {
			for _, g := range Groups() {
				for _, c := range sp.Group(g) {
					if !yield(Entry{Season: sp.Season, Group: g, Colour: c}) {
						return
					}
				}
			}
		}
	}
}
