package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drapely/drapely/pkg/colour"
	"github.com/drapely/drapely/pkg/season"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()

	require.Equal(t, season.MicroSeasons(), r.MicroSeasons(),
		"dataset must declare every micro-season in canonical order")

	for _, m := range r.MicroSeasons() {
		sp, ok := r.Palette(m)
		require.True(t, ok, "palette for %s", m)
		for _, g := range Groups() {
			colours := sp.Group(g)
			assert.GreaterOrEqual(t, len(colours), 4, "%s/%s too small", m, g)
			for _, c := range colours {
				lab, ok := colour.HexToLab(c.Hex)
				require.True(t, ok, "%s/%s: %q has invalid hex %q", m, g, c.Name, c.Hex)
				assert.Equal(t, lab, c.Lab, "%s/%s: %q Lab not precomputed from hex", m, g, c.Name)
				assert.NotEmpty(t, c.Name)
			}
		}
	}

	assert.Equal(t, 240, r.Len())
}

func TestDefaultRegistry_SameInstance(t *testing.T) {
	assert.Same(t, Default(), Default(), "default registry must be built once")
}

func TestRegistry_MicroSeasonsFor(t *testing.T) {
	r := Default()

	assert.Equal(t,
		[]season.MicroSeason{season.LightSpring, season.WarmSpring, season.BrightSpring},
		r.MicroSeasonsFor(season.Spring))
	assert.Equal(t,
		[]season.MicroSeason{season.CoolWinter, season.DeepWinter, season.BrightWinter},
		r.MicroSeasonsFor(season.Winter))
	assert.Empty(t, r.MicroSeasonsFor(season.ParentSeason("monsoon")))
}

func TestRegistry_AllEnumerationOrder(t *testing.T) {
	r := Default()

	var entries []Entry
	r.All()(func(e Entry) bool {
		entries = append(entries, e)
		return true
	})
	require.Len(t, entries, r.Len())

	// First entries come from the first declared season's neutrals.
	assert.Equal(t, season.LightSpring, entries[0].Season)
	assert.Equal(t, GroupNeutrals, entries[0].Group)

	// Early termination stops the scan.
	count := 0
	r.All()(func(Entry) bool {
		count++
		return count < 3
	})
	assert.Equal(t, 3, count)
}

func TestRegistry_TrueWhite(t *testing.T) {
	r := Default()

	sp, ok := r.Palette(season.BrightWinter)
	require.True(t, ok)

	var white *Colour
	for i := range sp.Neutrals {
		if sp.Neutrals[i].Name == "True White" {
			white = &sp.Neutrals[i]
		}
	}
	require.NotNil(t, white, "bright winter neutrals must include True White")
	assert.Equal(t, "#FFFFFF", white.Hex)
	assert.InDelta(t, 100.0, white.Lab.L, 0.01)
	assert.InDelta(t, 0.0, white.Lab.A, 0.01)
	assert.InDelta(t, 0.0, white.Lab.B, 0.01)
}

func TestNew_RejectsBadData(t *testing.T) {
	tests := []struct {
		name    string
		seasons []SeasonPalette
	}{
		{
			name: "malformed hex",
			seasons: []SeasonPalette{{
				Season:   season.CoolWinter,
				Neutrals: []Colour{{Name: "Broken", Hex: "#12345"}},
			}},
		},
		{
			name: "unknown micro-season",
			seasons: []SeasonPalette{{
				Season:   season.MicroSeason("mid_spring"),
				Neutrals: []Colour{{Name: "Grey", Hex: "#808080"}},
			}},
		},
		{
			name: "duplicate micro-season",
			seasons: []SeasonPalette{
				{Season: season.CoolWinter, Neutrals: []Colour{{Name: "Grey", Hex: "#808080"}}},
				{Season: season.CoolWinter, Neutrals: []Colour{{Name: "Grey", Hex: "#808080"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.seasons)
			assert.Error(t, err)
		})
	}
}

func TestLoad_RejectsBadYAML(t *testing.T) {
	_, err := Load([]byte("seasons: ["))
	assert.Error(t, err)

	// A season missing a group is a data defect.
	_, err = Load([]byte(`
seasons:
  - season: cool_winter
    neutrals:
      - { name: "Charcoal", hex: "#36383F" }
`))
	assert.Error(t, err)
}
