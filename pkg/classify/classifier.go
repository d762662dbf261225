// Package classify decides which seasonal palette a garment colour
// perceptually belongs to. It scans the whole palette registry with the
// CIEDE2000 metric and reports a gated nearest match, an optional
// cross-season runner-up, and a confidence status.
package classify

import (
	"github.com/drapely/drapely/pkg/colour"
	"github.com/drapely/drapely/pkg/palette"
	"github.com/drapely/drapely/pkg/season"
)

// Status grades how trustworthy a classification is.
type Status string

const (
	// StatusGreat means the best match is well separated from the runner-up.
	StatusGreat Status = "great"
	// StatusGood means the best match leads the runner-up by a clear margin.
	StatusGood Status = "good"
	// StatusAmbiguous means the runner-up is nearly as close as the best match.
	StatusAmbiguous Status = "ambiguous"
	// StatusUnclassified means the colour could not be assigned to any season:
	// either the hex was malformed or no palette colour is close enough.
	StatusUnclassified Status = "unclassified"
)

// Gating thresholds. These are empirically tuned against the reference
// palette dataset; changing them shifts the great/good/ambiguous boundaries
// for every caller.
const (
	// maxPrimaryDeltaE is the far-field gate: a best match farther than this
	// is reported as unclassified.
	maxPrimaryDeltaE = 12.0
	// maxCrossoverDeltaE bounds how far a runner-up may be and still be
	// surfaced as a cross-season match.
	maxCrossoverDeltaE = 10.0
	// goodGap and greatGap grade the separation between best match and
	// runner-up.
	goodGap  = 2.0
	greatGap = 4.0
)

// Match is one palette colour the input was matched to, with its season
// context and distance.
type Match struct {
	MicroSeason season.MicroSeason  `json:"micro_season"`
	Season      season.ParentSeason `json:"season"`
	Group       palette.Group       `json:"group"`
	Colour      palette.Colour      `json:"colour"`
	DeltaE      float64             `json:"delta_e"`
}

// Result is the outcome of classifying one garment colour. Primary is nil
// when Status is StatusUnclassified; Nearest and MinDeltaE are still
// populated for a far-field rejection so callers can show diagnostics.
// Secondary is only set for a crossover: a runner-up from a different parent
// season close enough to be worth surfacing.
type Result struct {
	DominantHex string          `json:"dominant_hex"`
	Lab         *colour.Lab     `json:"lab,omitempty"`
	Status      Status          `json:"status"`
	Nearest     *palette.Colour `json:"nearest,omitempty"`
	MinDeltaE   float64         `json:"min_delta_e"`
	Primary     *Match          `json:"primary,omitempty"`
	Secondary   *Match          `json:"secondary,omitempty"`
}

// Classifier matches garment colours against a palette registry.
// It is stateless beyond the immutable registry reference, so a single
// instance may serve any number of goroutines.
type Classifier struct {
	registry *palette.Registry
}

// New returns a Classifier over the given registry.
func New(registry *palette.Registry) *Classifier {
	return &Classifier{registry: registry}
}

// Garment classifies a garment colour against the default registry.
func Garment(hex string) Result {
	return New(palette.Default()).Garment(hex)
}

// Garment classifies the given hex colour. The call is pure and
// deterministic: the same hex against the same registry always produces a
// field-for-field identical result.
func (c *Classifier) Garment(hex string) Result {
	lab, ok := colour.HexToLab(hex)
	if !ok {
		// Malformed input is data, not an error: callers routinely pass
		// user-influenced strings.
		return Result{DominantHex: hex, Status: StatusUnclassified}
	}

	best, bestOK := c.nearest(lab, func(palette.Entry) bool { return true })
	if !bestOK {
		// Empty registry; nothing to match against.
		return Result{DominantHex: hex, Lab: &lab, Status: StatusUnclassified}
	}

	result := Result{
		DominantHex: hex,
		Lab:         &lab,
		Nearest:     &best.Colour,
		MinDeltaE:   best.DeltaE,
	}

	if best.DeltaE > maxPrimaryDeltaE {
		// Far-field rejection: keep the nearest colour as diagnostic
		// metadata but assign no season.
		result.Status = StatusUnclassified
		return result
	}

	result.Primary = &best

	// The runner-up must differ from the best match in (micro-season, group);
	// a closer competitor within the same bucket never counts. The crossover
	// and ambiguity behaviour depend on this exclusion rule.
	runnerUp, runnerOK := c.nearest(lab, func(e palette.Entry) bool {
		return e.Season != best.MicroSeason || e.Group != best.Group
	})

	if runnerOK && runnerUp.DeltaE <= maxCrossoverDeltaE && runnerUp.Season != best.Season {
		// A close match in a different parent season: the colour plausibly
		// suits two seasonal families, so surface it. A same-parent
		// runner-up adds nothing for the user.
		result.Secondary = &runnerUp
	}

	switch {
	case !runnerOK:
		result.Status = StatusGreat
	case runnerUp.DeltaE-best.DeltaE < goodGap:
		result.Status = StatusAmbiguous
	case runnerUp.DeltaE-best.DeltaE < greatGap:
		result.Status = StatusGood
	default:
		result.Status = StatusGreat
	}

	return result
}

// nearest scans the registry in its fixed enumeration order and returns the
// minimum-distance entry among those accepted by keep. Ties keep the first
// entry encountered, which makes the scan deterministic.
func (c *Classifier) nearest(lab colour.Lab, keep func(palette.Entry) bool) (Match, bool) {
	var match Match
	found := false

	c.registry.All()(func(e palette.Entry) bool {
		if !keep(e) {
			return true
		}
		d := colour.DeltaE(lab, e.Colour.Lab)
		if !found || d < match.DeltaE {
			found = true
			match = Match{
				MicroSeason: e.Season,
				Season:      e.Season.Parent(),
				Group:       e.Group,
				Colour:      e.Colour,
				DeltaE:      d,
			}
		}
		return true
	})

	return match, found
}
