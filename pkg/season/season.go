// Package season defines the twelve-season colour analysis taxonomy and the
// decision table that places a user's colour profile into one micro-season.
package season

// ParentSeason is one of the four coarse seasonal families.
type ParentSeason string

const (
	Spring ParentSeason = "spring"
	Summer ParentSeason = "summer"
	Autumn ParentSeason = "autumn"
	Winter ParentSeason = "winter"
)

// MicroSeason is one of the twelve fine-grained seasonal categories. Each
// micro-season belongs to exactly one parent season.
type MicroSeason string

const (
	LightSpring  MicroSeason = "light_spring"
	WarmSpring   MicroSeason = "warm_spring"
	BrightSpring MicroSeason = "bright_spring"
	LightSummer  MicroSeason = "light_summer"
	CoolSummer   MicroSeason = "cool_summer"
	SoftSummer   MicroSeason = "soft_summer"
	SoftAutumn   MicroSeason = "soft_autumn"
	WarmAutumn   MicroSeason = "warm_autumn"
	DeepAutumn   MicroSeason = "deep_autumn"
	CoolWinter   MicroSeason = "cool_winter"
	DeepWinter   MicroSeason = "deep_winter"
	BrightWinter MicroSeason = "bright_winter"
)

// MicroSeasons lists every micro-season in declaration order. The classifier
// relies on this order for deterministic tie-breaking, so it must not change
// between releases.
func MicroSeasons() []MicroSeason {
	return []MicroSeason{
		LightSpring, WarmSpring, BrightSpring,
		LightSummer, CoolSummer, SoftSummer,
		SoftAutumn, WarmAutumn, DeepAutumn,
		CoolWinter, DeepWinter, BrightWinter,
	}
}

// Parent returns the parent season a micro-season belongs to.
func (m MicroSeason) Parent() ParentSeason {
	switch m {
	case LightSpring, WarmSpring, BrightSpring:
		return Spring
	case LightSummer, CoolSummer, SoftSummer:
		return Summer
	case SoftAutumn, WarmAutumn, DeepAutumn:
		return Autumn
	case CoolWinter, DeepWinter, BrightWinter:
		return Winter
	}
	return ""
}

// Valid reports whether m names a known micro-season.
func (m MicroSeason) Valid() bool {
	return m.Parent() != ""
}

// String returns the string representation of a MicroSeason.
func (m MicroSeason) String() string {
	return string(m)
}

// Valid reports whether p names a known parent season.
func (p ParentSeason) Valid() bool {
	switch p {
	case Spring, Summer, Autumn, Winter:
		return true
	}
	return false
}

// String returns the string representation of a ParentSeason.
func (p ParentSeason) String() string {
	return string(p)
}

// Depth describes how light or deep a user's overall colouring is.
// The zero value means the attribute was not assessed.
type Depth string

const (
	DepthLight  Depth = "light"
	DepthMedium Depth = "medium"
	DepthDeep   Depth = "deep"
)

// Clarity describes how clear or muted a user's colouring is.
// The zero value means the attribute was not assessed.
type Clarity string

const (
	ClarityClear  Clarity = "clear"
	ClarityMedium Clarity = "medium"
	ClarityMuted  Clarity = "muted"
	// ClarityVivid is accepted as an input synonym for clear; the resolver
	// normalises it before consulting its decision table.
	ClarityVivid Clarity = "vivid"
)

// Undertone describes the warm/cool cast of a user's skin.
// The zero value means the attribute was not assessed.
type Undertone string

const (
	UndertoneWarm    Undertone = "warm"
	UndertoneCool    Undertone = "cool"
	UndertoneNeutral Undertone = "neutral"
)
