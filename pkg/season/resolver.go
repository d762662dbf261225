package season

// Resolve maps a coarse colour profile onto one of the three micro-seasons
// under the given parent season. Depth, clarity and undertone may each be
// empty, meaning the attribute was never assessed for this user.
//
// Each parent season consults its attributes in a fixed priority order, so
// the branches below are not interchangeable: autumn tests clarity before
// depth, winter tests clarity before the deep/cool combination.
func Resolve(parent ParentSeason, depth Depth, clarity Clarity, undertone Undertone) MicroSeason {
	// Vivid is a presentation-layer synonym for clear. Normalised locally,
	// the caller's profile is left untouched.
	if clarity == ClarityVivid {
		clarity = ClarityClear
	}

	// With neither depth nor clarity assessed there is nothing to branch
	// on, so each parent season falls back to its anchor micro-season.
	if depth == "" && clarity == "" {
		return defaultFor(parent)
	}

	switch parent {
	case Spring:
		if depth == DepthLight {
			return LightSpring
		}
		if clarity == ClarityClear {
			return BrightSpring
		}
		return WarmSpring

	case Summer:
		if depth == DepthLight {
			return LightSummer
		}
		if clarity == ClarityMuted {
			return SoftSummer
		}
		return CoolSummer

	case Autumn:
		// Muted clarity wins over deep colouring for autumns.
		if clarity == ClarityMuted {
			return SoftAutumn
		}
		if depth == DepthDeep {
			return DeepAutumn
		}
		return WarmAutumn

	case Winter:
		// Clear colouring wins over the deep/cool combination for winters.
		if clarity == ClarityClear {
			return BrightWinter
		}
		if undertone == UndertoneCool && depth == DepthDeep {
			return DeepWinter
		}
		return CoolWinter
	}

	return defaultFor(parent)
}

// defaultFor returns the anchor micro-season for a parent season.
func defaultFor(parent ParentSeason) MicroSeason {
	switch parent {
	case Spring:
		return WarmSpring
	case Summer:
		return CoolSummer
	case Autumn:
		return WarmAutumn
	case Winter:
		return CoolWinter
	}
	return ""
}
