package card

// CanonicalScore is a lexicographic score over the criteria in spec.md
// §4.1. Higher is better. Comparing two cards' scores element-by-element
// (most significant first) gives a deterministic total order that does not
// depend on input order, so the chosen canonical printing is reproducible
// across builds — see spec.md §9 "Canonical ordering as a pure function".
type CanonicalScore [9]int

// ScoreForCanonical computes c's canonical-selection score. Cards with
// layout art_series are excluded outright by the caller (see
// BetterCanonical) rather than here, so the score alone is meaningless for
// art_series printings.
func ScoreForCanonical(c *Card) CanonicalScore {
	b2i := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}

	return CanonicalScore{
		b2i(c.IsEnglish()),
		b2i(c.HasImage),
		b2i(!c.Promo),
		b2i(!c.Digital),
		b2i(c.BorderColor == "black"),
		b2i(c.FrameYear >= 2015),
		b2i(!c.FullArt),
		b2i(!c.Variation),
		c.ReleasedAt.Year(),
	}
}

// Less reports whether a scores strictly below b (a is a worse canonical
// candidate than b).
func (a CanonicalScore) Less(b CanonicalScore) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// BetterCanonical reports whether candidate should replace current as the
// canonical printing for their shared oracle group. art_series printings
// are never canonical, regardless of score (spec.md §4.1).
func BetterCanonical(current, candidate *Card) bool {
	if candidate.Layout == LayoutArtSeries {
		return false
	}
	if current == nil {
		return true
	}
	if current.Layout == LayoutArtSeries {
		return true
	}
	return current.Score().Less(candidate.Score())
}

// Score is a convenience wrapper around ScoreForCanonical.
func (c *Card) Score() CanonicalScore { return ScoreForCanonical(c) }
