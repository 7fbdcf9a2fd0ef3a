package sentiment

// Params are the tunable constants of the scorer and combiner. The defaults
// are empirically chosen; they are parameters rather than hardcoded values
// so experiments can shift them without code changes.
type Params struct {
	TextWeight        float64
	EmojiWeight       float64
	PositiveThreshold float64
	NegativeThreshold float64
	NegationDamping   float64
	ReviewThreshold   float64
}

// DefaultParams returns the production defaults: 0.6/0.4 text/emoji split,
// ±0.2 label thresholds, 0.8 negation damping and a 0.6 review cutoff.
func DefaultParams() Params {
	return Params{
		TextWeight:        0.6,
		EmojiWeight:       0.4,
		PositiveThreshold: 0.2,
		NegativeThreshold: -0.2,
		NegationDamping:   0.8,
		ReviewThreshold:   0.6,
	}
}
