// Package lexicon holds the static tables that drive normalization and
// sentiment scoring: emoji polarity maps, transliteration tables, clitic
// prefixes, vocabulary dictionaries and keyword polarity sets. Tables are
// plain data, immutable after program start, and safe to share across
// goroutines without locking. They evolve by direct edits, never at runtime.
package lexicon

// EmojiEntry is the fixed polarity assigned to an emoji.
type EmojiEntry struct {
	Sentiment string
	Score     float64
	Label     string
}

// ContextEmoji describes an emoji whose polarity is resolved by majority
// vote over co-occurring keywords rather than a fixed score.
type ContextEmoji struct {
	PositiveContext []string
	NegativeContext []string
	PositiveLabel   string
	NegativeLabel   string
	NeutralLabel    string
	PositiveScore   float64
	NegativeScore   float64
}

// Rewrite is an ordered from→to replacement pair. Slices of Rewrite are
// applied in declaration order, first rule first.
type Rewrite struct {
	From string
	To   string
}
