package lexicon

// EmojiSentiments maps an emoji to its fixed polarity. Variation selectors
// (U+FE0F) are stripped from keys so presentation variants share one entry.
var EmojiSentiments = map[rune]EmojiEntry{
	'😀': {Sentiment: "positive", Score: 1, Label: "farhan"},
	'😊': {Sentiment: "positive", Score: 1, Label: "farhan"},
	'😍': {Sentiment: "positive", Score: 1, Label: "hob"},
	'🥰': {Sentiment: "positive", Score: 1, Label: "hob"},
	'❤': {Sentiment: "positive", Score: 1, Label: "hob"},
	'💕': {Sentiment: "positive", Score: 1, Label: "hob"},
	'👍': {Sentiment: "positive", Score: 0.8, Label: "behi"},
	'🎉': {Sentiment: "positive", Score: 1, Label: "jaw"},
	'🔥': {Sentiment: "positive", Score: 0.9, Label: "nar"},
	'💪': {Sentiment: "positive", Score: 0.8, Label: "kwi"},
	'✨': {Sentiment: "positive", Score: 0.7, Label: "jaw"},
	'🙏': {Sentiment: "positive", Score: 0.7, Label: "chokr"},
	'😂': {Sentiment: "positive", Score: 0.8, Label: "edahek"},
	'🤣': {Sentiment: "positive", Score: 0.8, Label: "edahek"},
	'👏': {Sentiment: "positive", Score: 0.9, Label: "bravo"},
	'🥳': {Sentiment: "positive", Score: 1, Label: "jaw"},
	'😎': {Sentiment: "positive", Score: 0.7, Label: "jaw"},
	'🌟': {Sentiment: "positive", Score: 0.8, Label: "jaw"},
	'🎶': {Sentiment: "positive", Score: 0.6, Label: "jaw"},
	'💃': {Sentiment: "positive", Score: 0.9, Label: "jaw"},
	'😌': {Sentiment: "positive", Score: 0.7, Label: "mertah"},
	'💙': {Sentiment: "positive", Score: 1, Label: "hob"},
	'🌞': {Sentiment: "positive", Score: 0.8, Label: "chams"},
	'🙌': {Sentiment: "positive", Score: 0.9, Label: "tok_aleha"},
	'🌅': {Sentiment: "positive", Score: 0.8, Label: "ghroub"},
	'🏆': {Sentiment: "positive", Score: 1, Label: "rebeh"},
	'😢': {Sentiment: "negative", Score: -0.8, Label: "hzin"},
	'😭': {Sentiment: "negative", Score: -1, Label: "yebki"},
	'😡': {Sentiment: "negative", Score: -1, Label: "metghachech"},
	'😠': {Sentiment: "negative", Score: -0.9, Label: "metghachech"},
	'🤬': {Sentiment: "negative", Score: -1, Label: "metghachech"},
	'👎': {Sentiment: "negative", Score: -0.8, Label: "mouch_behi"},
	'💔': {Sentiment: "negative", Score: -0.9, Label: "9alb_maksour"},
	'😤': {Sentiment: "negative", Score: -0.7, Label: "metghachech"},
	'😩': {Sentiment: "negative", Score: -0.8, Label: "taab"},
	'😫': {Sentiment: "negative", Score: -0.9, Label: "taab"},
	'🙄': {Sentiment: "negative", Score: -0.5, Label: "mech_ajbou"},
	'😒': {Sentiment: "negative", Score: -0.6, Label: "mech_ajbou"},
	'😞': {Sentiment: "negative", Score: -0.7, Label: "hzin"},
	'😔': {Sentiment: "negative", Score: -0.6, Label: "hzin"},
	'🤢': {Sentiment: "negative", Score: -0.9, Label: "mokref"},
	'😕': {Sentiment: "negative", Score: -0.5, Label: "mech_fehim"},
	'😓': {Sentiment: "negative", Score: -0.6, Label: "taab"},
	'🥴': {Sentiment: "negative", Score: -0.5, Label: "mouch_merteh"},
	'🤔': {Sentiment: "neutral", Score: 0, Label: "yfaker"},
	'🤷': {Sentiment: "neutral", Score: 0, Label: "marefch"},
	'📍': {Sentiment: "neutral", Score: 0, Label: "blasa"},
	'📸': {Sentiment: "neutral", Score: 0, Label: "taswira"},
	'🚗': {Sentiment: "neutral", Score: 0, Label: "karhba"},
	'🏖': {Sentiment: "neutral", Score: 0.3, Label: "bhar"},
	'⚽': {Sentiment: "neutral", Score: 0.2, Label: "koura"},
	'🏨': {Sentiment: "neutral", Score: 0, Label: "hotel"},
	'🏛': {Sentiment: "neutral", Score: 0, Label: "maalem"},
	'☕': {Sentiment: "neutral", Score: 0.2, Label: "kahwa"},
	'🏀': {Sentiment: "neutral", Score: 0.2, Label: "basket"},
	'🛴': {Sentiment: "neutral", Score: 0, Label: "trotinette"},
	'📅': {Sentiment: "neutral", Score: 0, Label: "date"},
	'📽': {Sentiment: "neutral", Score: 0, Label: "film"},
	'📖': {Sentiment: "neutral", Score: 0.2, Label: "kteb"},
	'🎤': {Sentiment: "neutral", Score: 0.3, Label: "micro"},
	'😐': {Sentiment: "neutral", Score: 0, Label: "normal"},
	'📚': {Sentiment: "neutral", Score: 0.2, Label: "ktob"},
	'💡': {Sentiment: "neutral", Score: 0.1, Label: "fikra"},
	'🎭': {Sentiment: "neutral", Score: 0.3, Label: "masrah"},
	'🎨': {Sentiment: "neutral", Score: 0.4, Label: "fann"},
	'🥬': {Sentiment: "neutral", Score: 0, Label: "khodhra"},
	'🍳': {Sentiment: "neutral", Score: 0.1, Label: "tabkh"},
	'👩': {Sentiment: "neutral", Score: 0, Label: "mra"},
	'📢': {Sentiment: "neutral", Score: 0, Label: "ilan"},
}

// ContextEmojis are emojis whose polarity depends on surrounding keywords.
var ContextEmojis = map[rune]ContextEmoji{
	'🔊': {
		PositiveContext: []string{"festival", "fete", "jaw", "ambiance", "musique", "hbel", "rawaa", "heyel", "concert", "party", "sahriya", "match"},
		NegativeContext: []string{"bruit", "kwi", "derangement", "sot", "ali", "barcha", "mochkla", "hess"},
		PositiveLabel:   "ambiance",
		NegativeLabel:   "sot_ali",
		NeutralLabel:    "sot",
		PositiveScore:   0.6,
		NegativeScore:   -0.5,
	},
	'🚧': {
		PositiveContext: []string{"tajdid", "isalhou", "tahsin", "travaux", "amelioration"},
		NegativeContext: []string{"zahma", "trafic", "mochkla", "nestanaw", "retard", "habsin", "msaker"},
		PositiveLabel:   "islah",
		NegativeLabel:   "achghal",
		NeutralLabel:    "achghal",
		PositiveScore:   0.3,
		NegativeScore:   -0.4,
	},
	'😬': {
		PositiveContext: []string{"hbel", "rawaa", "excitement", "suspense", "jaw"},
		NegativeContext: []string{"mochkla", "khayeb", "ghalat", "fdhiha"},
		PositiveLabel:   "excite",
		NegativeLabel:   "mech_merta7",
		NeutralLabel:    "mech_merta7",
		PositiveScore:   0.4,
		NegativeScore:   -0.4,
	},
	'🌙': {
		PositiveContext: []string{"festival", "sahriya", "fete", "lila", "ramadan", "sohour", "ambiance", "concert"},
		NegativeContext: []string{"nejmech_norked", "insomnie", "taab", "mochkla", "jenich_noum"},
		PositiveLabel:   "lila_helwa",
		NegativeLabel:   "lil",
		NeutralLabel:    "lil",
		PositiveScore:   0.5,
		NegativeScore:   -0.3,
	},
	'⏰': {
		PositiveContext: []string{"wakt", "bda", "commence", "rappel"},
		NegativeContext: []string{"retard", "makher", "fout", "fisa", "testana", "mochkla"},
		PositiveLabel:   "wa9t",
		NegativeLabel:   "takhir",
		NeutralLabel:    "wa9t",
		PositiveScore:   0.2,
		NegativeScore:   -0.4,
	},
}
