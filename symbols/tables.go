package symbols

// Word table: basic word to emoji mapping. Extend to your taste, but keep
// keys lowercase; lookups lowercase their argument.
var wordEmoji = map[string]string{
	"i":        "👁️",
	"me":       "🙋",
	"you":      "🫵",
	"love":     "❤️",
	"like":     "👍",
	"hate":     "💔",
	"happy":    "😄",
	"sad":      "😢",
	"pizza":    "🍕",
	"coffee":   "☕",
	"tea":      "🍵",
	"cat":      "🐱",
	"dog":      "🐶",
	"money":    "💰",
	"party":    "🎉",
	"dance":    "💃",
	"sleep":    "😴",
	"music":    "🎵",
	"fire":     "🔥",
	"star":     "⭐",
	"moon":     "🌙",
	"sun":      "☀️",
	"phone":    "📱",
	"computer": "💻",
	"code":     "💻",
	"study":    "📚",
	"book":     "📖",
	"car":      "🚗",
	"bike":     "🚲",
	"work":     "🏢",
	"yes":      "✅",
	"no":       "❌",
	"maybe":    "🤷",
	"hello":    "👋",
	"hi":       "👋",
	"bye":      "👋",
	"thanks":   "🙏",
	"thank":    "🙏",
	"wow":      "😲",
	"what":     "❓",
	"why":      "❓",
	"who":      "👤",
	"where":    "📍",
	"when":     "⏰",
	"ok":       "👌",
}

// Phrase table: multi-word patterns, keys lowercase and single-spaced.
// Enumeration order for matching is defined by Phrases, not by this map.
var phraseEmoji = map[string]string{
	"i love you":     "❤️💋",
	"good night":     "🌙😴",
	"good morning":   "☀️🌅",
	"i am":           "🙋‍♂️ is",
	"happy birthday": "🎂🎉",
}

// Keycap table: ASCII digits to keycap emoji. A keycap is the digit itself,
// followed by a variation selector (U+FE0F) and the combining enclosing
// keycap (U+20E3).
var digitKeycap = map[rune]string{
	'0': "0️⃣",
	'1': "1️⃣",
	'2': "2️⃣",
	'3': "3️⃣",
	'4': "4️⃣",
	'5': "5️⃣",
	'6': "6️⃣",
	'7': "7️⃣",
	'8': "8️⃣",
	'9': "9️⃣",
}
