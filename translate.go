package mojify

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/mojify/symbols"
	"github.com/npillmayer/mojify/token"
)

// TranslateToken translates a single token into emoji. Lookup stages, in
// order:
//
// ▪︎ words from the word table become their emoji counterpart,
//
// ▪︎ all-digit tokens become a run of keycap emoji,
//
// ▪︎ single letters become regional indicator symbols,
//
// ▪︎ any other token is transliterated character-wise, keeping characters
// without an emoji equivalent.
//
// Word lookup is case-insensitive. TranslateToken will produce output for
// every input; the last resort for a completely uninterpretable token is
// the token itself.
func TranslateToken(tok string) string {
	if emoji, ok := symbols.WordEmoji(strings.ToLower(tok)); ok {
		return emoji
	}
	if isDigits(tok) {
		var keycaps strings.Builder
		for _, d := range tok {
			keycaps.WriteString(symbols.DigitKeycap(d))
		}
		return keycaps.String()
	}
	if r, single := singleRune(tok); single && unicode.IsLetter(r) {
		return symbols.RegionalIndicator(r)
	}
	return transliterate(tok)
}

// transliterate converts a token character-wise: letters become regional
// indicator symbols, digits become keycaps, every other character (like
// '-' or '_') is kept.
func transliterate(tok string) string {
	var out strings.Builder
	for _, r := range tok {
		switch {
		case unicode.IsLetter(r):
			out.WriteString(symbols.RegionalIndicator(r))
		case unicode.IsDigit(r):
			out.WriteString(symbols.DigitKeycap(r))
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func singleRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	return r, size > 0 && size == len(s)
}

// TranslateSentence translates a complete sentence into a sequence of
// emoji.
//
// The sentence is tokenized into words and punctuation characters (see
// package token); a cursor then walks the tokens left to right. At each
// position the translator first tries to match a chat-style :shortcode:,
// then the longest tabulated phrase, and only then translates the single
// token under the cursor with TranslateToken. Translated pieces are joined
// by single spaces, with spaces removed again in front of closing
// punctuation.
//
// TranslateSentence is safe for concurrent use.
func TranslateSentence(sentence string) string {
	scanner := borrowScanner()
	defer releaseScanner(scanner)
	scanner.Init(strings.NewReader(sentence))
	var tokens []token.Token
	for scanner.Next() {
		tokens = append(tokens, scanner.Token())
	}
	tracer().Debugf("translating %d tokens", len(tokens))
	pieces := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		if emoji, skip, ok := matchShortcodeAt(tokens, i); ok {
			pieces = append(pieces, emoji)
			i += skip
			continue
		}
		if phrase, ok := matchPhraseAt(tokens, i); ok {
			tracer().Debugf("phrase '%s' matched at position %d", phrase.Key, i)
			pieces = append(pieces, phrase.Emoji)
			i += len(phrase.Words)
			continue
		}
		pieces = append(pieces, TranslateToken(tokens[i].Text))
		i++
	}
	return tighten(strings.Join(pieces, " "))
}

// tightener drops the joining space in front of closing punctuation, so
// that "🍕 !" reads "🍕!".
var tightener = strings.NewReplacer(
	" ?", "?", " .", ".", " !", "!", " ,", ",", " :", ":", " ;", ";",
)

func tighten(s string) string {
	return tightener.Replace(s)
}
