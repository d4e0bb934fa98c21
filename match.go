package mojify

import (
	"strings"

	"github.com/npillmayer/mojify/symbols"
	"github.com/npillmayer/mojify/token"
)

// matchPhraseAt checks whether a tabulated phrase starts at position pos of
// the token sequence. Candidates are tried in match order, i.e. phrases
// with more words first (see symbols.Phrases), and the first hit wins.
// Token texts are lowercased for comparison, so phrases match
// case-insensitively.
func matchPhraseAt(tokens []token.Token, pos int) (symbols.Phrase, bool) {
	for _, phrase := range symbols.Phrases() {
		if pos+len(phrase.Words) > len(tokens) {
			continue
		}
		if phraseAt(tokens, pos, phrase) {
			return phrase, true
		}
	}
	return symbols.Phrase{}, false
}

func phraseAt(tokens []token.Token, pos int, phrase symbols.Phrase) bool {
	for j, word := range phrase.Words {
		if strings.ToLower(tokens[pos+j].Text) != word {
			return false
		}
	}
	return true
}

// matchShortcodeAt checks whether a chat-style shortcode like ":pizza:"
// starts at position pos of the token sequence. A shortcode spans three
// tokens: colon, name, colon. On a hit the returned skip count is 3.
func matchShortcodeAt(tokens []token.Token, pos int) (emoji string, skip int, ok bool) {
	if pos+3 > len(tokens) {
		return "", 0, false
	}
	if tokens[pos].Text != ":" || tokens[pos+2].Text != ":" {
		return "", 0, false
	}
	name := tokens[pos+1]
	if name.Kind != token.Word {
		return "", 0, false
	}
	emoji, ok = symbols.Shortcode(strings.ToLower(name.Text))
	if !ok {
		return "", 0, false
	}
	return emoji, 3, true
}
