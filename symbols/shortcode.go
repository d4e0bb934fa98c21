package symbols

import (
	"strings"
	"sync"
	"unicode"

	"github.com/kyokomi/emoji/v2"
)

var shortcodeOnce sync.Once

// The shortcode registry, built on first use.
var shortcodes map[string]string

// Shortcode returns the emoji for a chat-style shortcode name, i.e. the
// "heart" of ":heart:", without the surrounding colons. The registry keeps
// every shortcode whose name consists of lowercase letters, digits and
// underscores only; names with other characters ("+1") would not survive
// tokenization as a single word and are left out.
func Shortcode(name string) (string, bool) {
	shortcodeOnce.Do(setupShortcodes)
	unicodes, ok := shortcodes[name]
	return unicodes, ok
}

func setupShortcodes() {
	codemap := emoji.CodeMap()
	shortcodes = make(map[string]string, len(codemap))
	for code, unicodes := range codemap {
		name := strings.Trim(code, ":")
		if !isPlainName(name) {
			continue
		}
		shortcodes[name] = unicodes
	}
}

func isPlainName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLower(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
