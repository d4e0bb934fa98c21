/*
Package symbols provides the emoji symbol tables for translating text.

Content

Three small tables drive the translation: a word table ("pizza" -> 🍕),
a phrase table for multi-word patterns ("good night" -> 🌙😴) and a keycap
table for ASCII digits ('7' -> 7️⃣). Keys are tabulated in lowercase.

Two families of symbols are not tabulated but computed: regional indicator
symbols are derived from letters by codepoint arithmetic ('A' -> 🇦), and
country flags are pairs of regional indicators ("DE" -> 🇩🇪).

A last group of symbols is pulled in from an external registry: chat-style
shortcode names, as in ":heart:" (see Shortcode).

Attention

Before enumerating phrases, clients will have to initialize the phrase
index:

  symbols.Setup()

All phrase functions of this package will call it transparently if the
index has not been built beforehand.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package symbols

import (
	"sort"
	"strings"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
)

// A Phrase is one entry of the phrase table, pre-split for token-wise
// matching.
type Phrase struct {
	Key   string   // the phrase as tabulated; lowercase, single-spaced
	Words []string // Key, split at spaces
	Emoji string   // replacement for the complete phrase
}

var setupOnce sync.Once

// The phrase index, built by setup().
var (
	phrases    *treemap.Map // phrase key -> emoji, ordered by key
	byPriority []Phrase     // phrases in match order
)

// Setup is the top-level preparation function:
// Build the index for phrase-wise lookup and enumeration.
// (Concurrency-safe).
//
// Phrase functions will call this transparently if the index has not been
// built beforehand.
func Setup() {
	setupOnce.Do(setup)
}

func setup() {
	phrases = treemap.NewWithStringComparator()
	for key, emoji := range phraseEmoji {
		phrases.Put(key, emoji)
	}
	byPriority = make([]Phrase, 0, phrases.Size())
	phrases.Each(func(key, value interface{}) {
		k := key.(string)
		byPriority = append(byPriority, Phrase{
			Key:   k,
			Words: strings.Split(k, " "),
			Emoji: value.(string),
		})
	})
	// byPriority is in key order now; move phrases with more words up front.
	// The sort is stable, ties stay in key order.
	sort.SliceStable(byPriority, func(i, j int) bool {
		return len(byPriority[i].Words) > len(byPriority[j].Words)
	})
}

// WordEmoji returns the emoji for a single word, if the word table contains
// the word. Words are tabulated in lowercase.
func WordEmoji(word string) (string, bool) {
	emoji, ok := wordEmoji[word]
	return emoji, ok
}

// PhraseEmoji returns the emoji sequence for a complete phrase, if the
// phrase table contains the phrase. Phrases are tabulated in lowercase,
// with single spaces between words.
func PhraseEmoji(phrase string) (string, bool) {
	Setup()
	emoji, ok := phrases.Get(phrase)
	if !ok {
		return "", false
	}
	return emoji.(string), true
}

// Phrases enumerates the phrase table in match order: phrases with more
// words come first, phrases with equally many words stay in lexicographic
// order of their keys. Matching positions in text will try candidates in
// this order and stop at the first hit, thus preferring the longest match.
//
// Callers must not modify the returned slice.
func Phrases() []Phrase {
	Setup()
	return byPriority
}
