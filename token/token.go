/*
Package token implements word-wise tokenization of natural-language text.

Content

A text is split into tokens of two kinds: words, i.e. maximal runs of word
characters, and single punctuation characters. Whitespace separates tokens
and is dropped. Over Unicode text this corresponds to the well-known
regular expression

  \w+|[^\w\s]

where letters, digits, combining marks and the underscore count as word
characters, and anything else that is not whitespace becomes a
one-character punctuation token.

Typical Usage

Scanner provides an interface similar to bufio.Scanner for reading tokens
from a stream of Unicode text:

  scanner := token.NewScanner()
  scanner.Init(strings.NewReader("Good night, cat!"))
  for scanner.Next() {
      // do something with scanner.Token() or scanner.Text()
  }

For small in-memory texts there is a one-call convenience function:

  tokens := token.Tokenize("Good night, cat!")

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package token

import (
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// A Token is one word or punctuation character of a tokenized text.
type Token struct {
	Text string // token text, as read from the input
	Kind Kind   // word or punctuation
}

// Kind classifies a token.
type Kind int8

// Token kinds. Whitespace does not form tokens.
const (
	Word  Kind = iota // maximal run of word characters
	Punct             // single character, neither word character nor whitespace
)

func (k Kind) String() string {
	if k == Word {
		return "Word"
	}
	return "Punct"
}

// Class is the rune class deciding token boundaries.
type Class int8

// Rune classes. Every rune belongs to exactly one class.
const (
	SpaceClass Class = iota // whitespace; separates tokens
	WordClass               // letters, digits, combining marks, underscore
	OtherClass              // everything else; forms one-character tokens
)

// ClassForRune gets the token class for a Unicode code-point.
func ClassForRune(r rune) Class {
	switch {
	case unicode.IsSpace(r):
		return SpaceClass
	case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r), r == '_':
		return WordClass
	}
	return OtherClass
}

// Tokenize splits a text into its complete token sequence. It is a
// convenience function wrapping a Scanner; for large texts or streaming
// input clients should use a Scanner directly.
func Tokenize(text string) []Token {
	scanner := NewScanner()
	scanner.Init(strings.NewReader(text))
	var tokens []Token
	for scanner.Next() {
		tokens = append(tokens, scanner.Token())
	}
	return tokens
}
