/*
Package mojify translates natural-language sentences into emoji sequences.

Content

mojify walks a sentence token by token and replaces what it recognizes:
words and multi-word phrases from a small symbol table become their emoji
counterparts, runs of digits become keycap symbols, and every remaining
letter falls back to a regional indicator symbol (A -> 🇦). Characters
without any emoji equivalent are passed through unchanged, thus translation
will produce output for every input.

Typical Usage

Translating a sentence is a one-liner:

  out := mojify.TranslateSentence("Good night, sleepy cat.")
  fmt.Println(out)     // 🌙😴, 🇸🇱🇪🇪🇵🇾 🐱.

Clients in need of finer control may tokenize themselves (see package token)
and translate token by token:

  mojify.TranslateToken("pizza")    // 🍕
  mojify.TranslateToken("42")       // 4️⃣2️⃣

Sentence translation additionally recognizes multi-word phrases ("good
night") and chat-style shortcodes (":heart:"); both span more than one
token and therefore have no token-wise equivalent.

Attention

The symbol tables are set up lazily on first use (see package symbols).
All translation functions of this package will trigger the setup
transparently.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package mojify

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
