package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/mojify"
)

// demoExamples are run through the translator before the interactive loop
// starts.
var demoExamples = []string{
	"I love pizza!",
	"Good night, sleepy cat.",
	"Hello, can you call me at 12345?",
	"Do you like coffee or tea?",
	"Dance party!",
}

// runDemo prints a translation for each demo example.
func runDemo(out io.Writer) {
	fmt.Fprintln(out, "Demo translations:")
	for _, example := range demoExamples {
		fmt.Fprintf(out, "%s -> %s\n", example, mojify.TranslateSentence(example))
	}
}
