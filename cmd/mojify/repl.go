package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"

	"github.com/npillmayer/mojify"
	"github.com/npillmayer/mojify/symbols"
)

// runLoop drives the interactive translation loop: read a line, translate
// it, print the result. The loop ends with one of the sentinel commands
// 'quit' or 'exit', at the end of the input, or when ctx gets cancelled,
// e.g. by an interrupt signal.
func runLoop(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, banner())
	lines := make(chan string)
	input := bufio.NewScanner(in)
	go func() {
		defer close(lines)
		for input.Scan() {
			select {
			case lines <- input.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	for {
		fmt.Fprint(out, "\nEnter sentence: ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\nbye 👋")
			return nil
		case line, ok := <-lines:
			if !ok { // end of input
				fmt.Fprintln(out, "\nbye 👋")
				return input.Err()
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if isExitCommand(line) {
				fmt.Fprintln(out, "bye 👋")
				return nil
			}
			fmt.Fprintln(out, "→", mojify.TranslateSentence(line))
		}
	}
}

// isExitCommand recognizes the sentinel commands, in any letter case.
func isExitCommand(line string) bool {
	return strings.EqualFold(line, "quit") || strings.EqualFold(line, "exit")
}

// banner assembles the greeting line, decorated with the user's country
// flag whenever the locale is detectable.
func banner() string {
	const greeting = "Emoji Translator — type 'quit' or 'exit' to stop."
	if flag := localeFlag(); flag != "" {
		return greeting + " " + flag
	}
	return greeting
}

// localeFlag detects the user's locale and resolves its region to a flag
// emoji. Returns the empty string if the region remains unknown.
func localeFlag() string {
	locale, err := jj.DetectIETF()
	if err != nil {
		tracer().Infof("no user locale detected")
		return ""
	}
	tracer().Infof("detected user locale %v", locale)
	region, confidence := language.Make(locale).Region()
	if confidence == language.No || !region.IsCountry() {
		return ""
	}
	return symbols.Flag(region.String())
}
