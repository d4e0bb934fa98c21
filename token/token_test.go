package token_test

import (
	"testing"

	"github.com/npillmayer/mojify/token"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestClassForRune(t *testing.T) {
	inputs := []struct {
		r     rune
		class token.Class
	}{
		{'a', token.WordClass},
		{'Z', token.WordClass},
		{'7', token.WordClass},
		{'_', token.WordClass},
		{'é', token.WordClass},
		{'界', token.WordClass},
		{' ', token.SpaceClass},
		{'\t', token.SpaceClass},
		{'\n', token.SpaceClass},
		{'!', token.OtherClass},
		{',', token.OtherClass},
		{'-', token.OtherClass},
		{'☕', token.OtherClass},
	}
	for _, input := range inputs {
		if class := token.ClassForRune(input.r); class != input.class {
			t.Errorf("Expected class %d for %#U, have %d", input.class, input.r, class)
		}
	}
}

func TestTokenizeSimple(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tokens := token.Tokenize("Hello, World!")
	if len(tokens) != 4 {
		t.Fatalf("Expected 4 tokens, have %d", len(tokens))
	}
	texts := []string{"Hello", ",", "World", "!"}
	kinds := []token.Kind{token.Word, token.Punct, token.Word, token.Punct}
	for i, tok := range tokens {
		t.Logf("token = '%s' (%s)", tok.Text, tok.Kind)
		if tok.Text != texts[i] {
			t.Errorf("Expected token '%s' at %d, have '%s'", texts[i], i, tok.Text)
		}
		if tok.Kind != kinds[i] {
			t.Errorf("Expected kind %s at %d, have %s", kinds[i], i, tok.Kind)
		}
	}
}

func TestTokenizeHyphens(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tokens := token.Tokenize("state-of-the-art")
	if len(tokens) != 7 {
		t.Errorf("Expected 7 tokens, have %d", len(tokens))
	}
}

func TestTokenizeUnderscore(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tokens := token.Tokenize("snake_case stays")
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, have %d", len(tokens))
	}
	if tokens[0].Text != "snake_case" {
		t.Errorf("Expected the underscore to glue a word, have '%s'", tokens[0].Text)
	}
}

func TestTokenizeWhitespaceOnly(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	if tokens := token.Tokenize("   \t \n "); len(tokens) != 0 {
		t.Errorf("Expected no tokens for whitespace, have %d", len(tokens))
	}
	if tokens := token.Tokenize(""); len(tokens) != 0 {
		t.Errorf("Expected no tokens for empty input, have %d", len(tokens))
	}
}

func TestTokenizeDigits(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tokens := token.Tokenize("call me at 12345?")
	if len(tokens) != 5 {
		t.Fatalf("Expected 5 tokens, have %d", len(tokens))
	}
	if tokens[3].Text != "12345" || tokens[3].Kind != token.Word {
		t.Errorf("Expected digit run '12345' as one word token, have '%s' (%s)",
			tokens[3].Text, tokens[3].Kind)
	}
}
