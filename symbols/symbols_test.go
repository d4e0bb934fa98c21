package symbols

import (
	"strings"
	"testing"
)

func TestWordLookup(t *testing.T) {
	emoji, ok := WordEmoji("pizza")
	if !ok {
		t.Fatalf("expected word 'pizza' to be tabulated")
	}
	if emoji != "🍕" {
		t.Errorf("Expected 🍕 for 'pizza', have %s", emoji)
	}
	if _, ok := WordEmoji("Pizza"); ok {
		t.Errorf("word table is tabulated in lowercase; 'Pizza' should not match")
	}
	if _, ok := WordEmoji("pineapple"); ok {
		t.Errorf("did not expect 'pineapple' to be tabulated")
	}
}

func TestPhraseLookup(t *testing.T) {
	emoji, ok := PhraseEmoji("good night")
	if !ok {
		t.Fatalf("expected phrase 'good night' to be tabulated")
	}
	if emoji != "🌙😴" {
		t.Errorf("Expected 🌙😴 for 'good night', have %s", emoji)
	}
	if _, ok := PhraseEmoji("good evening"); ok {
		t.Errorf("did not expect 'good evening' to be tabulated")
	}
}

func TestPhraseOrder(t *testing.T) {
	phrases := Phrases()
	if len(phrases) != 5 {
		t.Fatalf("Expected 5 phrases, have %d", len(phrases))
	}
	for _, phrase := range phrases {
		t.Logf("phrase = '%s' (%d words)", phrase.Key, len(phrase.Words))
	}
	if phrases[0].Key != "i love you" {
		t.Errorf("Expected the 3-word phrase up front, have '%s'", phrases[0].Key)
	}
	for i := 1; i < len(phrases); i++ {
		prev, curr := phrases[i-1], phrases[i]
		if len(prev.Words) < len(curr.Words) {
			t.Errorf("'%s' sorted after '%s'; longer phrases must come first",
				curr.Key, prev.Key)
		}
		if len(prev.Words) == len(curr.Words) && prev.Key > curr.Key {
			t.Errorf("'%s' and '%s' have equal length and must stay in key order",
				prev.Key, curr.Key)
		}
	}
}

func TestPhraseWords(t *testing.T) {
	for _, phrase := range Phrases() {
		if strings.Join(phrase.Words, " ") != phrase.Key {
			t.Errorf("words %v do not re-join to key '%s'", phrase.Words, phrase.Key)
		}
		if emoji, ok := PhraseEmoji(phrase.Key); !ok || emoji != phrase.Emoji {
			t.Errorf("enumeration and lookup disagree for '%s'", phrase.Key)
		}
	}
}
