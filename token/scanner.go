package token

import (
	"bytes"
	"errors"
	"io"
	"strings"
)

// A Scanner receives a sequence of code-points from an io.RuneReader and
// splits it into tokens: words and punctuation characters (see
// ClassForRune for the exact boundaries).
//
// Scanners process text of arbitrary length with a small and constant
// memory footprint, as only the active token is buffered.
type Scanner struct {
	reader    io.RuneReader // where we get the next runes from
	buffer    *bytes.Buffer // collects the runes of the active token
	kind      Kind          // kind of the active token
	lookahead rune          // pushed back rune
	haveLA    bool          // is the lookahead valid?
	err       error
	atEOF     bool
}

const startBufSize = 64 // size of initial allocation for buffer

// ErrNotInitialized is returned if a scanners Next-function is called
// without first setting an input source.
var ErrNotInitialized = errors.New("token scanner not initialized; must call Init(...) first")

// NewScanner creates a new Scanner.
//
// Before using newly created scanners, clients will have to call Init(...)
// on them, i.e. initialize them for a rune reader.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Init initializes a Scanner with an io.RuneReader to read from.
// s is either a newly created scanner to be initialized, or we may
// re-initialize a scanner already in use.
func (s *Scanner) Init(reader io.RuneReader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	s.reader = reader
	if s.buffer == nil {
		s.buffer = bytes.NewBuffer(make([]byte, 0, startBufSize))
	} else {
		s.buffer.Reset()
	}
	s.kind = Word
	s.haveLA = false
	s.err = nil
	s.atEOF = false
}

// Next advances the Scanner to the next token, which will then be available
// through the Token(), Bytes() or Text() methods. It returns false when the
// scanning stops, either by reaching the end of the input or an error.
// After Next() returns false, the Err() method will return any error that
// occurred during scanning, except for io.EOF. For the latter case Err()
// will return nil.
func (s *Scanner) Next() bool {
	if s.reader == nil {
		s.setErr(ErrNotInitialized)
		return false
	}
	s.buffer.Reset()
	r, ok := s.skipSpace()
	if !ok {
		return false
	}
	if ClassForRune(r) == WordClass {
		s.kind = Word
		s.buffer.WriteRune(r)
		s.collectWord()
	} else {
		s.kind = Punct
		s.buffer.WriteRune(r)
	}
	tracer().Debugf("token = '%s' (%s)", s.Text(), s.kind)
	return true
}

// skipSpace consumes whitespace and returns the first non-space rune.
func (s *Scanner) skipSpace() (rune, bool) {
	for {
		r, ok := s.readRune()
		if !ok {
			return 0, false
		}
		if ClassForRune(r) != SpaceClass {
			return r, true
		}
	}
}

// collectWord extends the active token to the end of the current run of
// word characters. The first rune after the run is pushed back.
func (s *Scanner) collectWord() {
	for {
		r, ok := s.readRune()
		if !ok {
			return
		}
		if ClassForRune(r) != WordClass {
			s.pushBack(r)
			return
		}
		s.buffer.WriteRune(r)
	}
}

func (s *Scanner) readRune() (rune, bool) {
	if s.haveLA {
		s.haveLA = false
		return s.lookahead, true
	}
	if s.atEOF {
		return 0, false
	}
	r, _, err := s.reader.ReadRune()
	if err != nil {
		s.atEOF = true
		if err != io.EOF {
			s.setErr(err)
		}
		return 0, false
	}
	return r, true
}

func (s *Scanner) pushBack(r rune) {
	s.lookahead = r
	s.haveLA = true
}

// Token returns the most recent token generated by a call to Next().
func (s *Scanner) Token() Token {
	return Token{Text: s.Text(), Kind: s.kind}
}

// Text returns the text of the most recent token generated by a call to
// Next().
func (s *Scanner) Text() string {
	return s.buffer.String()
}

// Bytes returns the bytes of the most recent token generated by a call to
// Next(). The underlying array may be overwritten by a subsequent call to
// Next(); it does no allocation.
func (s *Scanner) Bytes() []byte {
	return s.buffer.Bytes()
}

// Kind returns the kind of the most recent token generated by a call to
// Next().
func (s *Scanner) Kind() Kind {
	return s.kind
}

// Err returns the first non-EOF error that was encountered by the Scanner.
func (s *Scanner) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

func (s *Scanner) setErr(err error) {
	if s.err == nil || s.err == io.EOF {
		s.err = err
	}
}
