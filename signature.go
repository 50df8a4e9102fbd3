package unisig

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Signature holds a bounded piece of text together with the category and
// block of each of its code points. It is immutable after construction and
// safe for concurrent use. Every view method returns a new value.
type Signature struct {
	text      string
	maxLength int
	runes     []rune
	cats      []Category
	blocks    []Block
}

// New returns a signature of text. Text longer than the configured maximum
// length (see [WithMaxLength]) is truncated to its first code points.
//
// New returns an error wrapping ErrMaxLength if the maximum length is not in
// (0, MaxLengthLimit], and one wrapping ErrInvalidText if text is not valid
// UTF-8.
func New(text string, opts ...Option) (*Signature, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxLength <= 0 || o.MaxLength > MaxLengthLimit {
		return nil, fmt.Errorf("%w: got %d, want 1 to %d", ErrMaxLength, o.MaxLength, MaxLengthLimit)
	}
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: invalid byte sequence", ErrInvalidText)
	}

	// Truncate to the first MaxLength code points.
	var (
		runes []rune
		end   = len(text)
	)
	for i, r := range text {
		if len(runes) == o.MaxLength {
			end = i
			break
		}
		runes = append(runes, r)
	}

	s := &Signature{
		text:      text[:end],
		maxLength: o.MaxLength,
		runes:     runes,
		cats:      make([]Category, len(runes)),
		blocks:    make([]Block, len(runes)),
	}
	for i, r := range runes {
		s.cats[i] = CategoryOf(r)
		s.blocks[i] = BlockOf(r)
	}
	return s, nil
}

// NewBytes is like [New] but its input is a byte slice. The bytes are copied.
func NewBytes(b []byte, opts ...Option) (*Signature, error) {
	return New(string(b), opts...)
}

// Text returns the analyzed, possibly truncated, text.
func (s *Signature) Text() string {
	return s.text
}

// MaxLength returns the length limit the signature was built with.
func (s *Signature) MaxLength() int {
	return s.maxLength
}

// Len returns the number of code points analyzed.
func (s *Signature) Len() int {
	return len(s.runes)
}

// Codepoints returns the code points of the text in order.
func (s *Signature) Codepoints() []rune {
	return slices.Clone(s.runes)
}

// CodepointString returns the decimal values of the code points concatenated
// without a separator, e.g. "979899" for "abc". The result is ambiguous; it
// is kept for compatibility with existing stored signatures.
func (s *Signature) CodepointString() string {
	var b strings.Builder
	for _, r := range s.runes {
		b.WriteString(strconv.Itoa(int(r)))
	}
	return b.String()
}

// CategorySignature returns the general categories of the text with runs of
// equal categories collapsed to one entry.
func (s *Signature) CategorySignature() []Category {
	return collapse(len(s.cats), func(i int) Category { return s.cats[i] })
}

// CategorySet returns the distinct general categories of the text in
// ascending order.
func (s *Signature) CategorySet() []Category {
	set := slices.Clone(s.cats)
	slices.Sort(set)
	return slices.Compact(set)
}

// BlockSignature returns the start code points of the blocks of the text with
// runs of equal blocks collapsed to one entry.
func (s *Signature) BlockSignature() []rune {
	return collapse(len(s.blocks), func(i int) rune { return s.blocks[i].Start })
}

// BlockLabelSignature is like [Signature.BlockSignature] but returns block
// labels. Both have the same run boundaries.
func (s *Signature) BlockLabelSignature() []string {
	return collapse(len(s.blocks), func(i int) string { return s.blocks[i].Label })
}

// BlockSet returns the distinct block start code points of the text in
// ascending order.
func (s *Signature) BlockSet() []rune {
	set := s.BlockSignature()
	slices.Sort(set)
	return slices.Compact(set)
}

// token returns the composite token of the i-th code point.
func (s *Signature) token(i int) Token {
	return tokenOf(s.cats[i], s.blocks[i])
}

// CompositeSignature returns the composite tokens of the text with runs of
// equal tokens collapsed to one entry. Punctuation characters contribute
// their category, all other characters their block start.
func (s *Signature) CompositeSignature() []Token {
	return collapse(len(s.runes), s.token)
}

// CompositeRuns returns one [Run] per entry of [Signature.CompositeSignature],
// in the same order, each recording the length of the run.
func (s *Signature) CompositeRuns() []Run {
	return countRuns(len(s.runes), s.token)
}

// CompositeCounts returns the number of code points per composite token over
// the whole text. Separate runs of the same token are summed.
func (s *Signature) CompositeCounts() map[Token]int {
	counts := make(map[Token]int)
	for i := range s.runes {
		counts[s.token(i)]++
	}
	return counts
}

// PunctuationSignature returns the category of every punctuation character
// in text order. Runs are not collapsed.
func (s *Signature) PunctuationSignature() []Category {
	var out []Category
	for _, c := range s.cats {
		if c.IsPunctuation() {
			out = append(out, c)
		}
	}
	return out
}

// Fingerprint returns the BLAKE3-256 digest of the composite signature. Texts
// with equal composite signatures have equal fingerprints.
func (s *Signature) Fingerprint() Digest {
	return fingerprint(s.CompositeSignature())
}
