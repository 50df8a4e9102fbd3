package unisig

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"
)

// Token is one element of a composite signature. Punctuation characters are
// represented by their general category, all other characters by the first
// code point of their block.
type Token struct {
	Block    rune     // Block start; zero for punctuation tokens.
	Category Category // Punctuation category, or CategoryNone.
}

// BlockToken returns the token for a block start.
func BlockToken(start rune) Token {
	return Token{Block: start}
}

// CategoryToken returns the token for a punctuation category.
func CategoryToken(c Category) Token {
	return Token{Category: c}
}

// IsPunctuation reports whether t is a category token.
func (t Token) IsPunctuation() bool {
	return t.Category != CategoryNone
}

// String returns the category code for punctuation tokens, "U+XXXX" for
// block tokens and "No_Block" for code points outside every block.
func (t Token) String() string {
	switch {
	case t.IsPunctuation():
		return t.Category.String()
	case t.Block < 0:
		return NoBlock.Label
	}
	return fmt.Sprintf("U+%04X", t.Block)
}

// tokenOf classifies a single code point given its category and block.
func tokenOf(c Category, b Block) Token {
	if c.IsPunctuation() {
		return CategoryToken(c)
	}
	return BlockToken(b.Start)
}

// Run is one maximal run of equal composite tokens. Counts maps the run's
// token to the number of code points it covers; it always has exactly one
// entry.
type Run struct {
	Position int           // Zero-based run index.
	Counts   map[Token]int // Token to run length.
}

// Token returns the run's token.
func (r Run) Token() Token {
	for t := range r.Counts {
		return t
	}
	return Token{}
}

// Len returns the number of code points in the run.
func (r Run) Len() int {
	for _, n := range r.Counts {
		return n
	}
	return 0
}

// Digest is a BLAKE3-256 fingerprint of a composite signature.
type Digest [32]byte

// String returns the lowercase hex form of the digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// fingerprint hashes the comma-joined string forms of the tokens.
func fingerprint(tokens []Token) Digest {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return blake3.Sum256([]byte(strings.Join(parts, ",")))
}
