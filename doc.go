/*
Package unisig computes structural signatures of text from the Unicode
General_Category and Unicode block of each code point.

This package uses:
  - Unicode block data from Blocks.txt, Unicode version 15.0 ([BlockVersion])
  - General categories from the standard library tables ([CategoryVersion])

# Overview

A signature is a compact fingerprint of the "shape" of a string: which kinds
of characters it contains and in which order. Signatures are useful for
anomaly detection, script or charset classification, and spotting strings
that mix unexpected alphabets.

	s, err := unisig.New("Hello, мир!")
	if err != nil {
		// handle err
	}
	s.CategorySignature()  // [Lu Ll Po Zs Ll Po]
	s.CompositeSignature() // [U+0000 Po U+0000 U+0400 Po]

The analysis works on individual code points. There is no normalization, no
grapheme cluster segmentation and no locale awareness.

# Construction

[New] and [NewBytes] accept text of any length but only analyze its first
[DefaultMaxLength] code points, or as many as set with [WithMaxLength]. The
limit must be in (0, [MaxLengthLimit]]. Construction is the only step that
can fail; see [ErrMaxLength], [ErrInvalidText] and [KindOf].

# Views

A [Signature] is immutable. Each view is recomputed on every call and the
returned value belongs to the caller:

  - [Signature.Codepoints] / [Signature.CodepointString] - raw code points
  - [Signature.CategorySignature] / [Signature.CategorySet] - general categories
  - [Signature.BlockSignature] / [Signature.BlockLabelSignature] / [Signature.BlockSet] - blocks
  - [Signature.CompositeSignature] - blocks, with punctuation promoted to its category
  - [Signature.CompositeRuns] - composite runs with their lengths
  - [Signature.CompositeCounts] - composite token histogram
  - [Signature.PunctuationSignature] - categories of punctuation characters only
  - [Signature.Fingerprint] - BLAKE3 digest of the composite signature

Signature views (all but the sets, counts and punctuation view) collapse runs:
consecutive code points with the same classification produce one entry.

# Punctuation

The categories Pc, Pd, Pe, Pf, Pi, Po, Ps, Sc, Sk and Sm are treated as
punctuation. In composite views they replace the block of the character, so
"a.b" yields [U+0000 Po U+0000] instead of a single Basic Latin entry.

# Lookups

[CategoryOf] and [BlockOf] are available on their own. Code points without a
category are Cn; code points outside every block belong to [NoBlock].
*/
package unisig
