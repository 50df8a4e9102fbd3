package unisig

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var latin = BlockToken(0x0000)

// sampleTexts exercises ASCII, mixed scripts, punctuation runs and astral
// code points.
var sampleTexts = []string{
	"",
	"a",
	"abc",
	"ab12",
	"a.b",
	"aab",
	"Hello, world!",
	"Hello, мир!",
	"¿Qué tal?",
	"«quoted» — dash",
	"price: $12.50 + €3",
	"日本語のテキスト。",
	"emoji 😀😀 and 🚀!",
	"x\u0301y\u0303",
	"\u0378\u2FE0abc",
	"!!!???...",
	"a_b-c(d)e[f]g{h}",
}

func TestNewMaxLength(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		wantErr bool
	}{
		{"zero", 0, true},
		{"negative", -1, true},
		{"above limit", MaxLengthLimit + 1, true},
		{"far above limit", 2000, true},
		{"one", 1, false},
		{"default", DefaultMaxLength, false},
		{"at limit", MaxLengthLimit, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New("abc", WithMaxLength(tt.limit))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMaxLength)
				assert.Equal(t, KindRange, KindOf(err))
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.limit, s.MaxLength())
		})
	}
}

func TestNewDefaults(t *testing.T) {
	s, err := New("abc")
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxLength, s.MaxLength())
	assert.Equal(t, "abc", s.Text())
	assert.Equal(t, 3, s.Len())
}

func TestNewInvalidText(t *testing.T) {
	_, err := NewBytes([]byte{'a', 0xff, 'b'})
	require.ErrorIs(t, err, ErrInvalidText)
	assert.Equal(t, KindType, KindOf(err))

	_, err = New("a\xc3")
	require.ErrorIs(t, err, ErrInvalidText)

	// The length limit is checked before the text.
	_, err = NewBytes([]byte{0xff}, WithMaxLength(0))
	require.ErrorIs(t, err, ErrMaxLength)
}

func TestKindOfUnrelated(t *testing.T) {
	assert.Equal(t, KindNone, KindOf(nil))
	assert.Equal(t, KindNone, KindOf(assert.AnError))
}

func TestNewBytes(t *testing.T) {
	b := []byte("ab.")
	s, err := NewBytes(b)
	require.NoError(t, err)
	b[0] = 'X'
	assert.Equal(t, "ab.", s.Text())
	assert.Equal(t, []Token{latin, CategoryToken(Po)}, s.CompositeSignature())
}

func TestTruncation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{"ascii", "abcdef", 3, "abc"},
		{"multibyte", "h\u00e9llo w\u00f6rld", 3, "h\u00e9l"},
		{"astral", "😀😀😀x", 2, "😀😀"},
		{"exact", "abc", 3, "abc"},
		{"shorter", "ab", 3, "ab"},
		{"combining not clustered", "e\u0301e\u0301", 1, "e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.input, WithMaxLength(tt.limit))
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Text())
			assert.Equal(t, utf8.RuneCountInString(tt.want), s.Len())
			assert.Equal(t, []rune(tt.want), s.Codepoints())
		})
	}
}

func TestTruncationAppliesToViews(t *testing.T) {
	s, err := New("abc.", WithMaxLength(3))
	require.NoError(t, err)
	assert.Equal(t, []Category{Ll}, s.CategorySignature())
	assert.Empty(t, s.PunctuationSignature())
	assert.Equal(t, map[Token]int{latin: 3}, s.CompositeCounts())

	long := strings.Repeat("a.", MaxLengthLimit)
	s, err = New(long, WithMaxLength(MaxLengthLimit))
	require.NoError(t, err)
	assert.Equal(t, MaxLengthLimit, s.Len())
	assert.Len(t, s.PunctuationSignature(), MaxLengthLimit/2)
}

func TestScenarios(t *testing.T) {
	t.Run("abc", func(t *testing.T) {
		s, err := New("abc")
		require.NoError(t, err)
		assert.Equal(t, []Category{Ll}, s.CategorySignature())
		assert.Equal(t, []rune{97, 98, 99}, s.Codepoints())
		assert.Equal(t, "979899", s.CodepointString())
	})

	t.Run("ab12", func(t *testing.T) {
		s, err := New("ab12")
		require.NoError(t, err)
		assert.Equal(t, []Category{Ll, Nd}, s.CategorySignature())
		assert.Equal(t, []Category{Ll, Nd}, s.CategorySet())
	})

	t.Run("a.b", func(t *testing.T) {
		s, err := New("a.b")
		require.NoError(t, err)
		assert.Equal(t, []Token{latin, CategoryToken(Po), latin}, s.CompositeSignature())
		assert.Equal(t, []rune{0}, s.BlockSignature())
	})

	t.Run("aab", func(t *testing.T) {
		s, err := New("aab")
		require.NoError(t, err)
		assert.Equal(t, []Run{{Position: 0, Counts: map[Token]int{latin: 3}}}, s.CompositeRuns())
	})
}

func TestEmpty(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Codepoints())
	assert.Empty(t, s.CodepointString())
	assert.Empty(t, s.CategorySignature())
	assert.Empty(t, s.CategorySet())
	assert.Empty(t, s.BlockSignature())
	assert.Empty(t, s.BlockLabelSignature())
	assert.Empty(t, s.BlockSet())
	assert.Empty(t, s.CompositeSignature())
	assert.Empty(t, s.CompositeRuns())
	assert.Empty(t, s.CompositeCounts())
	assert.Empty(t, s.PunctuationSignature())
}

func TestBlockViews(t *testing.T) {
	s, err := New("abcαβγabc日本")
	require.NoError(t, err)
	assert.Equal(t, []rune{0x0000, 0x0370, 0x0000, 0x4E00}, s.BlockSignature())
	assert.Equal(t, []string{"Basic Latin", "Greek and Coptic", "Basic Latin", "CJK Unified Ideographs"}, s.BlockLabelSignature())
	assert.Equal(t, []rune{0x0000, 0x0370, 0x4E00}, s.BlockSet())
}

func TestNoBlockCodePoints(t *testing.T) {
	// U+2FE0 lies between Kangxi Radicals and Ideographic Description
	// Characters.
	s, err := New("a\u2FE0\u2FE1b")
	require.NoError(t, err)
	assert.Equal(t, []rune{0, -1, 0}, s.BlockSignature())
	assert.Equal(t, []string{"Basic Latin", "No_Block", "Basic Latin"}, s.BlockLabelSignature())
	assert.Equal(t, []Category{Ll, Cn, Ll}, s.CategorySignature())
}

func TestCompositeSignaturePunctuationOverride(t *testing.T) {
	s, err := New("«Hi» — $5+x^2")
	require.NoError(t, err)
	got := s.CompositeSignature()
	assert.Equal(t, []Token{
		CategoryToken(Pi), // «
		latin,             // Hi
		CategoryToken(Pf), // »
		latin,             // space
		CategoryToken(Pd), // —
		latin,             // space
		CategoryToken(Sc), // $
		latin,             // 5
		CategoryToken(Sm), // +
		latin,             // x
		CategoryToken(Sk), // ^
		latin,             // 2
	}, got)
}

func TestCompositeRuns(t *testing.T) {
	s, err := New("ab..c!?ж")
	require.NoError(t, err)
	assert.Equal(t, []Run{
		{Position: 0, Counts: map[Token]int{latin: 2}},
		{Position: 1, Counts: map[Token]int{CategoryToken(Po): 2}},
		{Position: 2, Counts: map[Token]int{latin: 1}},
		{Position: 3, Counts: map[Token]int{CategoryToken(Po): 2}},
		{Position: 4, Counts: map[Token]int{BlockToken(0x0400): 1}},
	}, s.CompositeRuns())
}

func TestCompositeCounts(t *testing.T) {
	s, err := New("a.b.c ж")
	require.NoError(t, err)
	assert.Equal(t, map[Token]int{
		latin:              4,
		CategoryToken(Po):  2,
		BlockToken(0x0400): 1,
	}, s.CompositeCounts())
}

func TestPunctuationSignature(t *testing.T) {
	s, err := New("a,,b;(c)")
	require.NoError(t, err)
	assert.Equal(t, []Category{Po, Po, Po, Ps, Pe}, s.PunctuationSignature())
}

func TestViewsReturnFreshValues(t *testing.T) {
	s, err := New("ab.c")
	require.NoError(t, err)

	cps := s.Codepoints()
	cps[0] = 'z'
	assert.Equal(t, 'a', s.Codepoints()[0])

	set := s.CategorySet()
	set[0] = Cn
	assert.NotEqual(t, Cn, s.CategorySet()[0])

	counts := s.CompositeCounts()
	counts[latin] = 100
	assert.Equal(t, 3, s.CompositeCounts()[latin])
}

// TestInvariants checks the properties every view must satisfy on a range of
// inputs.
func TestInvariants(t *testing.T) {
	for _, text := range sampleTexts {
		t.Run(text, func(t *testing.T) {
			s, err := New(text)
			require.NoError(t, err)

			assertNoAdjacentDuplicates(t, s.CategorySignature())
			assertNoAdjacentDuplicates(t, s.BlockSignature())
			assertNoAdjacentDuplicates(t, s.BlockLabelSignature())
			assertNoAdjacentDuplicates(t, s.CompositeSignature())

			// Block starts and labels share run boundaries.
			starts, labels := s.BlockSignature(), s.BlockLabelSignature()
			require.Len(t, labels, len(starts))
			for i, start := range starts {
				assert.Equal(t, BlockOf(start).Label, labels[i])
			}

			// Runs line up with the composite signature and conserve length.
			composite := s.CompositeSignature()
			runs := s.CompositeRuns()
			require.Len(t, runs, len(composite))
			total := 0
			for i, run := range runs {
				assert.Equal(t, i, run.Position)
				assert.Len(t, run.Counts, 1)
				assert.Equal(t, composite[i], run.Token())
				total += run.Len()
			}
			assert.Equal(t, s.Len(), total)

			// The histogram conserves length and agrees with the runs.
			histogram := 0
			perToken := make(map[Token]int)
			for _, run := range runs {
				perToken[run.Token()] += run.Len()
			}
			for token, n := range s.CompositeCounts() {
				histogram += n
				assert.Equal(t, perToken[token], n, "token %s", token)
			}
			assert.Equal(t, s.Len(), histogram)

			// Punctuation is the punctuation subsequence of the uncollapsed
			// composite stream.
			var punct []Category
			for _, r := range s.Codepoints() {
				if token := tokenOf(CategoryOf(r), BlockOf(r)); token.IsPunctuation() {
					punct = append(punct, token.Category)
				}
			}
			assert.Equal(t, punct, s.PunctuationSignature())

			// Sets hold exactly the distinct signature entries.
			assert.ElementsMatch(t, distinct(s.CategorySignature()), s.CategorySet())
			assert.ElementsMatch(t, distinct(s.BlockSignature()), s.BlockSet())
		})
	}
}

func TestDeterminism(t *testing.T) {
	for _, text := range sampleTexts {
		a, err := New(text, WithMaxLength(8))
		require.NoError(t, err)
		b, err := New(text, WithMaxLength(8))
		require.NoError(t, err)

		assert.Equal(t, a.Text(), b.Text())
		assert.Equal(t, a.CategorySignature(), b.CategorySignature())
		assert.Equal(t, a.BlockLabelSignature(), b.BlockLabelSignature())
		assert.Equal(t, a.CompositeSignature(), b.CompositeSignature())
		assert.Equal(t, a.CompositeRuns(), b.CompositeRuns())
		assert.Equal(t, a.CompositeCounts(), b.CompositeCounts())
		assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	}
}

func TestFingerprint(t *testing.T) {
	abc, err := New("abc")
	require.NoError(t, err)
	xyz, err := New("xyz")
	require.NoError(t, err)
	dotted, err := New("a.b")
	require.NoError(t, err)

	assert.Equal(t, abc.Fingerprint(), xyz.Fingerprint())
	assert.NotEqual(t, abc.Fingerprint(), dotted.Fingerprint())
	assert.Len(t, abc.Fingerprint().String(), 64)
}

func TestConcurrentReads(t *testing.T) {
	s, err := New("Hello, мир! 😀 a.b")
	require.NoError(t, err)
	want := s.CompositeRuns()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, want, s.CompositeRuns())
				_ = s.CompositeCounts()
				_ = s.BlockSet()
			}
		}()
	}
	wg.Wait()
}

func assertNoAdjacentDuplicates[T comparable](t *testing.T, seq []T) {
	t.Helper()
	for i := 1; i < len(seq); i++ {
		assert.NotEqual(t, seq[i-1], seq[i], "equal neighbours at %d in %v", i, seq)
	}
}

func distinct[T comparable](seq []T) []T {
	seen := make(map[T]bool)
	var out []T
	for _, v := range seq {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func BenchmarkNew(b *testing.B) {
	text := strings.Repeat("Hello, мир! 日本語。", 40)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := New(text, WithMaxLength(MaxLengthLimit)); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

func BenchmarkCompositeRuns(b *testing.B) {
	s, err := New(strings.Repeat("Hello, мир! 日本語。", 40), WithMaxLength(MaxLengthLimit))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.CompositeRuns()
	}
}
