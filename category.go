package unisig

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// CategoryVersion is the Unicode version of the general category data. It
// follows the tables compiled into the standard library.
const CategoryVersion = unicode.Version

// Category is a Unicode General_Category value.
type Category uint8

// Unicode General Categories. The zero value is not a category; [CategoryOf]
// never returns it.
const (
	CategoryNone Category = iota
	Lu                    // Uppercase Letter
	Ll                    // Lowercase Letter
	Lt                    // Titlecase Letter
	Lm                    // Modifier Letter
	Lo                    // Other Letter
	Mn                    // Nonspacing Mark
	Mc                    // Spacing Mark
	Me                    // Enclosing Mark
	Nd                    // Decimal Number
	Nl                    // Letter Number
	No                    // Other Number
	Pc                    // Connector Punctuation
	Pd                    // Dash Punctuation
	Ps                    // Open Punctuation
	Pe                    // Close Punctuation
	Pi                    // Initial Punctuation (opening quotes like «)
	Pf                    // Final Punctuation (closing quotes like »)
	Po                    // Other Punctuation
	Sm                    // Math Symbol
	Sc                    // Currency Symbol
	Sk                    // Modifier Symbol
	So                    // Other Symbol
	Zs                    // Space Separator
	Zl                    // Line Separator
	Zp                    // Paragraph Separator
	Cc                    // Control
	Cf                    // Format
	Cs                    // Surrogate
	Co                    // Private Use
	Cn                    // Unassigned
)

var categoryCodes = [...]string{
	CategoryNone: "",
	Lu:           "Lu",
	Ll:           "Ll",
	Lt:           "Lt",
	Lm:           "Lm",
	Lo:           "Lo",
	Mn:           "Mn",
	Mc:           "Mc",
	Me:           "Me",
	Nd:           "Nd",
	Nl:           "Nl",
	No:           "No",
	Pc:           "Pc",
	Pd:           "Pd",
	Ps:           "Ps",
	Pe:           "Pe",
	Pi:           "Pi",
	Pf:           "Pf",
	Po:           "Po",
	Sm:           "Sm",
	Sc:           "Sc",
	Sk:           "Sk",
	So:           "So",
	Zs:           "Zs",
	Zl:           "Zl",
	Zp:           "Zp",
	Cc:           "Cc",
	Cf:           "Cf",
	Cs:           "Cs",
	Co:           "Co",
	Cn:           "Cn",
}

// String returns the two-letter category code, e.g. "Po".
func (c Category) String() string {
	if int(c) < len(categoryCodes) {
		return categoryCodes[c]
	}
	return ""
}

// ParseCategory returns the category for a two-letter code. The second
// return value is false if the code is unknown.
func ParseCategory(code string) (Category, bool) {
	for c, s := range categoryCodes {
		if s != "" && s == code {
			return Category(c), true
		}
	}
	return CategoryNone, false
}

// categoryTables lists the probe order for non-ASCII code points. Letters
// and marks come first since they dominate real text.
var categoryTables = []struct {
	cat   Category
	table *unicode.RangeTable
}{
	{Lo, unicode.Lo},
	{Ll, unicode.Ll},
	{Lu, unicode.Lu},
	{Mn, unicode.Mn},
	{Mc, unicode.Mc},
	{Po, unicode.Po},
	{So, unicode.So},
	{Nd, unicode.Nd},
	{No, unicode.No},
	{Sm, unicode.Sm},
	{Lm, unicode.Lm},
	{Lt, unicode.Lt},
	{Me, unicode.Me},
	{Nl, unicode.Nl},
	{Pc, unicode.Pc},
	{Pd, unicode.Pd},
	{Ps, unicode.Ps},
	{Pe, unicode.Pe},
	{Pi, unicode.Pi},
	{Pf, unicode.Pf},
	{Sc, unicode.Sc},
	{Sk, unicode.Sk},
	{Zs, unicode.Zs},
	{Zl, unicode.Zl},
	{Zp, unicode.Zp},
	{Cc, unicode.Cc},
	{Cf, unicode.Cf},
	{Cs, unicode.Cs},
	{Co, unicode.Co},
}

// asciiCategories holds the general category of every ASCII code point.
var asciiCategories [0x80]Category

func init() {
	for r := rune(0); r < 0x80; r++ {
		asciiCategories[r] = lookupCategory(r)
	}
}

// CategoryOf returns the Unicode general category of the given code point
// while fast tracking ASCII characters. Code points not listed in any
// category table, including values outside the Unicode range, are Cn.
func CategoryOf(r rune) Category {
	if r >= 0 && r < 0x80 {
		return asciiCategories[r]
	}
	return lookupCategory(r)
}

func lookupCategory(r rune) Category {
	for _, entry := range categoryTables {
		if unicode.Is(entry.table, r) {
			return entry.cat
		}
	}
	return Cn
}

// punctuationTable is the union of the categories that override block
// membership in composite signatures.
var punctuationTable = rangetable.Merge(
	unicode.Pc, unicode.Pd, unicode.Pe, unicode.Pf, unicode.Pi,
	unicode.Po, unicode.Ps, unicode.Sc, unicode.Sk, unicode.Sm,
)

// IsPunctuation reports whether c is one of Pc, Pd, Pe, Pf, Pi, Po, Ps, Sc,
// Sk or Sm. Symbols other than So are included.
func (c Category) IsPunctuation() bool {
	switch c {
	case Pc, Pd, Pe, Pf, Pi, Po, Ps, Sc, Sk, Sm:
		return true
	}
	return false
}

// IsPunctuation reports whether r belongs to one of the punctuation
// categories (see [Category.IsPunctuation]).
func IsPunctuation(r rune) bool {
	if r >= 0 && r < 0x80 {
		return asciiCategories[r].IsPunctuation()
	}
	return unicode.Is(punctuationTable, r)
}
