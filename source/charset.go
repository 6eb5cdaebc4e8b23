package source

import "sort"

// ASCIISet is a dense 256-bit membership mask for byte-sized character
// classes such as "identifier start" or "hex digit". Membership is O(1).
type ASCIISet [4]uint64

// With returns a copy of s with every byte in [lo, hi] added.
func (s ASCIISet) With(lo, hi byte) ASCIISet {
	for b := int(lo); b <= int(hi); b++ {
		s[b/64] |= 1 << uint(b%64)
	}
	return s
}

// WithByte returns a copy of s with a single byte added.
func (s ASCIISet) WithByte(b byte) ASCIISet { return s.With(b, b) }

// Contains reports whether r is an ASCII byte present in s. Non-ASCII
// runes are never members, regardless of width.
func (s ASCIISet) Contains(r rune) bool {
	if r < 0 || r > 0x7F {
		return false
	}
	return s[r/64]&(1<<uint(r%64)) != 0
}

// Range is an inclusive [Lo, Hi] codepoint range.
type Range struct {
	Lo, Hi rune
}

// UnicodeSet is a sorted-by-Lo table of disjoint ranges, searched with
// binary search.
type UnicodeSet struct {
	ranges []Range
}

// NewUnicodeSet builds a set from ranges, which must already be sorted by
// Lo and non-overlapping (the tables below are built that way by hand).
func NewUnicodeSet(ranges ...Range) UnicodeSet {
	out := make([]Range, len(ranges))
	copy(out, ranges)
	sort.Slice(out, func(i, j int) bool { return out[i].Lo < out[j].Lo })
	return UnicodeSet{ranges: out}
}

// Contains reports whether r falls inside any range in the set.
func (u UnicodeSet) Contains(r rune) bool {
	ranges := u.ranges
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].Hi >= r })
	return i < len(ranges) && ranges[i].Lo <= r
}

var (
	asciiIdentifierStart = ASCIISet{}.With('a', 'z').With('A', 'Z').WithByte('_')
	asciiIdentifierCont  = asciiIdentifierStart.With('0', '9')
	asciiHexDigit        = ASCIISet{}.With('0', '9').With('a', 'f').With('A', 'F')
	asciiOctDigit        = ASCIISet{}.With('0', '7')
	asciiBinDigit        = ASCIISet{}.With('0', '1')
	asciiDecDigit        = ASCIISet{}.With('0', '9')
	asciiWhitespace      = ASCIISet{}.WithByte(0x09).WithByte(0x0B).WithByte(0x0C).WithByte(0x0D).WithByte(0x20)

	// unicodeIdentifierStart / unicodeIdentifierContinue approximate the
	// Unicode XID_Start / XID_Continue properties with the common BMP
	// letter-number ranges a self-hosted compiler needs; full Unicode
	// tables belong to a generated data file this port does not ship.
	unicodeIdentifierStart = NewUnicodeSet(
		Range{0x00C0, 0x024F}, // Latin Extended-A/B
		Range{0x0370, 0x03FF}, // Greek
		Range{0x0400, 0x04FF}, // Cyrillic
		Range{0x3040, 0x30FF}, // Hiragana/Katakana
		Range{0x4E00, 0x9FFF}, // CJK Unified Ideographs
	)
	unicodeIdentifierContinue = NewUnicodeSet(
		Range{0x00C0, 0x024F},
		Range{0x0300, 0x036F}, // combining marks
		Range{0x0370, 0x03FF},
		Range{0x0400, 0x04FF},
		Range{0x3040, 0x30FF},
		Range{0x4E00, 0x9FFF},
	)
)

// IsIdentifierStart reports whether r may begin an identifier: ASCII
// letters, underscore, or a Unicode XID_Start-equivalent codepoint.
func IsIdentifierStart(r rune) bool {
	if r <= 0x7F {
		return asciiIdentifierStart.Contains(r)
	}
	return unicodeIdentifierStart.Contains(r)
}

// IsIdentifierContinue reports whether r may continue an identifier.
func IsIdentifierContinue(r rune) bool {
	if r <= 0x7F {
		return asciiIdentifierCont.Contains(r)
	}
	return unicodeIdentifierContinue.Contains(r) || unicodeIdentifierStart.Contains(r)
}

// IsHexDigit reports whether r is 0-9, a-f, or A-F.
func IsHexDigit(r rune) bool { return asciiHexDigit.Contains(r) }

// IsOctDigit reports whether r is 0-7.
func IsOctDigit(r rune) bool { return asciiOctDigit.Contains(r) }

// IsBinDigit reports whether r is 0 or 1.
func IsBinDigit(r rune) bool { return asciiBinDigit.Contains(r) }

// IsDecDigit reports whether r is 0-9.
func IsDecDigit(r rune) bool { return asciiDecDigit.Contains(r) }

// IsWhitespace reports whether r is horizontal whitespace: tab, vertical
// tab, form feed, lone CR, or space. Newlines are not whitespace; they
// are their own trivia kind.
func IsWhitespace(r rune) bool { return asciiWhitespace.Contains(r) }
