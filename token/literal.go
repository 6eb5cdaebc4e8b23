package token

// IntegerPrefix is the radix a numeric literal was written in. An
// un-prefixed literal (no 0b/0o/0x) is Default, not Decimal: the lexer
// never emits Decimal itself, it only exists so a radix-prefix table can
// be indexed uniformly alongside Binary/Octal/Hexadecimal.
type IntegerPrefix int

const (
	Default IntegerPrefix = iota
	Binary
	Octal
	Decimal
	Hexadecimal
)

func (p IntegerPrefix) String() string {
	switch p {
	case Default:
		return "Default"
	case Binary:
		return "Binary"
	case Octal:
		return "Octal"
	case Decimal:
		return "Decimal"
	case Hexadecimal:
		return "Hexadecimal"
	default:
		return "IntegerPrefix(?)"
	}
}

// IntegerSuffix names the intended host type of an integer literal.
type IntegerSuffix int

const (
	IntegerSuffixDefault IntegerSuffix = iota
	SuffixI8
	SuffixI16
	SuffixI32
	SuffixI64
	SuffixI128
	SuffixU8
	SuffixU16
	SuffixU32
	SuffixU64
	SuffixU128
	SuffixISize
	SuffixUSize
	SuffixIPtr
	SuffixUPtr
)

var integerSuffixNames = map[IntegerSuffix]string{
	IntegerSuffixDefault: "Default",
	SuffixI8:             "i8", SuffixI16: "i16", SuffixI32: "i32",
	SuffixI64: "i64", SuffixI128: "i128",
	SuffixU8: "u8", SuffixU16: "u16", SuffixU32: "u32",
	SuffixU64: "u64", SuffixU128: "u128",
	SuffixISize: "isize", SuffixUSize: "usize",
	SuffixIPtr: "iptr", SuffixUPtr: "uptr",
}

func (s IntegerSuffix) String() string { return integerSuffixNames[s] }

// integerSuffixByName maps canonical spellings to IntegerSuffix values,
// used by the lexer to classify a numeric suffix lexeme.
var integerSuffixByName = map[string]IntegerSuffix{
	"i8": SuffixI8, "i16": SuffixI16, "i32": SuffixI32, "i64": SuffixI64, "i128": SuffixI128,
	"u8": SuffixU8, "u16": SuffixU16, "u32": SuffixU32, "u64": SuffixU64, "u128": SuffixU128,
	"isize": SuffixISize, "usize": SuffixUSize, "iptr": SuffixIPtr, "uptr": SuffixUPtr,
}

// LookupIntegerSuffix returns the IntegerSuffix for a canonical spelling.
func LookupIntegerSuffix(s string) (IntegerSuffix, bool) {
	v, ok := integerSuffixByName[s]
	return v, ok
}

// FloatSuffix names the intended host type of a float literal.
type FloatSuffix int

const (
	FloatSuffixDefault FloatSuffix = iota
	SuffixF16
	SuffixF32
	SuffixF64
	SuffixF128
	SuffixD128
)

var floatSuffixNames = map[FloatSuffix]string{
	FloatSuffixDefault: "Default",
	SuffixF16:           "f16",
	SuffixF32:           "f32",
	SuffixF64:           "f64",
	SuffixF128:          "f128",
	SuffixD128:          "d128",
}

func (s FloatSuffix) String() string { return floatSuffixNames[s] }

var floatSuffixByName = map[string]FloatSuffix{
	"f16": SuffixF16, "f32": SuffixF32, "f64": SuffixF64, "f128": SuffixF128, "d128": SuffixD128,
}

// LookupFloatSuffix returns the FloatSuffix for a canonical spelling.
func LookupFloatSuffix(s string) (FloatSuffix, bool) {
	v, ok := floatSuffixByName[s]
	return v, ok
}

// StringPrefix is the encoding prefix on a string or character literal.
type StringPrefix int

const (
	StringPrefixDefault StringPrefix = iota
	PrefixU8
	PrefixU16
	PrefixU32
)

func (p StringPrefix) String() string {
	switch p {
	case StringPrefixDefault:
		return "Default"
	case PrefixU8:
		return "u8"
	case PrefixU16:
		return "u16"
	case PrefixU32:
		return "u32"
	default:
		return "StringPrefix(?)"
	}
}

// IntegerLiteralValue is the payload of an IntegerLiteral token. Text has
// had its `_` separators stripped; the core never evaluates it into a
// host integer -- that's a later compiler phase's job.
type IntegerLiteralValue struct {
	Prefix IntegerPrefix
	Suffix IntegerSuffix
	Text   string
	// RawSuffix preserves what was actually written when Suffix could
	// not be recognized, so diagnostics can quote it.
	RawSuffix string
}

// FloatLiteralValue is the payload of a FloatLiteral token.
type FloatLiteralValue struct {
	Prefix    IntegerPrefix
	Suffix    FloatSuffix
	Text      string
	RawSuffix string
}

// StringLiteralValue is the payload of a StringLiteral token, with escape
// sequences already expanded (or, for a raw string, the literal body
// verbatim).
type StringLiteralValue struct {
	Prefix StringPrefix
	Value  string
}

// CharLiteralValue is the payload of a CharLiteral token.
type CharLiteralValue struct {
	Prefix StringPrefix
	Value  rune
}
