package token

import "testing"

func TestLookupIntegerSuffix(t *testing.T) {
	got, ok := LookupIntegerSuffix("u64")
	if !ok || got != SuffixU64 {
		t.Errorf("LookupIntegerSuffix(\"u64\") = %v, %v; want SuffixU64, true", got, ok)
	}
	if _, ok := LookupIntegerSuffix("nope"); ok {
		t.Error("LookupIntegerSuffix should reject an unrecognized spelling")
	}
}

func TestLookupFloatSuffix(t *testing.T) {
	got, ok := LookupFloatSuffix("f32")
	if !ok || got != SuffixF32 {
		t.Errorf("LookupFloatSuffix(\"f32\") = %v, %v; want SuffixF32, true", got, ok)
	}
	if _, ok := LookupFloatSuffix("f33"); ok {
		t.Error("LookupFloatSuffix should reject an unrecognized spelling")
	}
}

func TestIntegerSuffixString(t *testing.T) {
	if got := SuffixI128.String(); got != "i128" {
		t.Errorf("SuffixI128.String() = %q, want %q", got, "i128")
	}
	if got := IntegerSuffixDefault.String(); got != "Default" {
		t.Errorf("IntegerSuffixDefault.String() = %q, want %q", got, "Default")
	}
}

func TestIntegerPrefixString(t *testing.T) {
	tests := map[IntegerPrefix]string{
		Default: "Default", Binary: "Binary", Octal: "Octal",
		Decimal: "Decimal", Hexadecimal: "Hexadecimal",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(p), got, want)
		}
	}
}

func TestStringPrefixString(t *testing.T) {
	tests := map[StringPrefix]string{
		StringPrefixDefault: "Default", PrefixU8: "u8", PrefixU16: "u16", PrefixU32: "u32",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(p), got, want)
		}
	}
}
