package source

import "testing"

func TestDecodeASCII(t *testing.T) {
	r, n, result := Decode([]byte("A"), 0)
	if result != Success || r != 'A' || n != 1 {
		t.Fatalf("Decode('A') = %v, %v, %v", r, n, result)
	}
}

func TestDecodeMultiByte(t *testing.T) {
	// U+1F600 GRINNING FACE, encoded F0 9F 98 80
	buf := []byte{0xF0, 0x9F, 0x98, 0x80}
	r, n, result := Decode(buf, 0)
	if result != Success || r != 0x1F600 || n != 4 {
		t.Fatalf("Decode(emoji) = %#x, %d, %v", r, n, result)
	}
}

func TestDecodeOverlongRejected(t *testing.T) {
	// C0 80 is an over-long two-byte encoding of NUL.
	r, n, result := Decode([]byte{0xC0, 0x80}, 0)
	if result != SourceIllegal || r != ReplacementChar || n != 1 {
		t.Fatalf("Decode(overlong NUL) = %#x, %d, %v", r, n, result)
	}
}

func TestDecodeSurrogateRejected(t *testing.T) {
	// ED A0 80 encodes U+D800, a surrogate.
	_, _, result := Decode([]byte{0xED, 0xA0, 0x80}, 0)
	if result != SourceIllegal {
		t.Fatalf("Decode(surrogate) result = %v, want SourceIllegal", result)
	}
}

func TestDecodeExhausted(t *testing.T) {
	// Lead byte of a 3-byte sequence with nothing following.
	r, n, result := Decode([]byte{0xE2}, 0)
	if result != SourceExhausted || n != 0 {
		t.Fatalf("Decode(truncated) = %#x, %d, %v", r, n, result)
	}
}

func TestDecodeIllegalLeadByte(t *testing.T) {
	_, n, result := Decode([]byte{0xFF}, 0)
	if result != SourceIllegal || n != 1 {
		t.Fatalf("Decode(0xFF) = %d, %v", n, result)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, cp := range []rune{'A', 0x7F, 0x80, 0x7FF, 0x800, 0xFFFF, 0x10000, 0x10FFFF} {
		buf := make([]byte, 4)
		n, result := Encode(buf, cp)
		if result != Success {
			t.Fatalf("Encode(%#x) result = %v", cp, result)
		}
		r, size, decodeResult := Decode(buf[:n], 0)
		if decodeResult != Success || r != cp || size != n {
			t.Fatalf("round trip for %#x: got %#x, %d, %v", cp, r, size, decodeResult)
		}
	}
}

func TestEncodeNULUsesModifiedUTF8(t *testing.T) {
	buf := make([]byte, 4)
	n, result := Encode(buf, 0)
	if result != Success || n != 2 || buf[0] != 0xC0 || buf[1] != 0x80 {
		t.Fatalf("Encode(0) = %v %v %v, want 2 bytes C0 80", buf[:n], n, result)
	}
	// The decoder does not accept this as a legal form.
	_, _, decodeResult := Decode(buf[:n], 0)
	if decodeResult != SourceIllegal {
		t.Errorf("Decode of modified-UTF8 NUL = %v, want SourceIllegal", decodeResult)
	}
}

func TestEncodeTargetExhausted(t *testing.T) {
	buf := make([]byte, 1)
	_, result := Encode(buf, 0x1F600)
	if result != TargetExhausted {
		t.Fatalf("Encode into 1-byte buffer = %v, want TargetExhausted", result)
	}
}

func TestEncodeSurrogateRejected(t *testing.T) {
	buf := make([]byte, 4)
	_, result := Encode(buf, 0xD800)
	if result != SourceIllegal {
		t.Fatalf("Encode(surrogate) = %v, want SourceIllegal", result)
	}
}

func TestValidateString(t *testing.T) {
	if !ValidateString([]byte("hello, \xf0\x9f\x98\x80")) {
		t.Error("expected valid UTF-8 string to validate")
	}
	if ValidateString([]byte{0xC0, 0x80}) {
		t.Error("expected over-long sequence to fail validation")
	}
	if ValidateString([]byte{0xE2, 0x82}) {
		t.Error("expected truncated sequence to fail validation")
	}
}
