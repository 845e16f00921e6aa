package isa

import "testing"

func TestOpcodeRoundTrip(t *testing.T) {
	for mnemonic, code := range opcodeNames {
		if got := OpcodeFromString(mnemonic); got != uint32(code) {
			t.Fatalf("OpcodeFromString(%q) = %d, want %d", mnemonic, got, code)
		}
		name, ok := OpcodeToString(uint32(code))
		if !ok || name != mnemonic {
			t.Fatalf("OpcodeToString(%d) = (%q, %v), want (%q, true)", code, name, ok, mnemonic)
		}
	}
}

func TestOpcodeGapUnassigned(t *testing.T) {
	if _, ok := OpcodeToString(0x13); ok {
		t.Fatalf("code 0x13 should be the reserved gap, got a mnemonic")
	}
}

func TestOpcodeFromStringUnknown(t *testing.T) {
	if got := OpcodeFromString("nonsense"); got != Unknown {
		t.Fatalf("OpcodeFromString(nonsense) = %#x, want Unknown", got)
	}
}

func TestRegisterRoundTrip(t *testing.T) {
	for mnemonic, code := range registerNames {
		if got := RegisterFromString(mnemonic); got != uint32(code) {
			t.Fatalf("RegisterFromString(%q) = %d, want %d", mnemonic, got, code)
		}
		name, ok := RegisterToString(uint32(code))
		if !ok || name != mnemonic {
			t.Fatalf("RegisterToString(%d) = (%q, %v), want (%q, true)", code, name, ok, mnemonic)
		}
	}
}

func TestTypeRoundTrip(t *testing.T) {
	for mnemonic, code := range typeNames {
		if got := TypeFromString(mnemonic); got != uint32(code) {
			t.Fatalf("TypeFromString(%q) = %d, want %d", mnemonic, got, code)
		}
		name, ok := TypeToString(uint32(code))
		if !ok || name != mnemonic {
			t.Fatalf("TypeToString(%d) = (%q, %v), want (%q, true)", code, name, ok, mnemonic)
		}
	}
}

func TestRegisterToStringUnknownCode(t *testing.T) {
	if _, ok := RegisterToString(Unknown); ok {
		t.Fatalf("RegisterToString(Unknown) should not resolve")
	}
}
