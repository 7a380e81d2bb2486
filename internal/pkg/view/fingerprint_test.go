package view

import "testing"

// The fingerprint is a stable function of token and address.
func TestFingerprintDeterministic(t *testing.T) {
	anonymizer := NewPassthroughAnonymizer()

	first := Fingerprint("token-a", "203.0.113.7", anonymizer)
	second := Fingerprint("token-a", "203.0.113.7", anonymizer)
	if first != second {
		t.Errorf("expected identical fingerprints, got %s vs %s", first, second)
	}
	if len(first) != 64 {
		t.Errorf("expected a 64-char hex digest, got %d chars", len(first))
	}
}

// Changing either component changes the fingerprint.
func TestFingerprintComponents(t *testing.T) {
	anonymizer := NewPassthroughAnonymizer()

	base := Fingerprint("token-a", "203.0.113.7", anonymizer)
	if Fingerprint("token-b", "203.0.113.7", anonymizer) == base {
		t.Error("expected a different token to change the fingerprint")
	}
	if Fingerprint("token-a", "203.0.113.8", anonymizer) == base {
		t.Error("expected a different address to change the fingerprint")
	}
}

// The anonymizer output, not the raw address, enters the fingerprint.
func TestFingerprintAnonymizer(t *testing.T) {
	masked := maskingAnonymizer{}

	withMask := Fingerprint("token-a", "203.0.113.7", masked)
	direct := Fingerprint("token-a", "masked", NewPassthroughAnonymizer())
	if withMask != direct {
		t.Error("expected the anonymized address to be fingerprinted")
	}
}

type maskingAnonymizer struct{}

func (maskingAnonymizer) Anonymize(address string) string {
	return "masked"
}
