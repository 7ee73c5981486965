package authn

import "testing"

func TestSHA256Hasher(t *testing.T) {
	h := NewSHA256Hasher()

	// Digest must match the stored pass_sha256 format bit-for-bit
	if got := h.Hash("admin123"); got != "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9" {
		t.Errorf("unexpected digest: %s", got)
	}

	if h.Hash("a") == h.Hash("b") {
		t.Error("distinct secrets produced the same digest")
	}
	if h.Hash("secret") != h.Hash("secret") {
		t.Error("hash is not deterministic")
	}
}
