package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("Passw0rd")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "Passw0rd" {
		t.Fatalf("digest equals plaintext")
	}
	if !h.Verify("Passw0rd", digest) {
		t.Fatalf("Verify rejected the original plaintext")
	}
	if h.Verify("passw0rd", digest) {
		t.Fatalf("Verify accepted a different plaintext")
	}
}

func TestHasher_SaltUniqueness(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same input are identical; salt not applied")
	}
	if !h.Verify("same-input", first) || !h.Verify("same-input", second) {
		t.Fatalf("Verify rejected one of the digests")
	}
}

func TestHasher_MalformedDigest(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$xx$broken"} {
		if h.Verify("anything", digest) {
			t.Fatalf("Verify accepted malformed digest %q", digest)
		}
	}
}

func TestNewHasher_ClampsCost(t *testing.T) {
	h := NewHasher(1000)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected cost clamped to %d, got %d", bcrypt.DefaultCost, h.cost)
	}
}
