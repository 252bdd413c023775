package hash

import "testing"

func TestHashVerify(t *testing.T) {
	h := NewArgon2()

	d1, err := h.Hash("StrongPass1!")
	if err != nil {
		t.Fatal(err)
	}
	d2, err := h.Hash("StrongPass1!")
	if err != nil {
		t.Fatal(err)
	}
	if d1 == d2 {
		t.Fatal("two hashes of the same input must differ (salt)")
	}
	if !h.Verify("StrongPass1!", d1) || !h.Verify("StrongPass1!", d2) {
		t.Fatal("both digests must verify against the original plaintext")
	}
	if h.Verify("WrongPass1!", d1) {
		t.Fatal("wrong password must not verify")
	}
}

func TestVerifyMalformedDigest(t *testing.T) {
	h := NewArgon2()
	if h.Verify("whatever", "not-a-digest") {
		t.Fatal("malformed digest must verify as false")
	}
	if h.Verify("whatever", "") {
		t.Fatal("empty digest must verify as false")
	}
}
