package hash

import (
	"github.com/alexedwards/argon2id"

	customErrors "github.com/akulinin/todo-backend/internal/domain/errors"
)

// Hasher hides the hashing algorithm so it can be swapped without
// touching the auth service.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

type argon2Hasher struct {
	params *argon2id.Params
}

func NewArgon2() Hasher {
	return &argon2Hasher{params: argon2id.DefaultParams}
}

func (h *argon2Hasher) Hash(plaintext string) (string, error) {
	digest, err := argon2id.CreateHash(plaintext, h.params)
	if err != nil {
		return "", customErrors.WrapInternal(err, "hash password")
	}
	return digest, nil
}

// Verify returns false for a mismatch and for a malformed digest; it
// never surfaces an error to the caller.
func (h *argon2Hasher) Verify(plaintext, digest string) bool {
	ok, err := argon2id.ComparePasswordAndHash(plaintext, digest)
	if err != nil {
		return false
	}
	return ok
}
