// Package password checks the admin credential against its stored bcrypt
// hash. Hashes are produced offline and injected through the environment;
// the service never creates or persists one.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrMismatch = errors.New("password does not match")

func Verify(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}
	return nil
}
