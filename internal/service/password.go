package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. Stored records are "hex(salt):hex(key)"; hex on both
// sides guarantees the delimiter never appears inside either part.
const (
	saltBytes      = 16
	hashIterations = 210_000
	hashKeyBytes   = 32
	hashDelimiter  = ":"
)

var errMalformedHash = errors.New("malformed password hash record")

// hashPassword derives a salted PBKDF2-SHA256 hash for storage.
// Each call draws a fresh random salt, so two hashes of the same
// password differ.
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, hashIterations, hashKeyBytes, sha256.New)
	return hex.EncodeToString(salt) + hashDelimiter + hex.EncodeToString(key), nil
}

// verifyPassword re-derives the hash with the stored salt and compares in
// constant time. Any malformed stored record fails verification rather
// than erroring out separately.
func verifyPassword(stored, password string) error {
	saltHex, keyHex, ok := strings.Cut(stored, hashDelimiter)
	if !ok {
		return errMalformedHash
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return errMalformedHash
	}
	want, err := hex.DecodeString(keyHex)
	if err != nil {
		return errMalformedHash
	}
	if len(salt) == 0 || len(want) == 0 {
		return errMalformedHash
	}
	got := pbkdf2.Key([]byte(password), salt, hashIterations, len(want), sha256.New)
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return errors.New("password mismatch")
	}
	return nil
}
