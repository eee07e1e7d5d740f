package credstore

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const saltSize = 16

var errSealedTooShort = errors.New("credstore: sealed blob too short")

// deriveKey stretches the store secret into a sealing key with argon2id.
// Parameters follow the RFC 9106 low-memory profile.
func deriveKey(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, chacha20poly1305.KeySize)
}

// seal encrypts a credential with XChaCha20-Poly1305 under a key derived
// from secret and a fresh salt. Blob layout: salt || nonce || ciphertext.
func seal(secret []byte, credential string) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("credstore: salt: %w", err)
	}

	aead, err := chacha20poly1305.NewX(deriveKey(secret, salt))
	if err != nil {
		return nil, fmt.Errorf("credstore: aead: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("credstore: nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(credential)+aead.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	return aead.Seal(blob, nonce, []byte(credential), nil), nil
}

// open decrypts a blob produced by seal.
func open(secret, blob []byte) (string, error) {
	if len(blob) < saltSize+chacha20poly1305.NonceSizeX {
		return "", errSealedTooShort
	}

	salt := blob[:saltSize]
	nonce := blob[saltSize : saltSize+chacha20poly1305.NonceSizeX]
	ciphertext := blob[saltSize+chacha20poly1305.NonceSizeX:]

	aead, err := chacha20poly1305.NewX(deriveKey(secret, salt))
	if err != nil {
		return "", fmt.Errorf("credstore: aead: %w", err)
	}

	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("credstore: open sealed credential: %w", err)
	}
	return string(plain), nil
}
