// Package secret encrypts configuration values at rest with NaCl secretbox.
package secret

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var (
	ErrInvalidCiphertext = errors.New("invalid ciphertext")
	ErrEmptyKey          = errors.New("encryption key is empty")
)

type Box interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

type box struct {
	key [32]byte
}

// Encrypt returns base64(nonce || sealed).
func (b *box) Encrypt(plaintext string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("Box.Encrypt: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &b.key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (b *box) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("Box.Decrypt: %w", ErrInvalidCiphertext)
	}
	if len(raw) < nonceSize+secretbox.Overhead {
		return "", fmt.Errorf("Box.Decrypt: %w", ErrInvalidCiphertext)
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	opened, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &b.key)
	if !ok {
		return "", fmt.Errorf("Box.Decrypt: %w", ErrInvalidCiphertext)
	}
	return string(opened), nil
}

// NewBox derives a 32 byte key from passphrase with SHA-256.
func NewBox(passphrase string) (Box, error) {
	if passphrase == "" {
		return nil, ErrEmptyKey
	}
	return &box{key: sha256.Sum256([]byte(passphrase))}, nil
}

// Redact hides a value before it leaves the process in an event.
func Redact(value string, encrypted bool) string {
	if encrypted || len(value) <= 8 {
		return "[REDACTED]"
	}
	return value[:3] + "..." + value[len(value)-3:]
}
