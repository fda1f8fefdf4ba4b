package secure

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// sealedPrefix marks values written by a Sealer so plaintext left over from
// an unsealed store is still readable.
const sealedPrefix = "sealed:v1:"

var ErrOpen = errors.New("cannot open sealed value")

// Sealer encrypts short values (tokens, user data) before they reach disk.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer derives a XChaCha20-Poly1305 key from secret with HKDF-SHA256.
func NewSealer(secret string) (*Sealer, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("sealer secret is required")
	}

	h := hkdf.New(sha256.New, []byte(secret), nil, []byte("room-booking/session-store"))
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	return &Sealer{aead: aead}, nil
}

// Seal returns a printable ciphertext bound to name, so a value cannot be
// swapped under another key.
func (s *Sealer) Seal(name, plaintext string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	out := s.aead.Seal(nonce, nonce, []byte(plaintext), []byte(name))
	return sealedPrefix + base64.RawStdEncoding.EncodeToString(out), nil
}

// Open reverses Seal. Values without the sealed prefix are returned as-is.
func (s *Sealer) Open(name, value string) (string, error) {
	if !IsSealed(value) {
		return value, nil
	}

	raw, err := base64.RawStdEncoding.DecodeString(strings.TrimPrefix(value, sealedPrefix))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpen, err)
	}
	if len(raw) < s.aead.NonceSize() {
		return "", fmt.Errorf("%w: value too short", ErrOpen)
	}

	nonce, ciphertext := raw[:s.aead.NonceSize()], raw[s.aead.NonceSize():]
	plain, err := s.aead.Open(nil, nonce, ciphertext, []byte(name))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpen, err)
	}
	return string(plain), nil
}

func IsSealed(value string) bool {
	return strings.HasPrefix(value, sealedPrefix)
}
