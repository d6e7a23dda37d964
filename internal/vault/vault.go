// Package vault encrypts bank and e-wallet credentials at rest.
//
// Ciphertexts are AES-256-GCM, stored as "iv:tag:payload" with every part
// hex encoded. The key is derived from a long-lived secret with scrypt and a
// fixed salt, so a given secret always yields the same key. Rotating the
// secret makes every stored ciphertext unreadable.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/scrypt"
)

const (
	ivSize  = 12
	tagSize = 16
	keySize = 32

	separator = ":"

	maskChar   = "*"
	shortMask  = "****"
	visibleLen = 4
)

// salt is application wide and must never change.
var salt = []byte("backoffice-payment-info-vault")

// scrypt cost parameters
const (
	scryptN = 1 << 14
	scryptR = 8
	scryptP = 1
)

var ErrEmptySecret = errors.New("vault secret is empty")

type Vault struct {
	aead cipher.AEAD
}

// New derives the encryption key once; the returned Vault is safe for concurrent use.
func New(secret string) (*Vault, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key, err := scrypt.Key([]byte(secret), salt, scryptN, scryptR, scryptP, keySize)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCMWithNonceSize(block, ivSize)
	if err != nil {
		return nil, err
	}

	return &Vault{aead: aead}, nil
}

func (v *Vault) Encrypt(plaintext string) (string, error) {
	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", err
	}

	sealed := v.aead.Seal(nil, iv, []byte(plaintext), nil)
	payload, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]

	return strings.Join([]string{
		hex.EncodeToString(iv),
		hex.EncodeToString(tag),
		hex.EncodeToString(payload),
	}, separator), nil
}

// Decrypt returns "" when the ciphertext is malformed, was sealed with another
// key or fails authentication. Callers cannot tell that apart from an empty
// plaintext and must treat "" as "could not decrypt".
func (v *Vault) Decrypt(ciphertext string) string {
	parts := strings.Split(ciphertext, separator)
	if len(parts) != 3 {
		return ""
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil || len(iv) != ivSize {
		return ""
	}
	tag, err := hex.DecodeString(parts[1])
	if err != nil || len(tag) != tagSize {
		return ""
	}
	payload, err := hex.DecodeString(parts[2])
	if err != nil {
		return ""
	}

	plaintext, err := v.aead.Open(nil, iv, append(payload, tag...), nil)
	if err != nil {
		return ""
	}
	return string(plaintext)
}

// Mask hides everything but the last four characters.
func Mask(plaintext string) string {
	n := utf8.RuneCountInString(plaintext)
	if n < visibleLen {
		return shortMask
	}
	runes := []rune(plaintext)
	return strings.Repeat(maskChar, n-visibleLen) + string(runes[n-visibleLen:])
}

// Last4 is stored in clear next to the ciphertext for display.
func Last4(plaintext string) string {
	runes := []rune(plaintext)
	if len(runes) <= visibleLen {
		return plaintext
	}
	return string(runes[len(runes)-visibleLen:])
}
