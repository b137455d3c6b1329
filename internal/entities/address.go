package entities

import (
	"crypto/ed25519"
	"encoding/hex"
)

// Address — hex-представление ed25519 публичного ключа (32 байта).
type Address string

func (a Address) String() string {
	return string(a)
}

func (a Address) Bytes() ([]byte, error) {
	raw, err := hex.DecodeString(string(a))
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (a Address) IsValid() bool {
	raw, err := a.Bytes()
	if err != nil {
		return false
	}
	return len(raw) == ed25519.PublicKeySize
}

// Verify проверяет подпись ed25519 над message.
func (a Address) Verify(message, signature []byte) bool {
	raw, err := a.Bytes()
	if err != nil || len(raw) != ed25519.PublicKeySize {
		return false
	}
	if len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(raw), message, signature)
}

const HashSize = 32

// Hash — hex-представление 32-байтового хеша полезной нагрузки.
type Hash string

func (h Hash) String() string {
	return string(h)
}

func (h Hash) IsValid() bool {
	raw, err := hex.DecodeString(string(h))
	if err != nil {
		return false
	}
	return len(raw) == HashSize
}

// IsZero: нулевой хеш не допускается как подтверждение.
func (h Hash) IsZero() bool {
	raw, err := hex.DecodeString(string(h))
	if err != nil {
		return false
	}
	for _, b := range raw {
		if b != 0 {
			return false
		}
	}
	return true
}
