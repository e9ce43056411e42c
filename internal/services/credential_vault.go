package services

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"finhub/internal/providers"

	"golang.org/x/crypto/nacl/secretbox"
)

var (
	ErrSealedCredentialCorrupt = errors.New("sealed credential blob is corrupt")
)

// CredentialVault seals provider credentials with a symmetric key before
// they touch the database. Rows only ever hold the sealed blob; plaintext
// exists in memory for the duration of a fetch.
type CredentialVault struct {
	key [32]byte
}

// NewCredentialVault creates a vault bound to the configured sealing key
func NewCredentialVault(key [32]byte) CredentialVaultInterface {
	return &CredentialVault{key: key}
}

// Seal encrypts the credential map and returns a base64 blob with the
// random nonce prepended.
func (v *CredentialVault) Seal(credentials providers.Credentials) (string, error) {
	plaintext, err := json.Marshal(credentials)
	if err != nil {
		return "", fmt.Errorf("failed to encode credentials: %w", err)
	}

	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], plaintext, &nonce, &v.key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Unseal decrypts a blob produced by Seal
func (v *CredentialVault) Unseal(sealed string) (providers.Credentials, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return nil, ErrSealedCredentialCorrupt
	}
	if len(raw) < 24 {
		return nil, ErrSealedCredentialCorrupt
	}

	var nonce [24]byte
	copy(nonce[:], raw[:24])

	plaintext, ok := secretbox.Open(nil, raw[24:], &nonce, &v.key)
	if !ok {
		return nil, ErrSealedCredentialCorrupt
	}

	var credentials providers.Credentials
	if err := json.Unmarshal(plaintext, &credentials); err != nil {
		return nil, ErrSealedCredentialCorrupt
	}

	return credentials, nil
}
