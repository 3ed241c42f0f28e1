package utils

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/ssh"
)

// HashContent returns the hex sha256 of data. Photo object keys are derived
// from it so the same upload maps to the same key.
func HashContent(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// GenerateEdDSAKeys creates a key pair and returns the public half encoded the
// way AUTH_MANAGER_PUBLIC_KEY expects it: base64 of an authorized_keys line.
func GenerateEdDSAKeys() (ed25519.PrivateKey, string, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate EdDSA keys: %w", err)
	}

	sshPublicKey, err := ssh.NewPublicKey(publicKey)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create SSH public key: %w", err)
	}

	return privateKey, base64.StdEncoding.EncodeToString(ssh.MarshalAuthorizedKey(sshPublicKey)), nil
}

func ParseEdDSAPublicKey(publicKeyBase64 string) (ed25519.PublicKey, error) {
	if publicKeyBase64 == "" {
		return nil, fmt.Errorf("EdDSA public key is empty")
	}

	publicKeyPEM, err := base64.StdEncoding.DecodeString(publicKeyBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode public key: %w", err)
	}

	sshPublicKey, _, _, _, err := ssh.ParseAuthorizedKey(publicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	cryptoPublicKey, ok := sshPublicKey.(ssh.CryptoPublicKey)
	if !ok {
		return nil, fmt.Errorf("public key does not expose a crypto key")
	}

	ed25519PublicKey, ok := cryptoPublicKey.CryptoPublicKey().(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is not Ed25519 type")
	}

	return ed25519PublicKey, nil
}
