package store

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/jdisla/medioambiente-cli/internal/common"
)

// SealedRepository encrypts values at rest with XChaCha20-Poly1305 before
// handing them to the inner repository. Each value is stored as
// nonce || ciphertext with a fresh random nonce.
//
// Rehydration runs before any password is available, so the key cannot be
// password-derived; it lives in a per-installation key file instead.
type SealedRepository struct {
	inner Repository
	aead  interface {
		Seal(dst, nonce, plaintext, additionalData []byte) []byte
		Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
	}
}

func NewSealedRepository(inner Repository, key []byte) (*SealedRepository, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("init sealing cipher: %w", err)
	}
	return &SealedRepository{inner: inner, aead: aead}, nil
}

// withInner returns a repository sharing this one's sealing cipher but
// reading and writing through inner, e.g. a transactional handle.
func (r *SealedRepository) withInner(inner Repository) *SealedRepository {
	return &SealedRepository{inner: inner, aead: r.aead}
}

func (r *SealedRepository) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := r.inner.Get(ctx, key)
	if err != nil || sealed == nil {
		return nil, err
	}
	if len(sealed) < chacha20poly1305.NonceSizeX {
		return nil, fmt.Errorf("credentials[%s]: sealed value too short", key)
	}

	nonce, ciphertext := sealed[:chacha20poly1305.NonceSizeX], sealed[chacha20poly1305.NonceSizeX:]
	plaintext, err := r.aead.Open(nil, nonce, ciphertext, []byte(key))
	if err != nil {
		return nil, fmt.Errorf("unseal credentials[%s]: %w", key, err)
	}
	return plaintext, nil
}

func (r *SealedRepository) Set(ctx context.Context, key string, value []byte) error {
	nonce := common.GenerateRandByteArray(chacha20poly1305.NonceSizeX)
	sealed := append(nonce, r.aead.Seal(nil, nonce, value, []byte(key))...)
	return r.inner.Set(ctx, key, sealed)
}

func (r *SealedRepository) Delete(ctx context.Context, key string) error {
	return r.inner.Delete(ctx, key)
}

func (r *SealedRepository) Clear(ctx context.Context) error {
	return r.inner.Clear(ctx)
}

// LoadOrCreateKey returns the 32-byte sealing key stored at path, creating
// it with a fresh random key (mode 0600) on first run.
func LoadOrCreateKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err == nil {
		if len(key) != chacha20poly1305.KeySize {
			return nil, fmt.Errorf("key file %s: want %d bytes, got %d", path, chacha20poly1305.KeySize, len(key))
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read key file %s: %w", path, err)
	}

	key = common.GenerateRandByteArray(chacha20poly1305.KeySize)
	if err := os.WriteFile(path, key, 0o600); err != nil {
		return nil, fmt.Errorf("write key file %s: %w", path, err)
	}
	return key, nil
}
