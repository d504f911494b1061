package internal

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

type APIKeyRepository interface {
	GetStatusByHash(ctx context.Context, keyHash string) (exists bool, isActive bool, err error)
}

type APIKeyValidator interface {
	Validate(ctx context.Context, rawKey string) (exists bool, isActive bool, err error)
}

type hmacAPIKeyValidator struct {
	repo        APIKeyRepository
	encodingKey string
}

// NewAPIKeyValidator checks operator keys against stored HMAC-SHA256 hashes,
// so raw keys never reach the database.
func NewAPIKeyValidator(repo APIKeyRepository, encodingKey string) APIKeyValidator {
	return &hmacAPIKeyValidator{
		repo:        repo,
		encodingKey: strings.TrimSpace(encodingKey),
	}
}

func (v *hmacAPIKeyValidator) Validate(ctx context.Context, rawKey string) (exists bool, isActive bool, err error) {
	rawKey = strings.TrimSpace(rawKey)
	if rawKey == "" {
		return false, false, nil
	}

	return v.repo.GetStatusByHash(ctx, HashAPIKey(rawKey, v.encodingKey))
}

func HashAPIKey(rawKey, encodingKey string) string {
	mac := hmac.New(sha256.New, []byte(encodingKey))
	_, _ = mac.Write([]byte(rawKey))
	return hex.EncodeToString(mac.Sum(nil))
}
