package internal

import (
	"context"
	"fmt"
	"strings"
)

type RequestAuditLogger interface {
	LogRequest(ctx context.Context, path string, status int, storeSlug string) error
}

type AuditLogStorage interface {
	Insert(ctx context.Context, path string, status int, storeSlug *string) error
}

func NewStorageAuditLogger(storage AuditLogStorage) *StorageAuditLogger {
	return &StorageAuditLogger{auditLogStorage: storage}
}

// StorageAuditLogger writes one row per storefront request.
type StorageAuditLogger struct {
	auditLogStorage AuditLogStorage
}

func (l *StorageAuditLogger) LogRequest(ctx context.Context, endpoint string, status int, storeSlug string) error {
	p := strings.TrimSpace(endpoint)
	p = strings.Trim(p, "/")
	if p == "" {
		p = "unknown"
	}

	var slug *string
	if s := strings.TrimSpace(storeSlug); s != "" {
		slug = &s
	}

	if err := l.auditLogStorage.Insert(ctx, p, status, slug); err != nil {
		return fmt.Errorf("audit %s: %w", p, err)
	}
	return nil
}
