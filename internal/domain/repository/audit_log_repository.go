package repository

import (
	"context"

	"github.com/unisafe/unisafe-api/internal/domain/entity"
)

// AuditLogRepository define o porto de persistência para o log de auditoria.
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	List(ctx context.Context, empresaID string, limit, offset int) ([]*entity.AuditLog, error)
}
