package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/unisafe/unisafe-api/internal/domain/entity"
	"github.com/unisafe/unisafe-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementação do porto AuditLogRepository sobre PostgreSQL.
type AuditLogRepo struct {
	pool *pgxpool.Pool
}

// NewAuditLogRepository constrói o adaptador do log de auditoria.
func NewAuditLogRepository(pool *pgxpool.Pool) *AuditLogRepo {
	return &AuditLogRepo{pool: pool}
}

// Create grava uma entrada de auditoria. Detalhes viram JSONB.
func (r *AuditLogRepo) Create(ctx context.Context, l *entity.AuditLog) error {
	detalhes := []byte("{}")
	if len(l.Detalhes) > 0 {
		encoded, err := json.Marshal(l.Detalhes)
		if err != nil {
			return fmt.Errorf("encode detalhes: %w", err)
		}
		detalhes = encoded
	}
	query := `
		INSERT INTO audit_logs (id, empresa_id, usuario_id, acao, entidade, entidade_id, detalhes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		l.ID, l.EmpresaID, l.UsuarioID, l.Acao, l.Entidade, l.EntidadeID, detalhes, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List devolve as entradas de auditoria de uma empresa, mais recentes primeiro.
func (r *AuditLogRepo) List(ctx context.Context, empresaID string, limit, offset int) ([]*entity.AuditLog, error) {
	query := `
		SELECT id, empresa_id, usuario_id, acao, entidade, entidade_id, detalhes, created_at
		FROM audit_logs WHERE empresa_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.AuditLog
	for rows.Next() {
		var (
			l        entity.AuditLog
			detalhes []byte
		)
		if err := rows.Scan(&l.ID, &l.EmpresaID, &l.UsuarioID, &l.Acao, &l.Entidade, &l.EntidadeID, &detalhes, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		if len(detalhes) > 0 {
			if err := json.Unmarshal(detalhes, &l.Detalhes); err != nil {
				return nil, fmt.Errorf("decode detalhes: %w", err)
			}
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
