package usecase

import (
	"context"

	"github.com/unisafe/unisafe-api/internal/application/dto"
	"github.com/unisafe/unisafe-api/internal/domain/repository"
)

// AuditUseCase consulta do log de auditoria.
type AuditUseCase struct {
	repo repository.AuditLogRepository
}

// NewAuditUseCase constrói o caso de uso de consulta de auditoria.
func NewAuditUseCase(repo repository.AuditLogRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// List lista as entradas de auditoria de uma empresa.
func (uc *AuditUseCase) List(ctx context.Context, empresaID string, limit, offset int) (*dto.AuditLogListResponse, error) {
	list, err := uc.repo.List(ctx, empresaID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditLogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, dto.AuditLogResponse{
			ID:         l.ID,
			EmpresaID:  l.EmpresaID,
			UsuarioID:  l.UsuarioID,
			Acao:       l.Acao,
			Entidade:   l.Entidade,
			EntidadeID: l.EntidadeID,
			Detalhes:   l.Detalhes,
			CreatedAt:  l.CreatedAt,
		})
	}
	return &dto.AuditLogListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
