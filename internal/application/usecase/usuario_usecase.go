package usecase

import (
	"context"
	"time"

	"github.com/unisafe/unisafe-api/internal/application/auditoria"
	"github.com/unisafe/unisafe-api/internal/application/auth"
	"github.com/unisafe/unisafe-api/internal/application/dto"
	"github.com/unisafe/unisafe-api/internal/domain"
	"github.com/unisafe/unisafe-api/internal/domain/entity"
	"github.com/unisafe/unisafe-api/internal/domain/repository"
)

// UsuarioUseCase aplica regras de negócio para usuários.
type UsuarioUseCase struct {
	repo  repository.UsuarioRepository
	audit *auditoria.Recorder
}

// NewUsuarioUseCase constrói o caso de uso com o porto de persistência.
func NewUsuarioUseCase(repo repository.UsuarioRepository, audit *auditoria.Recorder) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo, audit: audit}
}

// GetByID obtém um usuário por ID.
func (uc *UsuarioUseCase) GetByID(id string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, nil
	}
	return auth.ToUsuarioResponse(usuario), nil
}

// Update atualiza nome, role e status de um usuário.
func (uc *UsuarioUseCase) Update(ctx context.Context, executorID, id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Nome != "" {
		usuario.Nome = in.Nome
	}
	if in.Role != "" {
		usuario.Role = in.Role
	}
	if in.Status != "" {
		usuario.Status = in.Status
	}
	usuario.UpdatedAt = time.Now()
	if err := uc.repo.Update(usuario); err != nil {
		return nil, err
	}
	uc.audit.Registrar(ctx, auditoria.Entrada{
		EmpresaID: usuario.EmpresaID, UsuarioID: executorID,
		Acao: entity.AcaoAtualizar, Entidade: "usuario", EntidadeID: usuario.ID,
	})
	return auth.ToUsuarioResponse(usuario), nil
}

// List lista os usuários de uma empresa com paginação.
func (uc *UsuarioUseCase) List(empresaID string, limit, offset int) (*dto.UsuarioListResponse, error) {
	list, err := uc.repo.List(empresaID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUsuarioResponse(u))
	}
	return &dto.UsuarioListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
