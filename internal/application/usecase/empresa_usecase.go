package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/unisafe/unisafe-api/internal/application/auditoria"
	"github.com/unisafe/unisafe-api/internal/application/dto"
	"github.com/unisafe/unisafe-api/internal/domain"
	"github.com/unisafe/unisafe-api/internal/domain/entity"
	"github.com/unisafe/unisafe-api/internal/domain/repository"
)

// EmpresaUseCase aplica regras de negócio para empresas.
type EmpresaUseCase struct {
	repo  repository.EmpresaRepository
	audit *auditoria.Recorder
}

// NewEmpresaUseCase constrói o caso de uso com o porto de persistência.
func NewEmpresaUseCase(repo repository.EmpresaRepository, audit *auditoria.Recorder) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo, audit: audit}
}

// Create cria uma nova empresa. Gera ID e status inicial.
// Devolve domain.ErrDuplicate se o CNPJ já existir.
func (uc *EmpresaUseCase) Create(ctx context.Context, usuarioID string, in dto.CreateEmpresaRequest) (*dto.EmpresaResponse, error) {
	existing, _ := uc.repo.GetByCNPJ(in.CNPJ)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	empresa := &entity.Empresa{
		ID:           uuid.New().String(),
		Nome:         in.Nome,
		CNPJ:         in.CNPJ,
		Endereco:     in.Endereco,
		Telefone:     in.Telefone,
		Email:        in.Email,
		BaseSindical: in.BaseSindical,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(empresa); err != nil {
		return nil, err
	}
	uc.audit.Registrar(ctx, auditoria.Entrada{
		EmpresaID: empresa.ID, UsuarioID: usuarioID,
		Acao: entity.AcaoCriar, Entidade: "empresa", EntidadeID: empresa.ID,
		Detalhes: map[string]any{"nome": empresa.Nome, "cnpj": empresa.CNPJ},
	})
	return entityToEmpresaResponse(empresa), nil
}

// GetByID obtém uma empresa por ID.
func (uc *EmpresaUseCase) GetByID(id string) (*dto.EmpresaResponse, error) {
	empresa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, nil
	}
	return entityToEmpresaResponse(empresa), nil
}

// Update atualiza os dados cadastrais de uma empresa.
func (uc *EmpresaUseCase) Update(ctx context.Context, usuarioID, id string, in dto.UpdateEmpresaRequest) (*dto.EmpresaResponse, error) {
	empresa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nome != "" {
		empresa.Nome = in.Nome
	}
	if in.Endereco != "" {
		empresa.Endereco = in.Endereco
	}
	if in.Telefone != "" {
		empresa.Telefone = in.Telefone
	}
	if in.Email != "" {
		empresa.Email = in.Email
	}
	if in.BaseSindical != "" {
		empresa.BaseSindical = in.BaseSindical
	}
	if in.Status != "" {
		empresa.Status = in.Status
	}
	empresa.UpdatedAt = time.Now()
	if err := uc.repo.Update(empresa); err != nil {
		return nil, err
	}
	uc.audit.Registrar(ctx, auditoria.Entrada{
		EmpresaID: empresa.ID, UsuarioID: usuarioID,
		Acao: entity.AcaoAtualizar, Entidade: "empresa", EntidadeID: empresa.ID,
	})
	return entityToEmpresaResponse(empresa), nil
}

// List lista empresas com paginação.
func (uc *EmpresaUseCase) List(limit, offset int) (*dto.EmpresaListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpresaResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *entityToEmpresaResponse(e))
	}
	return &dto.EmpresaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete remove uma empresa.
func (uc *EmpresaUseCase) Delete(ctx context.Context, usuarioID, id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.audit.Registrar(ctx, auditoria.Entrada{
		EmpresaID: id, UsuarioID: usuarioID,
		Acao: entity.AcaoExcluir, Entidade: "empresa", EntidadeID: id,
	})
	return nil
}

func entityToEmpresaResponse(e *entity.Empresa) *dto.EmpresaResponse {
	if e == nil {
		return nil
	}
	return &dto.EmpresaResponse{
		ID:           e.ID,
		Nome:         e.Nome,
		CNPJ:         e.CNPJ,
		Endereco:     e.Endereco,
		Telefone:     e.Telefone,
		Email:        e.Email,
		BaseSindical: e.BaseSindical,
		Status:       e.Status,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
