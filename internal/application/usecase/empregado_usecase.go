package usecase

import (
	"context"
	"time"

	"github.com/unisafe/unisafe-api/internal/application/dto"
	"github.com/unisafe/unisafe-api/internal/domain"
	"github.com/unisafe/unisafe-api/internal/domain/entity"
	"github.com/unisafe/unisafe-api/internal/domain/importacao"
	"github.com/unisafe/unisafe-api/internal/domain/repository"
)

// EmpregadosPDFGenerator porta para a geração do relatório de empregados.
// Implementada pela infraestrutura de PDF.
type EmpregadosPDFGenerator interface {
	GenerateEmpregadosPDF(ctx context.Context, empresa *entity.Empresa, empregados []*entity.Empregado) ([]byte, error)
}

// EmpregadoUseCase consulta de empregados importados. Toda a saída é
// formatada para exibição: datas DD/MM/AAAA, competência MM/AAAA, valores em
// R$ e matrícula sob a política de sigilo para não filiados.
type EmpregadoUseCase struct {
	repo     repository.EmpregadoRepository
	empresas repository.EmpresaRepository
	pdfGen   EmpregadosPDFGenerator
}

// NewEmpregadoUseCase constrói o caso de uso de consulta de empregados.
func NewEmpregadoUseCase(repo repository.EmpregadoRepository, empresas repository.EmpresaRepository, pdfGen EmpregadosPDFGenerator) *EmpregadoUseCase {
	return &EmpregadoUseCase{repo: repo, empresas: empresas, pdfGen: pdfGen}
}

// List lista empregados da empresa com filtros de lotação e busca textual.
func (uc *EmpregadoUseCase) List(ctx context.Context, f repository.EmpregadoFilter) (*dto.EmpregadoListResponse, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpregadoResponse, 0, len(list))
	for _, e := range list {
		items = append(items, ToEmpregadoResponse(e))
	}
	return &dto.EmpregadoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: total},
	}, nil
}

// RelatorioPDF gera o relatório de empregados da empresa em PDF, aplicando os
// mesmos filtros da listagem. O relatório ignora paginação: sai tudo o que o
// filtro alcança.
func (uc *EmpregadoUseCase) RelatorioPDF(ctx context.Context, f repository.EmpregadoFilter) ([]byte, error) {
	empresa, err := uc.empresas.GetByID(f.EmpresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}
	f.Limit = 0
	f.Offset = 0
	list, _, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateEmpregadosPDF(ctx, empresa, list)
}

// GetByID devolve um empregado formatado.
func (uc *EmpregadoUseCase) GetByID(ctx context.Context, id string) (*dto.EmpregadoResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	resp := ToEmpregadoResponse(e)
	return &resp, nil
}

// ToEmpregadoResponse aplica as regras de exibição sobre a entidade.
func ToEmpregadoResponse(e *entity.Empregado) dto.EmpregadoResponse {
	return dto.EmpregadoResponse{
		ID:              e.ID,
		EmpresaID:       e.EmpresaID,
		Mes:             importacao.FormatMesAno(e.Mes),
		SE:              e.SE,
		Lotacao:         e.Lotacao,
		Municipio:       e.Municipio,
		Matricula:       importacao.FormatMatriculaSigilosa(e.Matricula, &e.Filiado),
		Nome:            e.Nome,
		Sexo:            e.Sexo,
		DataNasc:        formatData(e.DataNasc),
		Raca:            e.Raca,
		GrauInstrucao:   e.GrauInstrucao,
		DataAdmissao:    formatData(e.DataAdmissao),
		Cargo:           e.Cargo,
		CargoEsp:        e.CargoEsp,
		CargoNivel:      e.CargoNivel,
		Funcao:          e.Funcao,
		JornadaTrab:     e.JornadaTrab,
		TipoDeficiencia: e.TipoDeficiencia,
		DataAfast:       importacao.FormatDataAfast(e.DataAfast),
		MotivoAfast:     e.MotivoAfast,
		BaseSindical:    e.BaseSindical,
		Filiado:         e.Filiado,
		Mensalidade:     importacao.FormatCurrency(e.ValorMensalidade),

		CreatedAt: e.CreatedAt,
	}
}

func formatData(d *time.Time) string {
	if d == nil || d.IsZero() {
		return ""
	}
	return importacao.FormatDate(*d)
}
