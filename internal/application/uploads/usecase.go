// Package uploads implementa o ciclo de vida da importação de planilhas:
// recepção do arquivo, sugestão e validação do mapeamento de colunas e a
// importação transacional do lote.
package uploads

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/unisafe/unisafe-api/internal/application/auditoria"
	"github.com/unisafe/unisafe-api/internal/application/dto"
	"github.com/unisafe/unisafe-api/internal/domain"
	"github.com/unisafe/unisafe-api/internal/domain/entity"
	"github.com/unisafe/unisafe-api/internal/domain/importacao"
	"github.com/unisafe/unisafe-api/internal/domain/repository"
	"github.com/unisafe/unisafe-api/internal/infrastructure/planilha"
	"github.com/unisafe/unisafe-api/pkg/logger"
)

// tamanho da amostra devolvida na recepção para a tela de revisão.
const linhasAmostra = 5

// LeitorPlanilha abstrai a leitura de arquivos de planilha.
type LeitorPlanilha interface {
	Read(fileName string, data []byte) (*planilha.Planilha, error)
}

// TxRunner executa um callback com repositórios atados a uma transação.
// A importação de um lote é atômica: ou todas as linhas aceitas entram, ou
// nenhuma.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		empregadoRepo repository.EmpregadoRepository,
		uploadRepo repository.UploadRepository,
	) error) error
}

// ErroMapeamento carrega as mensagens de validação que bloquearam o
// mapeamento. Desembrulha para domain.ErrMappingInvalid.
type ErroMapeamento struct {
	Erros []string
}

func (e *ErroMapeamento) Error() string { return domain.ErrMappingInvalid.Error() }
func (e *ErroMapeamento) Unwrap() error { return domain.ErrMappingInvalid }

// UseCase orquestra uploads e importações.
type UseCase struct {
	uploads  repository.UploadRepository
	sessions *SessionStore
	leitor   LeitorPlanilha
	tx       TxRunner
	audit    *auditoria.Recorder
	log      *logger.Logger

	importTimeout time.Duration
}

// NewUseCase constrói o caso de uso de uploads.
func NewUseCase(
	uploads repository.UploadRepository,
	sessions *SessionStore,
	leitor LeitorPlanilha,
	tx TxRunner,
	audit *auditoria.Recorder,
	log *logger.Logger,
	importTimeout time.Duration,
) *UseCase {
	return &UseCase{
		uploads:       uploads,
		sessions:      sessions,
		leitor:        leitor,
		tx:            tx,
		audit:         audit,
		log:           log,
		importTimeout: importTimeout,
	}
}

// Criar recebe o arquivo, lê cabeçalhos e linhas, sugere o mapeamento de
// colunas e retém as linhas em sessão para a importação. Devolve os campos do
// catálogo e uma amostra das primeiras linhas para revisão do usuário.
func (uc *UseCase) Criar(ctx context.Context, empresaID, usuarioID, fileName string, data []byte) (*dto.UploadCriadoResponse, error) {
	p, err := uc.leitor.Read(fileName, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFileUnreadable, err)
	}
	if len(p.Rows) == 0 {
		return nil, fmt.Errorf("%w: nenhuma linha de dados", domain.ErrFileUnreadable)
	}

	upload := &entity.Upload{
		ID:           uuid.New().String(),
		EmpresaID:    empresaID,
		UsuarioID:    usuarioID,
		FileName:     fileName,
		FileSize:     int64(len(data)),
		Status:       entity.UploadStatusRecebido,
		TotalRecords: len(p.Rows),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := uc.uploads.Create(ctx, upload); err != nil {
		return nil, err
	}
	uc.sessions.Guardar(empresaID, upload.ID, p.Headers, p.Rows)

	uc.audit.Registrar(ctx, auditoria.Entrada{
		EmpresaID:  empresaID,
		UsuarioID:  usuarioID,
		Acao:       entity.AcaoUpload,
		Entidade:   "upload",
		EntidadeID: upload.ID,
		Detalhes: map[string]any{
			"file_name":  fileName,
			"total_rows": len(p.Rows),
		},
	})

	uc.log.Info().
		Str("upload_id", upload.ID).
		Str("file_name", fileName).
		Int("total_rows", len(p.Rows)).
		Msg("planilha recebida")

	return &dto.UploadCriadoResponse{
		UploadID:         upload.ID,
		FileName:         fileName,
		TotalRows:        len(p.Rows),
		Headers:          p.Headers,
		SuggestedMapping: importacao.SuggestMappings(p.Headers),
		Campos:           camposCatalogo(),
		Amostra:          amostra(p.Headers, p.Rows),
	}, nil
}

// SalvarMapeamento valida e persiste o mapeamento revisado pelo usuário.
// Qualquer erro de validação bloqueia: campo obrigatório não mapeado ou dois
// cabeçalhos apontando para o mesmo campo.
func (uc *UseCase) SalvarMapeamento(ctx context.Context, empresaID, usuarioID, uploadID string, req dto.SalvarMapeamentoRequest) (*dto.UploadResponse, error) {
	upload, err := uc.obterDaEmpresa(ctx, empresaID, uploadID)
	if err != nil {
		return nil, err
	}

	if errs := importacao.ValidateMappings(req.ColumnMappings); len(errs) > 0 {
		return nil, &ErroMapeamento{Erros: errs}
	}

	upload.ColumnMappings = req.ColumnMappings
	upload.Status = entity.UploadStatusMapeado
	upload.UpdatedAt = time.Now()
	if err := uc.uploads.Update(ctx, upload); err != nil {
		return nil, err
	}

	uc.audit.Registrar(ctx, auditoria.Entrada{
		EmpresaID:  empresaID,
		UsuarioID:  usuarioID,
		Acao:       entity.AcaoAtualizar,
		Entidade:   "upload",
		EntidadeID: upload.ID,
		Detalhes:   map[string]any{"campos_mapeados": len(req.ColumnMappings)},
	})

	resp := toUploadResponse(upload)
	return &resp, nil
}

// Importar aplica o mapeamento persistido às linhas retidas em sessão e grava
// o lote numa transação. Reimportar o mesmo upload substitui os registros da
// tentativa anterior. Linhas com falha de parse em campos opcionais entram
// com o campo nulo; linhas sem campo obrigatório são rejeitadas uma a uma e
// relatadas no resultado.
func (uc *UseCase) Importar(ctx context.Context, empresaID, usuarioID, uploadID string) (*dto.ImportResponse, error) {
	upload, err := uc.obterDaEmpresa(ctx, empresaID, uploadID)
	if err != nil {
		return nil, err
	}
	if len(upload.ColumnMappings) == 0 {
		return nil, fmt.Errorf("%w: salve o mapeamento antes de importar", domain.ErrMappingInvalid)
	}
	if errs := importacao.ValidateMappings(upload.ColumnMappings); len(errs) > 0 {
		return nil, &ErroMapeamento{Erros: errs}
	}

	_, rows, ok := uc.sessions.Obter(uploadID)
	if !ok {
		return nil, domain.ErrUploadExpired
	}

	upload.Status = entity.UploadStatusImportando
	upload.UpdatedAt = time.Now()
	if err := uc.uploads.Update(ctx, upload); err != nil {
		return nil, err
	}

	if uc.importTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.importTimeout)
		defer cancel()
	}

	records := importacao.ApplyMapping(rows, upload.ColumnMappings)

	empregados := make([]*entity.Empregado, 0, len(records))
	var erros []string
	for i, rec := range records {
		// +2: a linha 1 do arquivo é o cabeçalho.
		emp, err := paraEmpregado(rec, empresaID, uploadID, i+2)
		if err != nil {
			erros = append(erros, err.Error())
			continue
		}
		empregados = append(empregados, emp)
	}

	upload.TotalRecords = len(records)
	upload.ImportedRecords = len(empregados)
	upload.ErrorCount = len(erros)
	upload.Errors = erros
	switch {
	case len(empregados) == 0:
		upload.Status = entity.UploadStatusErro
	case len(erros) > 0:
		upload.Status = entity.UploadStatusImportadoComErros
	default:
		upload.Status = entity.UploadStatusImportado
	}
	upload.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(
		empregadoRepo repository.EmpregadoRepository,
		uploadRepo repository.UploadRepository,
	) error {
		if err := empregadoRepo.DeleteByUpload(ctx, uploadID); err != nil {
			return err
		}
		for _, emp := range empregados {
			if err := empregadoRepo.Create(ctx, emp); err != nil {
				return err
			}
		}
		return uploadRepo.Update(ctx, upload)
	})
	if err != nil {
		uc.log.Error().Err(err).Str("upload_id", uploadID).Msg("importação abortada")
		upload.Status = entity.UploadStatusErro
		upload.UpdatedAt = time.Now()
		if uerr := uc.uploads.Update(context.WithoutCancel(ctx), upload); uerr != nil {
			uc.log.Warn().Err(uerr).Str("upload_id", uploadID).Msg("falha ao marcar upload com erro")
		}
		return nil, err
	}

	// O lote entrou; as linhas retidas em sessão não servem mais. Em caso de
	// falha a sessão fica, para permitir nova tentativa.
	uc.sessions.Remover(uploadID)

	uc.audit.Registrar(ctx, auditoria.Entrada{
		EmpresaID:  empresaID,
		UsuarioID:  usuarioID,
		Acao:       entity.AcaoImportar,
		Entidade:   "upload",
		EntidadeID: uploadID,
		Detalhes: map[string]any{
			"total_records":    upload.TotalRecords,
			"imported_records": upload.ImportedRecords,
			"error_count":      upload.ErrorCount,
		},
	})

	uc.log.Info().
		Str("upload_id", uploadID).
		Int("imported", upload.ImportedRecords).
		Int("errors", upload.ErrorCount).
		Str("status", upload.Status).
		Msg("importação concluída")

	return &dto.ImportResponse{
		Success: upload.ErrorCount == 0,
		Data: dto.ImportResultData{
			TotalRecords:    upload.TotalRecords,
			ImportedRecords: upload.ImportedRecords,
			ErrorCount:      upload.ErrorCount,
			Errors:          erros,
		},
	}, nil
}

// Listar lista os uploads de uma empresa, mais recentes primeiro.
func (uc *UseCase) Listar(ctx context.Context, empresaID string, page dto.PageRequest) (*dto.UploadListResponse, error) {
	page.DefaultPage()
	list, err := uc.uploads.List(ctx, empresaID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UploadResponse, 0, len(list))
	for _, u := range list {
		items = append(items, toUploadResponse(u))
	}
	return &dto.UploadListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Obter devolve um upload da empresa.
func (uc *UseCase) Obter(ctx context.Context, empresaID, uploadID string) (*dto.UploadResponse, error) {
	upload, err := uc.obterDaEmpresa(ctx, empresaID, uploadID)
	if err != nil {
		return nil, err
	}
	resp := toUploadResponse(upload)
	return &resp, nil
}

// obterDaEmpresa busca o upload e garante que pertence à empresa do chamador.
func (uc *UseCase) obterDaEmpresa(ctx context.Context, empresaID, uploadID string) (*entity.Upload, error) {
	upload, err := uc.uploads.GetByID(ctx, uploadID)
	if err != nil {
		return nil, err
	}
	if upload == nil || upload.EmpresaID != empresaID {
		return nil, domain.ErrNotFound
	}
	return upload, nil
}

func toUploadResponse(u *entity.Upload) dto.UploadResponse {
	return dto.UploadResponse{
		ID:              u.ID,
		EmpresaID:       u.EmpresaID,
		FileName:        u.FileName,
		FileSize:        u.FileSize,
		Status:          u.Status,
		ColumnMappings:  u.ColumnMappings,
		TotalRecords:    u.TotalRecords,
		ImportedRecords: u.ImportedRecords,
		ErrorCount:      u.ErrorCount,
		Errors:          u.Errors,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// camposCatalogo projeta o catálogo canônico para a tela de mapeamento.
func camposCatalogo() []dto.CampoCanonicoResponse {
	campos := make([]dto.CampoCanonicoResponse, 0, len(importacao.Catalog))
	for _, f := range importacao.Catalog {
		campos = append(campos, dto.CampoCanonicoResponse{
			Field:     f.Field,
			Label:     f.Label,
			Descricao: f.Descricao,
			Required:  f.Required,
			Kind:      string(f.Kind),
		})
	}
	return campos
}

// amostra devolve as primeiras linhas como texto, na ordem dos cabeçalhos.
func amostra(headers []string, rows []importacao.RawRow) []map[string]string {
	n := len(rows)
	if n > linhasAmostra {
		n = linhasAmostra
	}
	out := make([]map[string]string, 0, n)
	for _, row := range rows[:n] {
		linha := make(map[string]string, len(headers))
		for _, h := range headers {
			linha[h] = importacao.CoerceString(row[h])
		}
		out = append(out, linha)
	}
	return out
}
