package uploads_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unisafe/unisafe-api/internal/application/auditoria"
	"github.com/unisafe/unisafe-api/internal/application/dto"
	"github.com/unisafe/unisafe-api/internal/application/uploads"
	"github.com/unisafe/unisafe-api/internal/domain"
	"github.com/unisafe/unisafe-api/internal/domain/entity"
	"github.com/unisafe/unisafe-api/internal/domain/importacao"
	"github.com/unisafe/unisafe-api/internal/domain/repository"
	"github.com/unisafe/unisafe-api/internal/infrastructure/planilha"
	"github.com/unisafe/unisafe-api/pkg/logger"
)

type fakeUploadRepo struct {
	itens map[string]*entity.Upload
}

func newFakeUploadRepo() *fakeUploadRepo {
	return &fakeUploadRepo{itens: make(map[string]*entity.Upload)}
}

func (r *fakeUploadRepo) Create(_ context.Context, u *entity.Upload) error {
	c := *u
	r.itens[u.ID] = &c
	return nil
}

func (r *fakeUploadRepo) GetByID(_ context.Context, id string) (*entity.Upload, error) {
	u, ok := r.itens[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (r *fakeUploadRepo) Update(_ context.Context, u *entity.Upload) error {
	if _, ok := r.itens[u.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *u
	r.itens[u.ID] = &c
	return nil
}

func (r *fakeUploadRepo) List(_ context.Context, empresaID string, _, _ int) ([]*entity.Upload, error) {
	var out []*entity.Upload
	for _, u := range r.itens {
		if u.EmpresaID == empresaID {
			c := *u
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeEmpregadoRepo struct {
	criados   []*entity.Empregado
	deletados []string
}

func (r *fakeEmpregadoRepo) Create(_ context.Context, e *entity.Empregado) error {
	r.criados = append(r.criados, e)
	return nil
}

func (r *fakeEmpregadoRepo) GetByID(context.Context, string) (*entity.Empregado, error) {
	return nil, domain.ErrNotFound
}

func (r *fakeEmpregadoRepo) List(context.Context, repository.EmpregadoFilter) ([]*entity.Empregado, int, error) {
	return nil, 0, nil
}

func (r *fakeEmpregadoRepo) DeleteByUpload(_ context.Context, uploadID string) error {
	r.deletados = append(r.deletados, uploadID)
	return nil
}

type fakeTxRunner struct {
	empregados *fakeEmpregadoRepo
	uploads    *fakeUploadRepo
	falha      error
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.EmpregadoRepository, repository.UploadRepository) error) error {
	if t.falha != nil {
		return t.falha
	}
	return fn(t.empregados, t.uploads)
}

type fakeLeitor struct {
	planilha *planilha.Planilha
	err      error
}

func (l *fakeLeitor) Read(string, []byte) (*planilha.Planilha, error) {
	return l.planilha, l.err
}

type fakeAuditRepo struct {
	acoes []string
}

func (r *fakeAuditRepo) Create(_ context.Context, l *entity.AuditLog) error {
	r.acoes = append(r.acoes, l.Acao)
	return nil
}

func (r *fakeAuditRepo) List(context.Context, string, int, int) ([]*entity.AuditLog, error) {
	return nil, nil
}

type ambiente struct {
	uc         *uploads.UseCase
	uploads    *fakeUploadRepo
	empregados *fakeEmpregadoRepo
	audit      *fakeAuditRepo
}

func novoAmbiente(t *testing.T, p *planilha.Planilha, errLeitura error) *ambiente {
	t.Helper()
	upRepo := newFakeUploadRepo()
	empRepo := &fakeEmpregadoRepo{}
	auditRepo := &fakeAuditRepo{}
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	uc := uploads.NewUseCase(
		upRepo,
		uploads.NewSessionStore(time.Hour),
		&fakeLeitor{planilha: p, err: errLeitura},
		&fakeTxRunner{empregados: empRepo, uploads: upRepo},
		auditoria.NewRecorder(auditRepo, log),
		log,
		time.Minute,
	)
	return &ambiente{uc: uc, uploads: upRepo, empregados: empRepo, audit: auditRepo}
}

func planilhaExemplo() *planilha.Planilha {
	headers := []string{"MES", "MATRICULA", "NOME", "DATA NASCIMENTO", "FILIADO", "VALOR MENSALIDADE"}
	return &planilha.Planilha{
		Headers: headers,
		Rows: []importacao.RawRow{
			{"MES": "202403", "MATRICULA": "12345678", "NOME": "Maria Souza", "DATA NASCIMENTO": "02/07/1983", "FILIADO": "S", "VALOR MENSALIDADE": "15,50"},
			{"MES": "202403", "MATRICULA": "87654321", "NOME": "João Lima", "DATA NASCIMENTO": float64(45657), "FILIADO": "N", "VALOR MENSALIDADE": "R$ 1.234,56"},
			{"MES": "202403", "MATRICULA": "11112222", "NOME": "", "DATA NASCIMENTO": "01/01/1990", "FILIADO": "S", "VALOR MENSALIDADE": "10,00"},
		},
	}
}

func TestCriar_SugereMapeamentoEGuardaUpload(t *testing.T) {
	amb := novoAmbiente(t, planilhaExemplo(), nil)

	resp, err := amb.uc.Criar(context.Background(), "emp-1", "usr-1", "folha.xlsx", []byte("dados"))
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalRows)
	assert.Equal(t, "folha.xlsx", resp.FileName)
	assert.Equal(t, "mes", resp.SuggestedMapping["MES"])
	assert.Equal(t, "matricula", resp.SuggestedMapping["MATRICULA"])
	assert.Equal(t, "nome", resp.SuggestedMapping["NOME"])
	assert.Equal(t, "data_nasc", resp.SuggestedMapping["DATA NASCIMENTO"])
	assert.Len(t, resp.Campos, len(importacao.Catalog))
	assert.Len(t, resp.Amostra, 3)
	assert.Equal(t, "Maria Souza", resp.Amostra[0]["NOME"])

	salvo, err := amb.uploads.GetByID(context.Background(), resp.UploadID)
	require.NoError(t, err)
	assert.Equal(t, entity.UploadStatusRecebido, salvo.Status)
	assert.Contains(t, amb.audit.acoes, entity.AcaoUpload)
}

func TestCriar_ArquivoIlegivel(t *testing.T) {
	amb := novoAmbiente(t, nil, errors.New("formato corrompido"))

	_, err := amb.uc.Criar(context.Background(), "emp-1", "usr-1", "folha.xlsx", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrFileUnreadable)
}

func TestCriar_PlanilhaSemLinhas(t *testing.T) {
	amb := novoAmbiente(t, &planilha.Planilha{Headers: []string{"NOME"}}, nil)

	_, err := amb.uc.Criar(context.Background(), "emp-1", "usr-1", "folha.csv", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrFileUnreadable)
}

func TestSalvarMapeamento_PersisteEMudaStatus(t *testing.T) {
	amb := novoAmbiente(t, planilhaExemplo(), nil)
	criado, err := amb.uc.Criar(context.Background(), "emp-1", "usr-1", "folha.xlsx", []byte("x"))
	require.NoError(t, err)

	resp, err := amb.uc.SalvarMapeamento(context.Background(), "emp-1", "usr-1", criado.UploadID, dto.SalvarMapeamentoRequest{
		ColumnMappings: criado.SuggestedMapping,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.UploadStatusMapeado, resp.Status)
	assert.Equal(t, "mes", resp.ColumnMappings["MES"])
}

func TestSalvarMapeamento_BloqueiaObrigatorioNaoMapeado(t *testing.T) {
	amb := novoAmbiente(t, planilhaExemplo(), nil)
	criado, err := amb.uc.Criar(context.Background(), "emp-1", "usr-1", "folha.xlsx", []byte("x"))
	require.NoError(t, err)

	_, err = amb.uc.SalvarMapeamento(context.Background(), "emp-1", "usr-1", criado.UploadID, dto.SalvarMapeamentoRequest{
		ColumnMappings: map[string]string{"MES": "mes", "MATRICULA": "matricula"},
	})
	require.ErrorIs(t, err, domain.ErrMappingInvalid)

	var em *uploads.ErroMapeamento
	require.ErrorAs(t, err, &em)
	assert.Contains(t, em.Erros, "Campo obrigatório 'Nome' não foi mapeado")

	salvo, err := amb.uploads.GetByID(context.Background(), criado.UploadID)
	require.NoError(t, err)
	assert.Equal(t, entity.UploadStatusRecebido, salvo.Status, "mapeamento inválido não deve ser persistido")
}

func TestSalvarMapeamento_UploadDeOutraEmpresa(t *testing.T) {
	amb := novoAmbiente(t, planilhaExemplo(), nil)
	criado, err := amb.uc.Criar(context.Background(), "emp-1", "usr-1", "folha.xlsx", []byte("x"))
	require.NoError(t, err)

	_, err = amb.uc.SalvarMapeamento(context.Background(), "emp-2", "usr-9", criado.UploadID, dto.SalvarMapeamentoRequest{
		ColumnMappings: criado.SuggestedMapping,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestImportar_LoteComLinhaRejeitada(t *testing.T) {
	amb := novoAmbiente(t, planilhaExemplo(), nil)
	ctx := context.Background()

	criado, err := amb.uc.Criar(ctx, "emp-1", "usr-1", "folha.xlsx", []byte("x"))
	require.NoError(t, err)
	_, err = amb.uc.SalvarMapeamento(ctx, "emp-1", "usr-1", criado.UploadID, dto.SalvarMapeamentoRequest{
		ColumnMappings: criado.SuggestedMapping,
	})
	require.NoError(t, err)

	resp, err := amb.uc.Importar(ctx, "emp-1", "usr-1", criado.UploadID)
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, 3, resp.Data.TotalRecords)
	assert.Equal(t, 2, resp.Data.ImportedRecords)
	assert.Equal(t, 1, resp.Data.ErrorCount)
	require.Len(t, resp.Data.Errors, 1)
	assert.Contains(t, resp.Data.Errors[0], "Linha 4")
	assert.Contains(t, resp.Data.Errors[0], "Nome")

	require.Len(t, amb.empregados.criados, 2)
	assert.Equal(t, []string{criado.UploadID}, amb.empregados.deletados)

	maria := amb.empregados.criados[0]
	assert.Equal(t, "Maria Souza", maria.Nome)
	assert.True(t, maria.Filiado)
	require.NotNil(t, maria.DataNasc)
	assert.Equal(t, time.Date(1983, 7, 2, 0, 0, 0, 0, time.UTC), *maria.DataNasc)
	assert.True(t, maria.ValorMensalidade.Equal(decimal.RequireFromString("15.50")))

	joao := amb.empregados.criados[1]
	assert.False(t, joao.Filiado)
	require.NotNil(t, joao.DataNasc, "serial Excel deve ser aceito em campo de data")
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), *joao.DataNasc)
	assert.True(t, joao.ValorMensalidade.Equal(decimal.RequireFromString("1234.56")))

	salvo, err := amb.uploads.GetByID(ctx, criado.UploadID)
	require.NoError(t, err)
	assert.Equal(t, entity.UploadStatusImportadoComErros, salvo.Status)
	assert.Equal(t, 2, salvo.ImportedRecords)
	assert.Contains(t, amb.audit.acoes, entity.AcaoImportar)
}

func TestImportar_SemMapeamentoSalvo(t *testing.T) {
	amb := novoAmbiente(t, planilhaExemplo(), nil)
	ctx := context.Background()

	criado, err := amb.uc.Criar(ctx, "emp-1", "usr-1", "folha.xlsx", []byte("x"))
	require.NoError(t, err)

	_, err = amb.uc.Importar(ctx, "emp-1", "usr-1", criado.UploadID)
	assert.ErrorIs(t, err, domain.ErrMappingInvalid)
}

func TestImportar_SessaoExpirada(t *testing.T) {
	amb := novoAmbiente(t, planilhaExemplo(), nil)
	ctx := context.Background()

	// Upload com mapeamento salvo, mas sem sessão retida (outro processo, ou TTL vencido).
	u := &entity.Upload{
		ID:        "up-orfao",
		EmpresaID: "emp-1",
		Status:    entity.UploadStatusMapeado,
		ColumnMappings: map[string]string{
			"MES": "mes", "MATRICULA": "matricula", "NOME": "nome",
		},
	}
	require.NoError(t, amb.uploads.Create(ctx, u))

	_, err := amb.uc.Importar(ctx, "emp-1", "usr-1", "up-orfao")
	assert.ErrorIs(t, err, domain.ErrUploadExpired)
}

func TestImportar_FalhaDeTransacaoMarcaErro(t *testing.T) {
	upRepo := newFakeUploadRepo()
	empRepo := &fakeEmpregadoRepo{}
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	uc := uploads.NewUseCase(
		upRepo,
		uploads.NewSessionStore(time.Hour),
		&fakeLeitor{planilha: planilhaExemplo()},
		&fakeTxRunner{empregados: empRepo, uploads: upRepo, falha: errors.New("conexão perdida")},
		auditoria.NewRecorder(&fakeAuditRepo{}, log),
		log,
		time.Minute,
	)
	ctx := context.Background()

	criado, err := uc.Criar(ctx, "emp-1", "usr-1", "folha.xlsx", []byte("x"))
	require.NoError(t, err)
	_, err = uc.SalvarMapeamento(ctx, "emp-1", "usr-1", criado.UploadID, dto.SalvarMapeamentoRequest{
		ColumnMappings: criado.SuggestedMapping,
	})
	require.NoError(t, err)

	_, err = uc.Importar(ctx, "emp-1", "usr-1", criado.UploadID)
	require.Error(t, err)

	salvo, err := upRepo.GetByID(ctx, criado.UploadID)
	require.NoError(t, err)
	assert.Equal(t, entity.UploadStatusErro, salvo.Status)
}
