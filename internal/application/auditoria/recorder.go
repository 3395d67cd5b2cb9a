// Package auditoria centraliza o registro de trilha de auditoria das
// operações mutantes (CRUD, uploads, importações, limpeza de cache).
package auditoria

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/unisafe/unisafe-api/internal/domain/entity"
	"github.com/unisafe/unisafe-api/internal/domain/repository"
	"github.com/unisafe/unisafe-api/pkg/logger"
)

// Entrada descreve um evento auditável.
type Entrada struct {
	EmpresaID  string
	UsuarioID  string
	Acao       string
	Entidade   string
	EntidadeID string
	Detalhes   map[string]any
}

// Recorder grava entradas de auditoria. Falha de auditoria nunca derruba a
// operação de negócio: o erro é logado e engolido.
type Recorder struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewRecorder constrói o recorder.
func NewRecorder(repo repository.AuditLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Registrar persiste a entrada com timestamp de agora.
func (r *Recorder) Registrar(ctx context.Context, e Entrada) {
	if r == nil || r.repo == nil {
		return
	}
	err := r.repo.Create(ctx, &entity.AuditLog{
		ID:         uuid.New().String(),
		EmpresaID:  e.EmpresaID,
		UsuarioID:  e.UsuarioID,
		Acao:       e.Acao,
		Entidade:   e.Entidade,
		EntidadeID: e.EntidadeID,
		Detalhes:   e.Detalhes,
		CreatedAt:  time.Now(),
	})
	if err != nil && r.log != nil {
		r.log.Warn().Err(err).
			Str("acao", e.Acao).
			Str("entidade", e.Entidade).
			Msg("falha ao gravar auditoria")
	}
}
