package repository

import (
	"context"

	"github.com/unisafe/unisafe-api/internal/domain/entity"
)

// EmpregadoFilter filtros de listagem de empregados.
type EmpregadoFilter struct {
	EmpresaID string
	Lotacao   string
	Texto     string // busca em nome e matrícula
	Limit     int
	Offset    int
}

// EmpregadoRepository define o porto de persistência para Empregado.
// CreateBatch roda dentro da transação corrente quando combinado com TxRunner.
type EmpregadoRepository interface {
	Create(ctx context.Context, e *entity.Empregado) error
	GetByID(ctx context.Context, id string) (*entity.Empregado, error)
	List(ctx context.Context, f EmpregadoFilter) ([]*entity.Empregado, int, error)
	DeleteByUpload(ctx context.Context, uploadID string) error
}
