package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/unisafe/unisafe-api/internal/application/uploads"
	"github.com/unisafe/unisafe-api/internal/domain/repository"
)

// Garante que TxRunner implementa uploads.TxRunner.
var _ uploads.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repos atados à tx e faz Commit ou
// Rollback. Usado pela importação de lotes: ou todas as linhas aceitas entram,
// ou nenhuma.
func (r *TxRunner) Run(ctx context.Context, fn func(
	empregadoRepo repository.EmpregadoRepository,
	uploadRepo repository.UploadRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	empregadoRepo := NewEmpregadoRepository(tx)
	uploadRepo := NewUploadRepository(tx)

	if err := fn(empregadoRepo, uploadRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
