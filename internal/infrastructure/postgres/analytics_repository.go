package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/unisafe/unisafe-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas do dashboard sobre PostgreSQL.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository constrói o adaptador de agregados.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// Totais calcula os agregados do dashboard para uma empresa.
// empresaID vazio agrega o sistema inteiro (visão admin).
func (r *AnalyticsRepo) Totais(ctx context.Context, empresaID string) (*repository.DashboardTotais, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM empresas),
			COUNT(*),
			COUNT(*) FILTER (WHERE filiado),
			(SELECT COUNT(DISTINCT upload_id) FROM empregados WHERE $1 = '' OR empresa_id = $1),
			COALESCE(AVG(valor_mensalidade) FILTER (WHERE filiado), 0)
		FROM empregados
		WHERE $1 = '' OR empresa_id = $1`
	var (
		t     repository.DashboardTotais
		media decimal.Decimal
	)
	if err := r.pool.QueryRow(ctx, query, empresaID).Scan(
		&t.Empresas, &t.Empregados, &t.Filiados, &t.Uploads, &media,
	); err != nil {
		return nil, fmt.Errorf("totais do dashboard: %w", err)
	}
	t.MensalidadeMedia = media.Round(2)
	return &t, nil
}

// EmpregadosPorLotacao conta empregados agrupados por lotação.
func (r *AnalyticsRepo) EmpregadosPorLotacao(ctx context.Context, empresaID string) (map[string]int, error) {
	query := `
		SELECT lotacao, COUNT(*)
		FROM empregados
		WHERE ($1 = '' OR empresa_id = $1) AND lotacao <> ''
		GROUP BY lotacao ORDER BY COUNT(*) DESC`
	rows, err := r.pool.Query(ctx, query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("empregados por lotação: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			lotacao string
			n       int
		)
		if err := rows.Scan(&lotacao, &n); err != nil {
			return nil, fmt.Errorf("scan lotação: %w", err)
		}
		out[lotacao] = n
	}
	return out, rows.Err()
}
