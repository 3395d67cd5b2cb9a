package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardTotais agregados exibidos no dashboard.
type DashboardTotais struct {
	Empresas         int
	Empregados       int
	Filiados         int
	Uploads          int
	MensalidadeMedia decimal.Decimal
}

// AnalyticsRepository consultas agregadas (somente leitura).
type AnalyticsRepository interface {
	Totais(ctx context.Context, empresaID string) (*DashboardTotais, error)
	EmpregadosPorLotacao(ctx context.Context, empresaID string) (map[string]int, error)
}
