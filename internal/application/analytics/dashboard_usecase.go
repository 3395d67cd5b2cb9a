// Package analytics monta os agregados do dashboard, servidos de um cache em
// memória com TTL para poupar as consultas de COUNT em listas grandes.
package analytics

import (
	"context"
	"time"

	"github.com/unisafe/unisafe-api/internal/application/auditoria"
	"github.com/unisafe/unisafe-api/internal/application/dto"
	"github.com/unisafe/unisafe-api/internal/domain/entity"
	"github.com/unisafe/unisafe-api/internal/domain/importacao"
	"github.com/unisafe/unisafe-api/internal/domain/repository"
	"github.com/unisafe/unisafe-api/internal/infrastructure/memcache"
)

// DashboardUseCase calcula (ou serve do cache) os agregados do painel.
type DashboardUseCase struct {
	repo  repository.AnalyticsRepository
	cache *memcache.Store
	audit *auditoria.Recorder
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(repo repository.AnalyticsRepository, cache *memcache.Store, audit *auditoria.Recorder) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, cache: cache, audit: audit}
}

// Dashboard devolve os agregados de uma empresa (ou globais com empresaID
// vazio). Responde do cache quando a entrada ainda é válida.
func (uc *DashboardUseCase) Dashboard(ctx context.Context, empresaID string) (*dto.DashboardResponse, error) {
	key := "dashboard:" + empresaID
	if v, ok := uc.cache.Get(key); ok {
		if cached, ok := v.(dto.DashboardResponse); ok {
			out := cached
			out.Cacheado = true
			return &out, nil
		}
	}

	totais, err := uc.repo.Totais(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	porLotacao, err := uc.repo.EmpregadosPorLotacao(ctx, empresaID)
	if err != nil {
		return nil, err
	}

	resp := dto.DashboardResponse{
		Empresas:         totais.Empresas,
		Empregados:       totais.Empregados,
		Filiados:         totais.Filiados,
		Uploads:          totais.Uploads,
		MensalidadeMedia: importacao.FormatCurrency(totais.MensalidadeMedia),
		PorLotacao:       porLotacao,
		GeradoEm:         time.Now(),
	}
	uc.cache.Set(key, resp)
	return &resp, nil
}

// CacheStatus lista as entradas vivas do cache (tela de administração).
func (uc *DashboardUseCase) CacheStatus() *dto.CacheStatusResponse {
	entries := uc.cache.Entries()
	out := &dto.CacheStatusResponse{Entries: make([]dto.CacheEntryResponse, 0, len(entries))}
	for _, e := range entries {
		out.Entries = append(out.Entries, dto.CacheEntryResponse{Key: e.Key, ExpiresAt: e.ExpiresAt})
	}
	return out
}

// LimparCache esvazia o cache de agregados e audita a ação.
func (uc *DashboardUseCase) LimparCache(ctx context.Context, empresaID, usuarioID string) int {
	n := uc.cache.Clear()
	uc.audit.Registrar(ctx, auditoria.Entrada{
		EmpresaID: empresaID, UsuarioID: usuarioID,
		Acao: entity.AcaoLimparCache, Entidade: "cache",
		Detalhes: map[string]any{"entradas_removidas": n},
	})
	return n
}
