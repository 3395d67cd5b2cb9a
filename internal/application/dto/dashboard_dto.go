package dto

import "time"

// DashboardResponse agregados exibidos no painel inicial.
type DashboardResponse struct {
	Empresas         int            `json:"empresas"`
	Empregados       int            `json:"empregados"`
	Filiados         int            `json:"filiados"`
	Uploads          int            `json:"uploads"`
	MensalidadeMedia string         `json:"mensalidade_media"`
	PorLotacao       map[string]int `json:"por_lotacao"`
	GeradoEm         time.Time      `json:"gerado_em"`
	Cacheado         bool           `json:"cacheado"`
}

// CacheEntryResponse entrada do cache para a tela de administração.
type CacheEntryResponse struct {
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CacheStatusResponse estado atual do cache de agregados.
type CacheStatusResponse struct {
	Entries []CacheEntryResponse `json:"entries"`
}
