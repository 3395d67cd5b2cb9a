package dto

import "time"

// CampoCanonicoResponse descreve um campo do catálogo para a tela de mapeamento.
type CampoCanonicoResponse struct {
	Field     string `json:"field"`
	Label     string `json:"label"`
	Descricao string `json:"descricao,omitempty"`
	Required  bool   `json:"required"`
	Kind      string `json:"kind"`
}

// UploadCriadoResponse resultado da recepção de um arquivo: cabeçalhos
// detectados, mapeamento sugerido e uma amostra de linhas para revisão.
type UploadCriadoResponse struct {
	UploadID         string                  `json:"uploadId"`
	FileName         string                  `json:"fileName"`
	TotalRows        int                     `json:"totalRows"`
	Headers          []string                `json:"headers"`
	SuggestedMapping map[string]string       `json:"suggestedMapping"`
	Campos           []CampoCanonicoResponse `json:"campos"`
	Amostra          []map[string]string     `json:"amostra"`
}

// SalvarMapeamentoRequest payload de persistência do mapeamento revisado.
type SalvarMapeamentoRequest struct {
	FileName       string            `json:"fileName"`
	ColumnMappings map[string]string `json:"columnMappings"`
}

// ImportResultData contadores e erros da importação.
type ImportResultData struct {
	TotalRecords    int      `json:"totalRecords"`
	ImportedRecords int      `json:"importedRecords"`
	ErrorCount      int      `json:"errorCount"`
	Errors          []string `json:"errors"`
}

// ImportResponse resposta da importação de um lote.
type ImportResponse struct {
	Success bool             `json:"success"`
	Data    ImportResultData `json:"data"`
}

// UploadResponse representação de upload nas listagens.
type UploadResponse struct {
	ID              string            `json:"id"`
	EmpresaID       string            `json:"empresa_id"`
	FileName        string            `json:"file_name"`
	FileSize        int64             `json:"file_size"`
	Status          string            `json:"status"`
	ColumnMappings  map[string]string `json:"column_mappings,omitempty"`
	TotalRecords    int               `json:"total_records"`
	ImportedRecords int               `json:"imported_records"`
	ErrorCount      int               `json:"error_count"`
	Errors          []string          `json:"errors,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// UploadListResponse lista paginada de uploads.
type UploadListResponse struct {
	Items []UploadResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
