package dto

import "time"

// AuditLogResponse entrada do log de auditoria.
type AuditLogResponse struct {
	ID         string         `json:"id"`
	EmpresaID  string         `json:"empresa_id"`
	UsuarioID  string         `json:"usuario_id"`
	Acao       string         `json:"acao"`
	Entidade   string         `json:"entidade"`
	EntidadeID string         `json:"entidade_id"`
	Detalhes   map[string]any `json:"detalhes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// AuditLogListResponse lista paginada de entradas de auditoria.
type AuditLogListResponse struct {
	Items []AuditLogResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
