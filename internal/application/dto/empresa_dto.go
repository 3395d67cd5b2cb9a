package dto

import "time"

// CreateEmpresaRequest dados para criação de empresa.
type CreateEmpresaRequest struct {
	Nome         string `json:"nome"`
	CNPJ         string `json:"cnpj"`
	Endereco     string `json:"endereco"`
	Telefone     string `json:"telefone"`
	Email        string `json:"email"`
	BaseSindical string `json:"base_sindical"`
}

// UpdateEmpresaRequest dados para atualização de empresa.
type UpdateEmpresaRequest struct {
	Nome         string `json:"nome"`
	Endereco     string `json:"endereco"`
	Telefone     string `json:"telefone"`
	Email        string `json:"email"`
	BaseSindical string `json:"base_sindical"`
	Status       string `json:"status"`
}

// EmpresaResponse representação de empresa nas respostas.
type EmpresaResponse struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	CNPJ         string    `json:"cnpj"`
	Endereco     string    `json:"endereco"`
	Telefone     string    `json:"telefone"`
	Email        string    `json:"email"`
	BaseSindical string    `json:"base_sindical"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EmpresaListResponse lista paginada de empresas.
type EmpresaListResponse struct {
	Items []EmpresaResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
