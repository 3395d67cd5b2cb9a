package entity

import "time"

// Empresa representa uma organização/tenant do sistema.
type Empresa struct {
	ID           string
	Nome         string
	CNPJ         string // CNPJ brasileiro (com ou sem pontuação)
	Endereco     string
	Telefone     string
	Email        string
	BaseSindical string // sindicato ao qual os empregados pertencem
	Status       string // active, suspended, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
