package entity

import "time"

// Roles válidos para Usuario.
const (
	RoleAdmin    = "admin"
	RoleGestor   = "gestor"
	RoleConsulta = "consulta"
)

// Usuario representa um usuário do sistema (pertence a uma Empresa).
type Usuario struct {
	ID           string
	EmpresaID    string
	Email        string
	PasswordHash string // hash bcrypt, nunca em claro no domínio após persistir
	Nome         string
	Role         string // admin, gestor, consulta
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
