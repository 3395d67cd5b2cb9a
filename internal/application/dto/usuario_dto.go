package dto

import "time"

// RegisterRequest dados de cadastro de usuário.
type RegisterRequest struct {
	EmpresaID string `json:"empresa_id"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Nome      string `json:"nome"`
	Role      string `json:"role"`
}

// LoginRequest credenciais de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT e dados do usuário autenticado.
type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}

// UpdateUsuarioRequest dados para atualização de usuário.
type UpdateUsuarioRequest struct {
	Nome   string `json:"nome"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// UsuarioResponse representação de usuário nas respostas (sem hash de senha).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresa_id"`
	Email     string    `json:"email"`
	Nome      string    `json:"nome"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UsuarioListResponse lista paginada de usuários.
type UsuarioListResponse struct {
	Items []UsuarioResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
