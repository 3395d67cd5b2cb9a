package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("conflito com o estado atual")
	ErrMappingInvalid     = errors.New("mapeamento de colunas inválido")
	ErrUploadExpired      = errors.New("sessão de upload expirada; envie o arquivo novamente")
	ErrFileUnreadable     = errors.New("arquivo de planilha ilegível ou vazio")
)
