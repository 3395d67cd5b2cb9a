package repository

import "github.com/unisafe/unisafe-api/internal/domain/entity"

// UsuarioRepository define o porto de persistência para Usuario.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmailAndEmpresa(email, empresaID string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	List(empresaID string, limit, offset int) ([]*entity.Usuario, error)
}
