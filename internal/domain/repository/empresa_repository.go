package repository

import "github.com/unisafe/unisafe-api/internal/domain/entity"

// EmpresaRepository define o porto de persistência para Empresa (DIP).
// A implementação vive em infrastructure.
type EmpresaRepository interface {
	Create(empresa *entity.Empresa) error
	GetByID(id string) (*entity.Empresa, error)
	GetByCNPJ(cnpj string) (*entity.Empresa, error)
	Update(empresa *entity.Empresa) error
	List(limit, offset int) ([]*entity.Empresa, error)
	Delete(id string) error
}
