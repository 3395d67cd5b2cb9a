package repository

import (
	"context"

	"github.com/unisafe/unisafe-api/internal/domain/entity"
)

// UploadRepository define o porto de persistência para Upload.
type UploadRepository interface {
	Create(ctx context.Context, u *entity.Upload) error
	GetByID(ctx context.Context, id string) (*entity.Upload, error)
	Update(ctx context.Context, u *entity.Upload) error
	List(ctx context.Context, empresaID string, limit, offset int) ([]*entity.Upload, error)
}
