package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/unisafe/unisafe-api/internal/domain/entity"
	"github.com/unisafe/unisafe-api/internal/domain/repository"
)

var _ repository.UploadRepository = (*UploadRepo)(nil)

// UploadRepo implementação do porto UploadRepository sobre PostgreSQL.
// O mapeamento de colunas e as mensagens de erro são JSONB.
type UploadRepo struct {
	db DB
}

// NewUploadRepository constrói o adaptador; aceita pool ou transação.
func NewUploadRepository(db DB) *UploadRepo {
	return &UploadRepo{db: db}
}

const uploadCols = `id, empresa_id, usuario_id, file_name, file_size, status,
	column_mappings, total_records, imported_records, error_count, errors, created_at, updated_at`

// Create persiste um novo upload.
func (r *UploadRepo) Create(ctx context.Context, u *entity.Upload) error {
	mappings, errs, err := marshalUpload(u)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO uploads (` + uploadCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.db.Exec(ctx, query,
		u.ID, u.EmpresaID, u.UsuarioID, u.FileName, u.FileSize, u.Status,
		mappings, u.TotalRecords, u.ImportedRecords, u.ErrorCount, errs,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert upload: %w", err)
	}
	return nil
}

// GetByID obtém um upload por ID.
func (r *UploadRepo) GetByID(ctx context.Context, id string) (*entity.Upload, error) {
	query := `SELECT ` + uploadCols + ` FROM uploads WHERE id = $1`
	u, err := scanUpload(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get upload: %w", err)
	}
	return u, nil
}

// Update grava mapeamento, status e contadores de progresso do upload.
func (r *UploadRepo) Update(ctx context.Context, u *entity.Upload) error {
	mappings, errs, err := marshalUpload(u)
	if err != nil {
		return err
	}
	query := `
		UPDATE uploads SET status = $2, column_mappings = $3, total_records = $4,
			imported_records = $5, error_count = $6, errors = $7, updated_at = $8
		WHERE id = $1`
	_, err = r.db.Exec(ctx, query,
		u.ID, u.Status, mappings, u.TotalRecords, u.ImportedRecords, u.ErrorCount, errs, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update upload: %w", err)
	}
	return nil
}

// List devolve os uploads de uma empresa, mais recentes primeiro.
func (r *UploadRepo) List(ctx context.Context, empresaID string, limit, offset int) ([]*entity.Upload, error) {
	query := `
		SELECT ` + uploadCols + `
		FROM uploads WHERE empresa_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	defer rows.Close()

	var list []*entity.Upload
	for rows.Next() {
		u, err := scanUpload(rows)
		if err != nil {
			return nil, fmt.Errorf("scan upload: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUpload(row rowScanner) (*entity.Upload, error) {
	var (
		u        entity.Upload
		mappings []byte
		errs     []byte
	)
	if err := row.Scan(
		&u.ID, &u.EmpresaID, &u.UsuarioID, &u.FileName, &u.FileSize, &u.Status,
		&mappings, &u.TotalRecords, &u.ImportedRecords, &u.ErrorCount, &errs,
		&u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(mappings) > 0 {
		if err := json.Unmarshal(mappings, &u.ColumnMappings); err != nil {
			return nil, fmt.Errorf("decode column_mappings: %w", err)
		}
	}
	if len(errs) > 0 {
		if err := json.Unmarshal(errs, &u.Errors); err != nil {
			return nil, fmt.Errorf("decode errors: %w", err)
		}
	}
	return &u, nil
}

func marshalUpload(u *entity.Upload) (mappings, errs []byte, err error) {
	mappings = []byte("{}")
	if len(u.ColumnMappings) > 0 {
		if mappings, err = json.Marshal(u.ColumnMappings); err != nil {
			return nil, nil, fmt.Errorf("encode column_mappings: %w", err)
		}
	}
	errs = []byte("[]")
	if len(u.Errors) > 0 {
		if errs, err = json.Marshal(u.Errors); err != nil {
			return nil, nil, fmt.Errorf("encode errors: %w", err)
		}
	}
	return mappings, errs, nil
}
