package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/unisafe/unisafe-api/internal/domain"
	"github.com/unisafe/unisafe-api/internal/domain/entity"
	"github.com/unisafe/unisafe-api/internal/domain/repository"
)

// Garante que EmpresaRepo implementa repository.EmpresaRepository.
var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementação do porto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	pool *pgxpool.Pool
}

// NewEmpresaRepository constrói o adaptador de persistência para empresas.
func NewEmpresaRepository(pool *pgxpool.Pool) *EmpresaRepo {
	return &EmpresaRepo{pool: pool}
}

// Create persiste uma nova empresa.
func (r *EmpresaRepo) Create(e *entity.Empresa) error {
	query := `
		INSERT INTO empresas (id, nome, cnpj, endereco, telefone, email, base_sindical, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.Nome, e.CNPJ, e.Endereco, e.Telefone, e.Email, e.BaseSindical, e.Status,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtém uma empresa por ID.
func (r *EmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	query := `
		SELECT id, nome, cnpj, endereco, telefone, email, base_sindical, status, created_at, updated_at
		FROM empresas WHERE id = $1`
	var e entity.Empresa
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Nome, &e.CNPJ, &e.Endereco, &e.Telefone, &e.Email, &e.BaseSindical, &e.Status,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &e, nil
}

// GetByCNPJ obtém uma empresa por CNPJ.
func (r *EmpresaRepo) GetByCNPJ(cnpj string) (*entity.Empresa, error) {
	query := `
		SELECT id, nome, cnpj, endereco, telefone, email, base_sindical, status, created_at, updated_at
		FROM empresas WHERE cnpj = $1`
	var e entity.Empresa
	err := r.pool.QueryRow(context.Background(), query, cnpj).Scan(
		&e.ID, &e.Nome, &e.CNPJ, &e.Endereco, &e.Telefone, &e.Email, &e.BaseSindical, &e.Status,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa by CNPJ: %w", err)
	}
	return &e, nil
}

// Update atualiza uma empresa existente.
func (r *EmpresaRepo) Update(e *entity.Empresa) error {
	query := `
		UPDATE empresas SET nome = $2, cnpj = $3, endereco = $4, telefone = $5, email = $6, base_sindical = $7, status = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		e.ID, e.Nome, e.CNPJ, e.Endereco, e.Telefone, e.Email, e.BaseSindical, e.Status, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update empresa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devolve empresas com paginação.
func (r *EmpresaRepo) List(limit, offset int) ([]*entity.Empresa, error) {
	query := `
		SELECT id, nome, cnpj, endereco, telefone, email, base_sindical, status, created_at, updated_at
		FROM empresas ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Empresa
	for rows.Next() {
		var e entity.Empresa
		if err := rows.Scan(&e.ID, &e.Nome, &e.CNPJ, &e.Endereco, &e.Telefone, &e.Email, &e.BaseSindical, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete remove uma empresa por ID.
func (r *EmpresaRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM empresas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete empresa: %w", err)
	}
	return nil
}
