package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/unisafe/unisafe-api/internal/domain"
	"github.com/unisafe/unisafe-api/internal/domain/entity"
	"github.com/unisafe/unisafe-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository constrói o adaptador de persistência para usuários.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

const usuarioCols = `id, empresa_id, email, password_hash, nome, role, status, created_at, updated_at`

// Create persiste um novo usuário.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + usuarioCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		u.ID, u.EmpresaID, u.Email, u.PasswordHash, u.Nome, u.Role, u.Status,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.EmpresaID, &u.Email, &u.PasswordHash, &u.Nome, &u.Role, &u.Status,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// GetByID obtém um usuário por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.scanOne(context.Background(),
		`SELECT `+usuarioCols+` FROM usuarios WHERE id = $1`, id)
}

// GetByEmailAndEmpresa obtém um usuário por email e empresa.
func (r *UsuarioRepo) GetByEmailAndEmpresa(email, empresaID string) (*entity.Usuario, error) {
	return r.scanOne(context.Background(),
		`SELECT `+usuarioCols+` FROM usuarios WHERE email = $1 AND empresa_id = $2`, email, empresaID)
}

// FindByEmail obtém um usuário por email (para login).
func (r *UsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	return r.scanOne(context.Background(),
		`SELECT `+usuarioCols+` FROM usuarios WHERE email = $1`, email)
}

// Update atualiza nome, role e status de um usuário.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET nome = $2, role = $3, status = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query, u.ID, u.Nome, u.Role, u.Status, u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// List devolve os usuários de uma empresa com paginação.
func (r *UsuarioRepo) List(empresaID string, limit, offset int) ([]*entity.Usuario, error) {
	query := `
		SELECT ` + usuarioCols + `
		FROM usuarios WHERE empresa_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.EmpresaID, &u.Email, &u.PasswordHash, &u.Nome, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
