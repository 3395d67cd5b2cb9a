package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/unisafe/unisafe-api/internal/domain/entity"
	"github.com/unisafe/unisafe-api/internal/domain/repository"
)

// DB abstrai pool e transação: ambos satisfazem esta interface no pgx v5,
// então o mesmo repo serve dentro e fora do TxRunner.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ repository.EmpregadoRepository = (*EmpregadoRepo)(nil)

// EmpregadoRepo implementação do porto EmpregadoRepository sobre PostgreSQL.
type EmpregadoRepo struct {
	db DB
}

// NewEmpregadoRepository constrói o adaptador; aceita pool ou transação.
func NewEmpregadoRepository(db DB) *EmpregadoRepo {
	return &EmpregadoRepo{db: db}
}

const empregadoCols = `id, empresa_id, upload_id, mes, se, lotacao, municipio, matricula, nome, sexo,
	data_nasc, raca, grau_instrucao, data_admissao, cargo, cargo_esp, cargo_nivel, funcao,
	jornada_trab, tipo_deficiencia, data_afast, motivo_afast, base_sindical, filiado,
	valor_mensalidade, created_at`

// Create persiste um empregado importado.
func (r *EmpregadoRepo) Create(ctx context.Context, e *entity.Empregado) error {
	query := `
		INSERT INTO empregados (` + empregadoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24, $25, $26)`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.EmpresaID, e.UploadID, e.Mes, e.SE, e.Lotacao, e.Municipio, e.Matricula, e.Nome, e.Sexo,
		e.DataNasc, e.Raca, e.GrauInstrucao, e.DataAdmissao, e.Cargo, e.CargoEsp, e.CargoNivel, e.Funcao,
		e.JornadaTrab, e.TipoDeficiencia, e.DataAfast, e.MotivoAfast, e.BaseSindical, e.Filiado,
		e.ValorMensalidade, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert empregado: %w", err)
	}
	return nil
}

// GetByID obtém um empregado por ID.
func (r *EmpregadoRepo) GetByID(ctx context.Context, id string) (*entity.Empregado, error) {
	query := `SELECT ` + empregadoCols + ` FROM empregados WHERE id = $1`
	var e entity.Empregado
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.EmpresaID, &e.UploadID, &e.Mes, &e.SE, &e.Lotacao, &e.Municipio, &e.Matricula, &e.Nome, &e.Sexo,
		&e.DataNasc, &e.Raca, &e.GrauInstrucao, &e.DataAdmissao, &e.Cargo, &e.CargoEsp, &e.CargoNivel, &e.Funcao,
		&e.JornadaTrab, &e.TipoDeficiencia, &e.DataAfast, &e.MotivoAfast, &e.BaseSindical, &e.Filiado,
		&e.ValorMensalidade, &e.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empregado: %w", err)
	}
	return &e, nil
}

// List devolve empregados filtrados, com o total para paginação.
// Limit <= 0 desliga a paginação (usado pelo relatório em PDF).
func (r *EmpregadoRepo) List(ctx context.Context, f repository.EmpregadoFilter) ([]*entity.Empregado, int, error) {
	where := ` WHERE empresa_id = $1`
	args := []any{f.EmpresaID}
	if f.Lotacao != "" {
		args = append(args, f.Lotacao)
		where += fmt.Sprintf(" AND lotacao = $%d", len(args))
	}
	if f.Texto != "" {
		args = append(args, "%"+f.Texto+"%")
		where += fmt.Sprintf(" AND (nome ILIKE $%d OR matricula ILIKE $%d)", len(args), len(args))
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM empregados`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count empregados: %w", err)
	}

	query := `SELECT ` + empregadoCols + ` FROM empregados` + where + ` ORDER BY nome`
	if f.Limit > 0 {
		args = append(args, f.Limit, f.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list empregados: %w", err)
	}
	defer rows.Close()

	var list []*entity.Empregado
	for rows.Next() {
		var e entity.Empregado
		if err := rows.Scan(
			&e.ID, &e.EmpresaID, &e.UploadID, &e.Mes, &e.SE, &e.Lotacao, &e.Municipio, &e.Matricula, &e.Nome, &e.Sexo,
			&e.DataNasc, &e.Raca, &e.GrauInstrucao, &e.DataAdmissao, &e.Cargo, &e.CargoEsp, &e.CargoNivel, &e.Funcao,
			&e.JornadaTrab, &e.TipoDeficiencia, &e.DataAfast, &e.MotivoAfast, &e.BaseSindical, &e.Filiado,
			&e.ValorMensalidade, &e.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan empregado: %w", err)
		}
		list = append(list, &e)
	}
	return list, total, rows.Err()
}

// DeleteByUpload remove os empregados de um upload (reimportação substitui).
func (r *EmpregadoRepo) DeleteByUpload(ctx context.Context, uploadID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM empregados WHERE upload_id = $1`, uploadID)
	if err != nil {
		return fmt.Errorf("delete empregados do upload: %w", err)
	}
	return nil
}
