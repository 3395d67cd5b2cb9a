package entity

import "time"

// Ações registradas no log de auditoria.
const (
	AcaoCriar       = "criar"
	AcaoAtualizar   = "atualizar"
	AcaoExcluir     = "excluir"
	AcaoLogin       = "login"
	AcaoUpload      = "upload"
	AcaoImportar    = "importar"
	AcaoLimparCache = "limpar_cache"
)

// AuditLog registra quem fez o quê sobre qual entidade.
type AuditLog struct {
	ID         string
	EmpresaID  string
	UsuarioID  string
	Acao       string
	Entidade   string // empresa, usuario, empregado, upload, cache
	EntidadeID string
	Detalhes   map[string]any // serializado como JSONB
	CreatedAt  time.Time
}
