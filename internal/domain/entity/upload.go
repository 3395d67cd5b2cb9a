package entity

import "time"

// Estados do ciclo de vida de um Upload.
const (
	UploadStatusRecebido          = "recebido"
	UploadStatusMapeado           = "mapeado"
	UploadStatusImportando        = "importando"
	UploadStatusImportado         = "importado"
	UploadStatusImportadoComErros = "importado_com_erros"
	UploadStatusErro              = "erro"
)

// Upload representa um arquivo de planilha recebido e seu progresso de importação.
// O mapeamento de colunas é persistido para reutilização em arquivos futuros.
type Upload struct {
	ID        string
	EmpresaID string
	UsuarioID string

	FileName string
	FileSize int64
	Status   string

	// Mapeamento cabeçalho -> campo canônico, como confirmado pelo usuário.
	ColumnMappings map[string]string

	TotalRecords    int
	ImportedRecords int
	ErrorCount      int
	Errors          []string // mensagens por linha rejeitada no servidor

	CreatedAt time.Time
	UpdatedAt time.Time
}
