package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Empregado é o registro importado das planilhas de RH.
// Os campos espelham o catálogo canônico de importação; datas e valores já
// chegam normalizados pelo pipeline.
type Empregado struct {
	ID        string
	EmpresaID string
	UploadID  string // upload de origem do registro

	Mes              string // competência AAAAMM da planilha de origem
	SE               string
	Lotacao          string
	Municipio        string
	Matricula        string
	Nome             string
	Sexo             string
	DataNasc         *time.Time
	Raca             string
	GrauInstrucao    string
	DataAdmissao     *time.Time
	Cargo            string
	CargoEsp         string
	CargoNivel       string
	Funcao           string
	JornadaTrab      string
	TipoDeficiencia  string
	DataAfast        *time.Time // 1900-01-01 é sentinela de "sem afastamento"
	MotivoAfast      string
	BaseSindical     string
	Filiado          bool
	ValorMensalidade decimal.Decimal

	CreatedAt time.Time
}
