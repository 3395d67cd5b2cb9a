package uploads

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/unisafe/unisafe-api/internal/domain/entity"
	"github.com/unisafe/unisafe-api/internal/domain/importacao"
)

// paraEmpregado converte um registro transformado em entidade persistível.
// Campos de data que falharam no parse ficam nulos; a linha só é rejeitada
// quando um campo obrigatório está vazio.
func paraEmpregado(rec importacao.TransformedRecord, empresaID, uploadID string, linha int) (*entity.Empregado, error) {
	for _, f := range importacao.RequiredFields() {
		if rec.Texto(f.Field) == "" {
			return nil, fmt.Errorf("Linha %d: campo obrigatório '%s' vazio", linha, f.Label)
		}
	}

	valor := decimal.Zero
	if v, ok := rec.Valor(importacao.CampoValorMensalidade); ok {
		valor = v
	}

	return &entity.Empregado{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		UploadID:  uploadID,

		Mes:              rec.Texto(importacao.CampoMes),
		SE:               rec.Texto(importacao.CampoSE),
		Lotacao:          rec.Texto(importacao.CampoLotacao),
		Municipio:        rec.Texto(importacao.CampoMunicipio),
		Matricula:        rec.Texto(importacao.CampoMatricula),
		Nome:             rec.Texto(importacao.CampoNome),
		Sexo:             rec.Texto(importacao.CampoSexo),
		DataNasc:         dataOuNulo(rec.Data(importacao.CampoDataNasc)),
		Raca:             rec.Texto(importacao.CampoRaca),
		GrauInstrucao:    rec.Texto(importacao.CampoGrauInstrucao),
		DataAdmissao:     dataOuNulo(rec.Data(importacao.CampoDataAdmissao)),
		Cargo:            rec.Texto(importacao.CampoCargo),
		CargoEsp:         rec.Texto(importacao.CampoCargoEsp),
		CargoNivel:       rec.Texto(importacao.CampoCargoNivel),
		Funcao:           rec.Texto(importacao.CampoFuncao),
		JornadaTrab:      rec.Texto(importacao.CampoJornadaTrab),
		TipoDeficiencia:  rec.Texto(importacao.CampoTipoDeficiencia),
		DataAfast:        dataOuNulo(rec.Data(importacao.CampoDataAfast)),
		MotivoAfast:      rec.Texto(importacao.CampoMotivoAfast),
		BaseSindical:     rec.Texto(importacao.CampoBaseSindical),
		Filiado:          importacao.ParseFiliado(rec.Texto(importacao.CampoFiliado)),
		ValorMensalidade: valor,

		CreatedAt: rec.CriadoEm,
	}, nil
}

// dataOuNulo interpreta a data ISO já normalizada pelo pipeline. A sentinela
// 01/01/1900 de afastamento é armazenada como veio; a substituição por "-"
// acontece só na exibição.
func dataOuNulo(iso string) *time.Time {
	if iso == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return nil
	}
	return &d
}
