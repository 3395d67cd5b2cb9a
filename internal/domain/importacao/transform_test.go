package importacao_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unisafe/unisafe-api/internal/domain/importacao"
)

func linhasExemplo() []importacao.RawRow {
	return []importacao.RawRow{
		{
			"Matricula":         "12345678",
			"Nome":              "  MARCIO SOARES DE OLIVEIRA  ",
			"Data Nascimento":   "02/07/1983",
			"Valor Mensalidade": "R$ 35,50",
		},
		{
			"Matricula":         "87654321",
			"Nome":              "ANA PAULA COSTA",
			"Data Nascimento":   "data quebrada",
			"Valor Mensalidade": "",
		},
	}
}

func mapeamentoExemplo() map[string]string {
	return map[string]string{
		"Matricula":         importacao.CampoMatricula,
		"Nome":              importacao.CampoNome,
		"Data Nascimento":   importacao.CampoDataNasc,
		"Valor Mensalidade": importacao.CampoValorMensalidade,
	}
}

func TestApplyMapping_NormalizaCampos(t *testing.T) {
	records := importacao.ApplyMapping(linhasExemplo(), mapeamentoExemplo())
	require.Len(t, records, 2)

	r := records[0]
	assert.Equal(t, "12345678", r.Texto(importacao.CampoMatricula))
	assert.Equal(t, "MARCIO SOARES DE OLIVEIRA", r.Texto(importacao.CampoNome), "texto é aparado")
	assert.Equal(t, "1983-07-02", r.Data(importacao.CampoDataNasc), "data vira ISO-8601")

	v, ok := r.Valor(importacao.CampoValorMensalidade)
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("35.5").Equal(v))

	assert.False(t, r.CriadoEm.IsZero(), "todo registro recebe timestamp de criação")
}

// TestApplyMapping_FalhaDeCampoNaoDerrubaLinha: data imparseável vira nil no
// campo, mas a linha sobrevive com os demais campos preenchidos.
func TestApplyMapping_FalhaDeCampoNaoDerrubaLinha(t *testing.T) {
	records := importacao.ApplyMapping(linhasExemplo(), mapeamentoExemplo())
	require.Len(t, records, 2)

	r := records[1]
	assert.Nil(t, r.Campos[importacao.CampoDataNasc], "falha de parse de data vira nil")
	assert.Nil(t, r.Campos[importacao.CampoValorMensalidade], "valor vazio vira nil")
	assert.Equal(t, "ANA PAULA COSTA", r.Texto(importacao.CampoNome))
}

func TestApplyMapping_CampoAusenteViraStringVazia(t *testing.T) {
	rows := []importacao.RawRow{{"Matricula": "111"}}
	mapping := map[string]string{
		"Matricula": importacao.CampoMatricula,
		"Nome":      importacao.CampoNome, // cabeçalho mapeado mas ausente na linha
	}

	records := importacao.ApplyMapping(rows, mapping)
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].Texto(importacao.CampoNome))
}

// TestApplyMapping_Idempotente: aplicar duas vezes o mesmo mapeamento às
// mesmas linhas produz registros iguais em tudo, exceto o timestamp.
func TestApplyMapping_Idempotente(t *testing.T) {
	rows := linhasExemplo()
	mapping := mapeamentoExemplo()

	a := importacao.ApplyMapping(rows, mapping)
	b := importacao.ApplyMapping(rows, mapping)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Campos, b[i].Campos, "linha %d", i)
	}
}

// TestApplyMapping_SerialExcelNaData: valor numérico em campo de data é
// tratado como serial Excel.
func TestApplyMapping_SerialExcelNaData(t *testing.T) {
	rows := []importacao.RawRow{{"Data Nascimento": float64(45657)}}
	mapping := map[string]string{"Data Nascimento": importacao.CampoDataNasc}

	records := importacao.ApplyMapping(rows, mapping)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-12-31", records[0].Data(importacao.CampoDataNasc))
}

func TestApplyMapping_SemLinhas(t *testing.T) {
	records := importacao.ApplyMapping(nil, mapeamentoExemplo())
	assert.Empty(t, records)
}
