package planilha_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/unisafe/unisafe-api/internal/infrastructure/planilha"
)

func TestRead_CSVComVirgula(t *testing.T) {
	data := []byte("NOME,MATRICULA\nMARCIO,12345678\nANA,87654321\n")

	p, err := planilha.NewReader(0).Read("empregados.csv", data)
	require.NoError(t, err)

	assert.Equal(t, []string{"NOME", "MATRICULA"}, p.Headers)
	require.Len(t, p.Rows, 2)
	assert.Equal(t, "MARCIO", p.Rows[0]["NOME"])
	assert.Equal(t, "87654321", p.Rows[1]["MATRICULA"])
}

// TestRead_CSVComPontoEVirgula: exportações brasileiras costumam usar ';'.
func TestRead_CSVComPontoEVirgula(t *testing.T) {
	data := []byte("NOME;VALOR MENSALIDADE\nMARCIO;35,50\n")

	p, err := planilha.NewReader(0).Read("empregados.csv", data)
	require.NoError(t, err)

	assert.Equal(t, []string{"NOME", "VALOR MENSALIDADE"}, p.Headers)
	require.Len(t, p.Rows, 1)
	assert.Equal(t, "35,50", p.Rows[0]["VALOR MENSALIDADE"])
}

// TestRead_CSVLatin1: bytes ISO-8859-1 são decodificados quando o arquivo não
// é UTF-8 válido.
func TestRead_CSVLatin1(t *testing.T) {
	// "LOTAÇÃO" em ISO-8859-1: Ç=0xC7, Ã=0xC3.
	data := append([]byte("LOTA\xc7\xc3O\n"), []byte("DIRETORIA\n")...)

	p, err := planilha.NewReader(0).Read("lotacao.csv", data)
	require.NoError(t, err)

	assert.Equal(t, []string{"LOTAÇÃO"}, p.Headers)
	require.Len(t, p.Rows, 1)
	assert.Equal(t, "DIRETORIA", p.Rows[0]["LOTAÇÃO"])
}

func TestRead_XLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "NOME"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "MATRICULA"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "MARCIO SOARES DE OLIVEIRA"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", "12345678"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	p, err := planilha.NewReader(0).Read("empregados.xlsx", buf.Bytes())
	require.NoError(t, err)

	assert.Equal(t, []string{"NOME", "MATRICULA"}, p.Headers)
	require.Len(t, p.Rows, 1)
	assert.Equal(t, "MARCIO SOARES DE OLIVEIRA", p.Rows[0]["NOME"])
}

func TestRead_LinhasVaziasIgnoradas(t *testing.T) {
	data := []byte("\nNOME\nMARCIO\n\nANA\n")

	p, err := planilha.NewReader(0).Read("a.csv", data)
	require.NoError(t, err)
	assert.Equal(t, []string{"NOME"}, p.Headers)
	assert.Len(t, p.Rows, 2)
}

func TestRead_LimiteDeLinhas(t *testing.T) {
	data := []byte("NOME\nA\nB\nC\n")

	_, err := planilha.NewReader(2).Read("a.csv", data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limite")
}

func TestRead_ExtensaoNaoSuportada(t *testing.T) {
	_, err := planilha.NewReader(0).Read("arquivo.pdf", []byte("x"))
	assert.Error(t, err)
}

func TestRead_CSVVazio(t *testing.T) {
	_, err := planilha.NewReader(0).Read("a.csv", []byte(""))
	assert.Error(t, err)
}

// TestRead_LinhaCurta: linha com menos células que cabeçalhos preenche "" nos
// campos faltantes.
func TestRead_LinhaCurta(t *testing.T) {
	data := []byte("NOME,MATRICULA,CARGO\nMARCIO,123\n")

	p, err := planilha.NewReader(0).Read("a.csv", data)
	require.NoError(t, err)
	require.Len(t, p.Rows, 1)
	assert.Equal(t, "", p.Rows[0]["CARGO"])
}
