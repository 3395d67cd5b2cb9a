package importacao_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unisafe/unisafe-api/internal/domain/importacao"
)

func data(ano, mes, dia int) time.Time {
	return time.Date(ano, time.Month(mes), dia, 0, 0, 0, 0, time.UTC)
}

// TestParseDate_FormatosTextuais: os três formatos textuais principais
// resolvem para a mesma data de calendário.
func TestParseDate_FormatosTextuais(t *testing.T) {
	esperado := data(2024, 12, 31)

	for _, in := range []string{"31/12/2024", "2024-12-31", "31-12-2024"} {
		d, ok := importacao.ParseDate(in)
		require.True(t, ok, "deveria parsear %q", in)
		assert.Equal(t, esperado, d, "entrada %q", in)
	}
}

func TestParseDate_DiaMesUmDigito(t *testing.T) {
	d, ok := importacao.ParseDate("2/7/1983")
	require.True(t, ok)
	assert.Equal(t, data(1983, 7, 2), d)
}

// TestParseDate_EstritamenteDiaMes: 05/03 é 5 de março, nunca 3 de maio.
func TestParseDate_EstritamenteDiaMes(t *testing.T) {
	d, ok := importacao.ParseDate("05/03/2020")
	require.True(t, ok)
	assert.Equal(t, data(2020, 3, 5), d)
}

func TestParseDate_VazioEInvalido(t *testing.T) {
	_, ok := importacao.ParseDate("")
	assert.False(t, ok)

	_, ok = importacao.ParseDate("   ")
	assert.False(t, ok)

	_, ok = importacao.ParseDate("not a date")
	assert.False(t, ok)

	_, ok = importacao.ParseDate(nil)
	assert.False(t, ok)

	_, ok = importacao.ParseDate("31/02/2024")
	assert.False(t, ok, "30 de fevereiro não existe")
}

// TestParseDate_SerialExcel: o serial 45657 é exibido pelo Excel como
// 31/12/2024, já contando o deslocamento do bug do bissexto de 1900.
func TestParseDate_SerialExcel(t *testing.T) {
	d, ok := importacao.ParseDate(float64(45657))
	require.True(t, ok)
	assert.Equal(t, data(2024, 12, 31), d)
}

// TestParseDate_SerialExcelBugBissexto: ao redor do 29/02/1900 fantasma.
// Seriais até 59 usam deslocamento n-1; acima de 59, n-2.
func TestParseDate_SerialExcelBugBissexto(t *testing.T) {
	d, ok := importacao.ParseDate(1)
	require.True(t, ok)
	assert.Equal(t, data(1900, 1, 1), d)

	d, ok = importacao.ParseDate(59)
	require.True(t, ok)
	assert.Equal(t, data(1900, 2, 28), d)

	d, ok = importacao.ParseDate(61)
	require.True(t, ok)
	assert.Equal(t, data(1900, 3, 1), d)
}

func TestParseDate_SerialForaDaFaixa(t *testing.T) {
	_, ok := importacao.ParseDate(0)
	assert.False(t, ok)

	_, ok = importacao.ParseDate(-10)
	assert.False(t, ok)

	// Serial gigantesco cai depois de 2100.
	_, ok = importacao.ParseDate(99999999)
	assert.False(t, ok)
}

// TestParseDate_OitoDigitos: DDMMYYYY quando os 4 últimos dígitos formam ano
// plausível; caso contrário reinterpreta como YYYYMMDD.
func TestParseDate_OitoDigitos(t *testing.T) {
	d, ok := importacao.ParseDate("31122024")
	require.True(t, ok)
	assert.Equal(t, data(2024, 12, 31), d)

	d, ok = importacao.ParseDate("20241231")
	require.True(t, ok)
	assert.Equal(t, data(2024, 12, 31), d)
}

func TestParseDate_DataNativa(t *testing.T) {
	// A hora é descartada; valem os campos de calendário locais, sem fuso.
	in := time.Date(1983, time.July, 2, 23, 45, 0, 0, time.FixedZone("BRT", -3*3600))
	d, ok := importacao.ParseDate(in)
	require.True(t, ok)
	assert.Equal(t, data(1983, 7, 2), d)
}

func TestParseDate_FallbackComHora(t *testing.T) {
	d, ok := importacao.ParseDate("31/12/2024 08:30:00")
	require.True(t, ok)
	assert.Equal(t, data(2024, 12, 31), d)
}

func TestFormatDate_ZeroPadding(t *testing.T) {
	assert.Equal(t, "02/07/1983", importacao.FormatDate(data(1983, 7, 2)))
	assert.Equal(t, "", importacao.FormatDate(time.Time{}))
}

// TestFormatDataAfast_Sentinela: 01/01/1900, em qualquer das codificações de
// origem equivalentes, sempre exibe "-".
func TestFormatDataAfast_Sentinela(t *testing.T) {
	for _, in := range []string{"01/01/1900", "1900-01-01", "01-01-1900"} {
		d, ok := importacao.ParseDate(in)
		require.True(t, ok, "a sentinela parseia como data válida: %q", in)
		assert.Equal(t, "-", importacao.FormatDataAfast(&d), "entrada %q", in)
	}
}

func TestFormatDataAfast_DataReal(t *testing.T) {
	d := data(2023, 5, 10)
	assert.Equal(t, "10/05/2023", importacao.FormatDataAfast(&d))
}

func TestFormatDataAfast_Nil(t *testing.T) {
	assert.Equal(t, "-", importacao.FormatDataAfast(nil))
}
