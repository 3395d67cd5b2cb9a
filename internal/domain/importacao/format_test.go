package importacao_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unisafe/unisafe-api/internal/domain/importacao"
)

func TestFormatMesAno(t *testing.T) {
	assert.Equal(t, "03/2024", importacao.FormatMesAno("202403"))
	assert.Equal(t, "12/1999", importacao.FormatMesAno("199912"))
}

// TestFormatMesAno_Inalterado: tudo que não é competência AAAAMM válida volta
// como veio — inclusive mês 13, que não é reformatado.
func TestFormatMesAno_Inalterado(t *testing.T) {
	assert.Equal(t, "abc123", importacao.FormatMesAno("abc123"))
	assert.Equal(t, "202413", importacao.FormatMesAno("202413"))
	assert.Equal(t, "2024", importacao.FormatMesAno("2024"))
	assert.Equal(t, "", importacao.FormatMesAno(""))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", importacao.FormatCurrency(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "R$ 0,00", importacao.FormatCurrency(decimal.Zero))
	assert.Equal(t, "R$ 35,50", importacao.FormatCurrency(decimal.RequireFromString("35.5")))
	assert.Equal(t, "R$ 1.000.000,00", importacao.FormatCurrency(decimal.NewFromInt(1000000)))
	assert.Equal(t, "-R$ 12,30", importacao.FormatCurrency(decimal.RequireFromString("-12.3")))
}

func TestFormatMatricula(t *testing.T) {
	assert.Equal(t, "1.234.567-8", importacao.FormatMatricula("12345678"))
	// Pontuação pré-existente é descartada antes de reformatar.
	assert.Equal(t, "1.234.567-8", importacao.FormatMatricula("1234.5678"))
	// Menos de 8 dígitos: devolve como está.
	assert.Equal(t, "12345", importacao.FormatMatricula("12345"))
	assert.Equal(t, "", importacao.FormatMatricula(""))
}

// TestFormatMatriculaSigilosa: não filiados têm os quatro últimos dígitos
// ocultados; filiação desconhecida (nil) trata como não filiado.
func TestFormatMatriculaSigilosa(t *testing.T) {
	sim := true
	nao := false

	assert.Equal(t, "1.234.567-8", importacao.FormatMatriculaSigilosa("12345678", &sim))
	assert.Equal(t, "1.234.***-*", importacao.FormatMatriculaSigilosa("12345678", &nao))
	assert.Equal(t, "1.234.***-*", importacao.FormatMatriculaSigilosa("12345678", nil))
	// Matrícula curta não recebe máscara nem formato.
	assert.Equal(t, "12345", importacao.FormatMatriculaSigilosa("12345", &nao))
}

func TestParseFiliado(t *testing.T) {
	for _, in := range []string{"S", "s", "SIM", "sim", "X", "1", "FILIADO"} {
		assert.True(t, importacao.ParseFiliado(in), "entrada %q", in)
	}
	for _, in := range []string{"", "N", "NAO", "NÃO", "0", "qualquer"} {
		assert.False(t, importacao.ParseFiliado(in), "entrada %q", in)
	}
}

func TestParseValor(t *testing.T) {
	casos := []struct {
		in       string
		esperado string
	}{
		{"35,50", "35.5"},
		{"R$ 1.234,56", "1234.56"},
		{"1234.56", "1234.56"},
		{"1000", "1000"},
		{"R$35", "35"},
		{"-12,30", "-12.3"},
	}
	for _, c := range casos {
		v, ok := importacao.ParseValor(c.in)
		require.True(t, ok, "entrada %q", c.in)
		assert.True(t, decimal.RequireFromString(c.esperado).Equal(v),
			"entrada %q: esperado %s, obtido %s", c.in, c.esperado, v)
	}
}

func TestParseValor_Invalido(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "R$"} {
		_, ok := importacao.ParseValor(in)
		assert.False(t, ok, "entrada %q", in)
	}
}
