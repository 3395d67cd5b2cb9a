package importacao_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unisafe/unisafe-api/internal/domain/importacao"
)

// TestSuggestMappings_IgualdadeExata: a sugestão casa por igualdade exata
// insensível a caixa; substring não basta.
func TestSuggestMappings_IgualdadeExata(t *testing.T) {
	headers := []string{
		"Matricula",
		"nome",
		"DATA NASCIMENTO",
		"Valor Mensalidade",
		"Coluna Desconhecida",
		"MATRICULA ANTIGA", // contém "MATRICULA" mas não é igual a nenhum apelido
	}

	m := importacao.SuggestMappings(headers)

	assert.Equal(t, importacao.CampoMatricula, m["Matricula"])
	assert.Equal(t, importacao.CampoNome, m["nome"])
	assert.Equal(t, importacao.CampoDataNasc, m["DATA NASCIMENTO"])
	assert.Equal(t, importacao.CampoValorMensalidade, m["Valor Mensalidade"])

	_, ok := m["Coluna Desconhecida"]
	assert.False(t, ok, "cabeçalho sem apelido fica sem mapeamento")
	_, ok = m["MATRICULA ANTIGA"]
	assert.False(t, ok, "substring não é match")
}

func TestSuggestMappings_CabecalhoComEspacos(t *testing.T) {
	m := importacao.SuggestMappings([]string{"  MATRICULA  "})
	assert.Equal(t, importacao.CampoMatricula, m["  MATRICULA  "],
		"a chave preserva o cabeçalho literal; só a comparação é normalizada")
}

func mapeamentoValido() map[string]string {
	return map[string]string{
		"MES":       importacao.CampoMes,
		"MATRICULA": importacao.CampoMatricula,
		"NOME":      importacao.CampoNome,
	}
}

func TestValidateMappings_Valido(t *testing.T) {
	errs := importacao.ValidateMappings(mapeamentoValido())
	assert.Empty(t, errs)
}

// TestValidateMappings_ObrigatoriosFaltando: exatamente um erro por campo
// obrigatório ausente, sem erros de duplicata quando não há duplicatas.
func TestValidateMappings_ObrigatoriosFaltando(t *testing.T) {
	m := mapeamentoValido()
	delete(m, "NOME")
	delete(m, "MES")

	errs := importacao.ValidateMappings(m)
	require.Len(t, errs, 2)
	assert.Contains(t, errs, "Campo obrigatório 'Mês' não foi mapeado")
	assert.Contains(t, errs, "Campo obrigatório 'Nome' não foi mapeado")
}

// TestValidateMappings_AlvoDuplicado: dois cabeçalhos no mesmo campo canônico
// produzem exatamente um erro de duplicata nomeando o campo.
func TestValidateMappings_AlvoDuplicado(t *testing.T) {
	m := mapeamentoValido()
	m["NOME COMPLETO"] = importacao.CampoNome

	errs := importacao.ValidateMappings(m)
	require.Len(t, errs, 1)
	assert.Equal(t, "Existem mapeamentos duplicados: nome", errs[0])
}

func TestValidateMappings_VariosDuplicados(t *testing.T) {
	m := mapeamentoValido()
	m["NOME COMPLETO"] = importacao.CampoNome
	m["REGISTRO"] = importacao.CampoMatricula

	errs := importacao.ValidateMappings(m)
	require.Len(t, errs, 1)
	assert.Equal(t, "Existem mapeamentos duplicados: matricula, nome", errs[0])
}

func TestValidateMappings_Vazio(t *testing.T) {
	errs := importacao.ValidateMappings(map[string]string{})
	// Todos os obrigatórios faltam.
	assert.Len(t, errs, len(importacao.RequiredFields()))
}
