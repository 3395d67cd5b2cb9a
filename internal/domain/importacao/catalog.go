// Package importacao implementa o pipeline de normalização de planilhas de RH:
// resolução de cabeçalhos por apelido, normalização de datas (inclusive seriais
// Excel), formatação de campos numéricos e a aplicação do mapeamento de colunas
// sobre as linhas brutas. Todo o pacote é livre de I/O.
package importacao

// FieldKind declara explicitamente o tipo de cada campo canônico, em vez de
// adivinhar pelo formato do valor em tempo de execução.
type FieldKind string

const (
	KindTexto         FieldKind = "texto"
	KindData          FieldKind = "data"
	KindMoeda         FieldKind = "moeda"
	KindIdentificador FieldKind = "identificador"
	KindCompetencia   FieldKind = "competencia" // AAAAMM
)

// CanonicalField descreve um campo do catálogo de importação.
type CanonicalField struct {
	Field     string
	Label     string
	Descricao string
	Required  bool
	Kind      FieldKind
}

// Campos canônicos por identificador.
const (
	CampoMes              = "mes"
	CampoSE               = "se"
	CampoLotacao          = "lotacao"
	CampoMunicipio        = "municipio"
	CampoMatricula        = "matricula"
	CampoNome             = "nome"
	CampoSexo             = "sexo"
	CampoDataNasc         = "data_nasc"
	CampoRaca             = "raca"
	CampoGrauInstrucao    = "grau_instrucao"
	CampoDataAdmissao     = "data_admissao"
	CampoCargo            = "cargo"
	CampoCargoEsp         = "cargo_esp"
	CampoCargoNivel       = "cargo_nivel"
	CampoFuncao           = "funcao"
	CampoJornadaTrab      = "jornada_trab"
	CampoTipoDeficiencia  = "tipo_deficiencia"
	CampoDataAfast        = "data_afast"
	CampoMotivoAfast      = "motivo_afast"
	CampoBaseSindical     = "base_sindical"
	CampoFiliado          = "filiado"
	CampoValorMensalidade = "valor_mensalidade"
)

// Catalog é o catálogo fixo de campos canônicos (22 campos). Embutido no
// código: qualquer alteração exige nova versão da aplicação.
var Catalog = []CanonicalField{
	{Field: CampoMes, Label: "Mês", Descricao: "Competência de referência (AAAAMM)", Required: true, Kind: KindCompetencia},
	{Field: CampoSE, Label: "SE", Descricao: "Superintendência/seccional", Kind: KindIdentificador},
	{Field: CampoLotacao, Label: "Lotação", Descricao: "Unidade de lotação do empregado", Kind: KindTexto},
	{Field: CampoMunicipio, Label: "Município", Descricao: "Município de trabalho", Kind: KindTexto},
	{Field: CampoMatricula, Label: "Matrícula", Descricao: "Número de registro do empregado", Required: true, Kind: KindIdentificador},
	{Field: CampoNome, Label: "Nome", Descricao: "Nome completo", Required: true, Kind: KindTexto},
	{Field: CampoSexo, Label: "Sexo", Kind: KindTexto},
	{Field: CampoDataNasc, Label: "Data de Nascimento", Kind: KindData},
	{Field: CampoRaca, Label: "Raça/Cor", Kind: KindTexto},
	{Field: CampoGrauInstrucao, Label: "Grau de Instrução", Kind: KindTexto},
	{Field: CampoDataAdmissao, Label: "Data de Admissão", Kind: KindData},
	{Field: CampoCargo, Label: "Cargo", Kind: KindTexto},
	{Field: CampoCargoEsp, Label: "Cargo Especialidade", Kind: KindTexto},
	{Field: CampoCargoNivel, Label: "Cargo Nível", Kind: KindTexto},
	{Field: CampoFuncao, Label: "Função", Kind: KindTexto},
	{Field: CampoJornadaTrab, Label: "Jornada de Trabalho", Kind: KindTexto},
	{Field: CampoTipoDeficiencia, Label: "Tipo de Deficiência", Kind: KindTexto},
	{Field: CampoDataAfast, Label: "Data de Afastamento", Descricao: "01/01/1900 indica ausência de afastamento", Kind: KindData},
	{Field: CampoMotivoAfast, Label: "Motivo do Afastamento", Kind: KindTexto},
	{Field: CampoBaseSindical, Label: "Base Sindical", Kind: KindTexto},
	{Field: CampoFiliado, Label: "Filiado", Descricao: "S/N: o empregado é filiado ao sindicato", Kind: KindTexto},
	{Field: CampoValorMensalidade, Label: "Valor da Mensalidade", Kind: KindMoeda},
}

// AliasTable mapeia cada campo canônico à sua lista ordenada de apelidos de
// cabeçalho aceitos. A ordem importa: o primeiro apelido presente com valor
// não vazio vence na resolução (precedência determinística).
// Comparação sempre em maiúsculas, igualdade exata.
var AliasTable = map[string][]string{
	CampoMes:              {"MES", "MÊS", "COMPETENCIA", "COMPETÊNCIA", "MES REFERENCIA", "MES REF"},
	CampoSE:               {"SE", "SECCIONAL", "SUPERINTENDENCIA", "SUPERINTENDÊNCIA"},
	CampoLotacao:          {"LOTACAO", "LOTAÇÃO", "SETOR", "UNIDADE", "UNIDADE DE LOTACAO"},
	CampoMunicipio:        {"MUNICIPIO", "MUNICÍPIO", "CIDADE", "MUNICIPIO TRABALHO"},
	CampoMatricula:        {"MATRICULA", "MATRÍCULA", "REGISTRO", "MATR", "NUMERO MATRICULA"},
	CampoNome:             {"NOME", "NOME COMPLETO", "NOME FUNCIONARIO", "NOME DO EMPREGADO", "FUNCIONARIO", "EMPREGADO"},
	CampoSexo:             {"SEXO", "GENERO", "GÊNERO"},
	CampoDataNasc:         {"DATA NASCIMENTO", "DATA NASC", "DATA DE NASCIMENTO", "DT NASCIMENTO", "DT NASC", "NASCIMENTO"},
	CampoRaca:             {"RACA", "RAÇA", "RACA/COR", "RAÇA/COR", "COR"},
	CampoGrauInstrucao:    {"GRAU INSTRUCAO", "GRAU DE INSTRUCAO", "GRAU DE INSTRUÇÃO", "ESCOLARIDADE", "INSTRUCAO", "INSTRUÇÃO"},
	CampoDataAdmissao:     {"DATA ADMISSAO", "DATA DE ADMISSAO", "DATA DE ADMISSÃO", "DT ADMISSAO", "DT ADM", "ADMISSAO", "ADMISSÃO"},
	CampoCargo:            {"CARGO", "CARGO BASE"},
	CampoCargoEsp:         {"CARGO ESP", "CARGO ESPECIALIDADE", "ESPECIALIDADE"},
	CampoCargoNivel:       {"CARGO NIVEL", "CARGO NÍVEL", "NIVEL", "NÍVEL", "NIVEL CARGO"},
	CampoFuncao:           {"FUNCAO", "FUNÇÃO", "FUNCAO GRATIFICADA"},
	CampoJornadaTrab:      {"JORNADA TRAB", "JORNADA", "JORNADA DE TRABALHO", "CARGA HORARIA", "CARGA HORÁRIA"},
	CampoTipoDeficiencia:  {"TIPO DEFICIENCIA", "TIPO DEFICIÊNCIA", "TIPO DE DEFICIENCIA", "DEFICIENCIA", "DEFICIÊNCIA", "PCD"},
	CampoDataAfast:        {"DATA AFAST", "DATA AFASTAMENTO", "DATA DE AFASTAMENTO", "DT AFASTAMENTO", "DT AFAST", "AFASTAMENTO"},
	CampoMotivoAfast:      {"MOTIVO AFAST", "MOTIVO AFASTAMENTO", "MOTIVO DO AFASTAMENTO", "MOTIVO"},
	CampoBaseSindical:     {"BASE SINDICAL", "SINDICATO", "BASE"},
	CampoFiliado:          {"FILIADO", "FILIADO(A)", "SOCIO", "SÓCIO", "ASSOCIADO"},
	CampoValorMensalidade: {"VALOR MENSALIDADE", "VALOR DA MENSALIDADE", "MENSALIDADE", "VALOR CONTRIBUICAO", "CONTRIBUICAO", "CONTRIBUIÇÃO"},
}

// catalogByField índice do catálogo por identificador.
var catalogByField = func() map[string]CanonicalField {
	m := make(map[string]CanonicalField, len(Catalog))
	for _, f := range Catalog {
		m[f.Field] = f
	}
	return m
}()

// FieldByName devolve o campo canônico pelo identificador.
func FieldByName(field string) (CanonicalField, bool) {
	f, ok := catalogByField[field]
	return f, ok
}

// IsDateField informa se o campo canônico é de data.
func IsDateField(field string) bool {
	f, ok := catalogByField[field]
	return ok && f.Kind == KindData
}

// IsCurrencyField informa se o campo canônico é monetário.
func IsCurrencyField(field string) bool {
	f, ok := catalogByField[field]
	return ok && f.Kind == KindMoeda
}

// RequiredFields devolve os campos obrigatórios na ordem do catálogo.
func RequiredFields() []CanonicalField {
	var out []CanonicalField
	for _, f := range Catalog {
		if f.Required {
			out = append(out, f)
		}
	}
	return out
}
