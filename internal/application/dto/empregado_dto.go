package dto

import "time"

// EmpregadoResponse registro de empregado com os campos já formatados para
// exibição: datas DD/MM/AAAA, competência MM/AAAA, mensalidade em R$ e
// matrícula sob a política de sigilo.
type EmpregadoResponse struct {
	ID              string `json:"id"`
	EmpresaID       string `json:"empresa_id"`
	Mes             string `json:"mes"`
	SE              string `json:"se"`
	Lotacao         string `json:"lotacao"`
	Municipio       string `json:"municipio"`
	Matricula       string `json:"matricula"`
	Nome            string `json:"nome"`
	Sexo            string `json:"sexo"`
	DataNasc        string `json:"data_nasc"`
	Raca            string `json:"raca"`
	GrauInstrucao   string `json:"grau_instrucao"`
	DataAdmissao    string `json:"data_admissao"`
	Cargo           string `json:"cargo"`
	CargoEsp        string `json:"cargo_esp"`
	CargoNivel      string `json:"cargo_nivel"`
	Funcao          string `json:"funcao"`
	JornadaTrab     string `json:"jornada_trab"`
	TipoDeficiencia string `json:"tipo_deficiencia"`
	DataAfast       string `json:"data_afast"`
	MotivoAfast     string `json:"motivo_afast"`
	BaseSindical    string `json:"base_sindical"`
	Filiado         bool   `json:"filiado"`
	Mensalidade     string `json:"valor_mensalidade"`

	CreatedAt time.Time `json:"created_at"`
}

// EmpregadoListResponse lista paginada de empregados.
type EmpregadoListResponse struct {
	Items []EmpregadoResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
