package importacao

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RawRow é uma linha bruta da planilha: cabeçalho como aparece no arquivo
// (caixa e espaços preservados) -> valor da célula (string, número, data ou nil).
type RawRow map[string]any

// FindColumnValue percorre os apelidos na ordem declarada e devolve o valor do
// primeiro apelido presente na linha com valor não ausente. A precedência é
// determinística: vence o apelido mais cedo na lista, não o valor "mais
// completo". Devolve (nil, false) quando nenhum apelido casa.
func FindColumnValue(row RawRow, aliases []string) (any, bool) {
	for _, alias := range aliases {
		v, ok := row[alias]
		if !ok {
			continue
		}
		if valorAusente(v) {
			continue
		}
		return v, true
	}
	return nil, false
}

// valorAusente: nil, ou string vazia após trim. Números e datas nunca são ausentes.
func valorAusente(v any) bool {
	if v == nil {
		return true
	}
	return strings.TrimSpace(CoerceString(v)) == ""
}

// CoerceString converte um valor de célula para string sem notação científica
// nem zeros decimais espúrios.
func CoerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		if t {
			return "true"
		}
		return "false"
	case time.Time:
		return t.Format("02/01/2006")
	default:
		return fmt.Sprintf("%v", t)
	}
}
