package importacao

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var reDigitos = regexp.MustCompile(`\D`)

// FormatMesAno reformata uma competência AAAAMM como MM/AAAA. Se o valor não
// tiver exatamente 6 dígitos, ou se os dois últimos não formarem um mês válido
// (01 a 12), devolve o valor inalterado — nunca erro.
func FormatMesAno(value string) string {
	s := strings.TrimSpace(value)
	if len(s) != 6 {
		return value
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return value
		}
	}
	mes := atoi(s[4:6])
	if mes < 1 || mes > 12 {
		return value
	}
	return s[4:6] + "/" + s[0:4]
}

// FormatCurrency formata um valor nas convenções monetárias do pt-BR:
// símbolo R$, vírgula decimal e ponto como separador de milhar.
func FormatCurrency(v decimal.Decimal) string {
	fixed := v.StringFixed(2) // ex.: -1234.56
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	inteiro := milhares(parts[0])
	out := "R$ " + inteiro + "," + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

// milhares insere pontos de milhar em um string numérico sem decimais.
func milhares(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// FormatMatricula formata um número de matrícula: remove tudo que não é
// dígito; com exatamente 8 dígitos aplica a máscara D.DDD.DDD-D; com menos,
// devolve como está.
func FormatMatricula(value string) string {
	digits := reDigitos.ReplaceAllString(value, "")
	if len(digits) != 8 {
		return value
	}
	return digits[0:1] + "." + digits[1:4] + "." + digits[4:7] + "-" + digits[7:8]
}

// FormatMatriculaSigilosa aplica a política de sigilo: para não filiados os
// quatro últimos dígitos são ocultados. Quando a filiação não pode ser
// determinada (filiado == nil), trata como não filiado e oculta — o padrão
// seguro. A mesma função atende tabela, impressão e PDF, eliminando a
// divergência entre pontos de chamada.
func FormatMatriculaSigilosa(value string, filiado *bool) string {
	if filiado != nil && *filiado {
		return FormatMatricula(value)
	}
	digits := reDigitos.ReplaceAllString(value, "")
	if len(digits) != 8 {
		return value
	}
	return digits[0:1] + "." + digits[1:4] + ".***-*"
}

// ParseFiliado interpreta as codificações usuais de filiação nas planilhas.
func ParseFiliado(value string) bool {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "S", "SIM", "X", "1", "TRUE", "FILIADO":
		return true
	default:
		return false
	}
}

// ParseValor converte um valor monetário bruto em decimal. Remove símbolo de
// moeda e espaços; aceita vírgula decimal pt-BR (1.234,56) e ponto decimal
// (1234.56). Devolve (zero, false) quando nada numérico resta.
func ParseValor(value string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return decimal.Zero, false
	}
	neg := strings.Contains(s, "-")

	// Mantém apenas dígitos e separadores.
	var b strings.Builder
	for _, c := range s {
		if (c >= '0' && c <= '9') || c == ',' || c == '.' {
			b.WriteRune(c)
		}
	}
	s = b.String()
	if s == "" {
		return decimal.Zero, false
	}

	if strings.Contains(s, ",") {
		// Convenção pt-BR: ponto é milhar, vírgula é decimal.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if neg {
		d = d.Neg()
	}
	return d, true
}
