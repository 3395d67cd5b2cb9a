package importacao

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Época da contagem serial do Excel, relativa a 1900-01-01. O Excel herda do
// Lotus 1-2-3 o bug do ano bissexto de 1900: o serial 60 corresponderia a um
// 29/02/1900 inexistente, então seriais acima de 59 carregam um dia a mais.
var excelEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

const (
	anoMinimo = 1900
	anoMaximo = 2100
)

var (
	reDataBarra   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	reDataISO     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	reDataTraco   = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`)
	reDataDigitos = regexp.MustCompile(`^\d{8}$`)
)

// Formatos tentados no fallback genérico, quando nenhum padrão conhecido casa.
var layoutsFallback = []string{
	"02/01/2006 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"02/01/06",
}

// ParseDate normaliza um valor bruto de célula para uma data de calendário.
// Aceita data nativa, serial Excel (número) e vários formatos textuais.
// Nunca entra em pânico: toda falha devolve (zero, false) e cabe ao chamador
// decidir se isso é fatal para a linha ou apenas deixa o campo em branco.
func ParseDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}
		// Descarta hora; usa os campos de calendário locais, sem conversão de fuso.
		return dataCalendario(v.Year(), int(v.Month()), v.Day())
	case float64:
		return parseSerialExcel(int(v))
	case float32:
		return parseSerialExcel(int(v))
	case int:
		return parseSerialExcel(v)
	case int64:
		return parseSerialExcel(int(v))
	case string:
		return parseDataTexto(v)
	default:
		return time.Time{}, false
	}
}

// parseSerialExcel interpreta um número como serial de data do Excel.
// Seriais <= 59 usam deslocamento n-1 e acima de 59 usam n-2 em relação a
// 1900-01-01, compensando o 29/02/1900 fantasma. Rejeita anos fora de
// [1900, 2100].
func parseSerialExcel(serial int) (time.Time, bool) {
	if serial <= 0 {
		return time.Time{}, false
	}
	offset := serial - 1
	if serial > 59 {
		offset = serial - 2
	}
	d := excelEpoch.AddDate(0, 0, offset)
	if d.Year() < anoMinimo || d.Year() > anoMaximo {
		return time.Time{}, false
	}
	return d, true
}

func parseDataTexto(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	// DD/MM/YYYY — estritamente dia/mês/ano, nunca mês/dia.
	if m := reDataBarra.FindStringSubmatch(s); m != nil {
		return dataCalendario(atoi(m[3]), atoi(m[2]), atoi(m[1]))
	}
	// YYYY-MM-DD
	if m := reDataISO.FindStringSubmatch(s); m != nil {
		return dataCalendario(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	// DD-MM-YYYY
	if m := reDataTraco.FindStringSubmatch(s); m != nil {
		return dataCalendario(atoi(m[3]), atoi(m[2]), atoi(m[1]))
	}
	// 8 dígitos: DDMMYYYY se os 4 últimos formam um ano plausível, senão YYYYMMDD.
	if reDataDigitos.MatchString(s) {
		if ano := atoi(s[4:8]); ano >= anoMinimo && ano <= anoMaximo {
			if d, ok := dataCalendario(ano, atoi(s[2:4]), atoi(s[0:2])); ok {
				return d, true
			}
		}
		return dataCalendario(atoi(s[0:4]), atoi(s[4:6]), atoi(s[6:8]))
	}
	// Último recurso: formatos genéricos com hora.
	for _, layout := range layoutsFallback {
		if t, err := time.Parse(layout, s); err == nil {
			return dataCalendario(t.Year(), int(t.Month()), t.Day())
		}
	}
	return time.Time{}, false
}

// dataCalendario valida e constrói a data (ano, mês, dia) em UTC meia-noite.
// time.Date normaliza valores fora de faixa (32/01 vira 01/02), então a
// validação confere se os campos sobreviveram intactos.
func dataCalendario(ano, mes, dia int) (time.Time, bool) {
	if ano < anoMinimo || ano > anoMaximo || mes < 1 || mes > 12 || dia < 1 || dia > 31 {
		return time.Time{}, false
	}
	d := time.Date(ano, time.Month(mes), dia, 0, 0, 0, 0, time.UTC)
	if d.Year() != ano || int(d.Month()) != mes || d.Day() != dia {
		return time.Time{}, false
	}
	return d, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// FormatDate formata uma data como DD/MM/YYYY com zeros à esquerda.
func FormatDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("02/01/2006")
}

// SemAfastamento informa se a data é a sentinela 01/01/1900 usada pelos
// sistemas de origem para "sem data de afastamento".
func SemAfastamento(d time.Time) bool {
	return d.Year() == 1900 && d.Month() == time.January && d.Day() == 1
}

// FormatDataAfast formata a data de afastamento para exibição. A sentinela
// 01/01/1900 (em qualquer codificação de origem) vira "-": é substituição de
// exibição, não falha de parse.
func FormatDataAfast(d *time.Time) string {
	if d == nil || d.IsZero() {
		return "-"
	}
	if SemAfastamento(*d) {
		return "-"
	}
	return FormatDate(*d)
}
