package importacao

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransformedRecord é uma linha com o mapeamento aplicado: chaves canônicas e
// valores normalizados, prontos para persistência. CriadoEm é o relógio de
// parede no momento da transformação, nunca um valor vindo do arquivo.
type TransformedRecord struct {
	Campos   map[string]any
	CriadoEm time.Time
}

// Data devolve o valor de um campo de data já normalizado (string ISO-8601) ou
// "" quando o parse falhou na origem.
func (r TransformedRecord) Data(field string) string {
	s, _ := r.Campos[field].(string)
	return s
}

// Texto devolve o valor textual do campo ("" quando ausente).
func (r TransformedRecord) Texto(field string) string {
	s, _ := r.Campos[field].(string)
	return s
}

// Valor devolve o campo monetário, se presente e parseável.
func (r TransformedRecord) Valor(field string) (decimal.Decimal, bool) {
	d, ok := r.Campos[field].(decimal.Decimal)
	return d, ok
}

// ApplyMapping aplica o mapeamento finalizado a todas as linhas. Para cada par
// (cabeçalho, campo canônico):
//   - campos de data: ParseDate -> string ISO-8601, ou nil em falha de parse
//     (a falha é tolerada no campo; a linha não é rejeitada);
//   - campos monetários: ParseValor -> decimal, ou nil quando não parseável;
//   - demais campos: valor coagido a string e aparado ("" quando ausente).
//
// Não faz I/O. Aplicar duas vezes o mesmo mapeamento às mesmas linhas produz
// registros iguais em todos os campos, exceto CriadoEm.
func ApplyMapping(rows []RawRow, mapping map[string]string) []TransformedRecord {
	out := make([]TransformedRecord, 0, len(rows))
	for _, row := range rows {
		record := TransformedRecord{
			Campos:   make(map[string]any, len(mapping)),
			CriadoEm: time.Now(),
		}
		for header, field := range mapping {
			raw := row[header]
			switch {
			case IsDateField(field):
				if d, ok := ParseDate(raw); ok {
					record.Campos[field] = d.Format("2006-01-02")
				} else {
					record.Campos[field] = nil
				}
			case IsCurrencyField(field):
				if v, ok := ParseValor(CoerceString(raw)); ok {
					record.Campos[field] = v
				} else {
					record.Campos[field] = nil
				}
			default:
				record.Campos[field] = strings.TrimSpace(CoerceString(raw))
			}
		}
		out = append(out, record)
	}
	return out
}
