// Package planilha lê arquivos de planilha (.xlsx, .xls, .csv) e os converte
// em cabeçalhos + linhas brutas para o pipeline de importação.
package planilha

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/unisafe/unisafe-api/internal/domain/importacao"
)

// Resultado de uma leitura: cabeçalhos na ordem do arquivo e as linhas de dados.
type Planilha struct {
	Headers []string
	Rows    []importacao.RawRow
}

// Reader lê planilhas respeitando um corte máximo de linhas.
type Reader struct {
	maxRows int
}

// NewReader constrói o leitor. maxRows <= 0 desabilita o corte.
func NewReader(maxRows int) *Reader {
	return &Reader{maxRows: maxRows}
}

// Read decide o formato pela extensão do nome do arquivo e devolve cabeçalhos
// e linhas. Qualquer erro de leitura/formato aborta a importação inteira:
// nenhum resultado parcial é produzido.
func (r *Reader) Read(fileName string, data []byte) (*Planilha, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	var (
		cells [][]string
		err   error
	)
	switch ext {
	case ".csv":
		cells, err = readCSV(data)
	case ".xls":
		cells, err = readXLS(data)
	case ".xlsx", "":
		cells, err = readXLSX(data)
	default:
		return nil, fmt.Errorf("extensão não suportada: %s", ext)
	}
	if err != nil {
		return nil, err
	}
	return r.montar(cells)
}

// montar separa a primeira linha não vazia como cabeçalho e converte as
// demais em RawRow, preservando o texto literal dos cabeçalhos.
func (r *Reader) montar(cells [][]string) (*Planilha, error) {
	idx := -1
	for i, row := range cells {
		if !linhaVazia(row) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("planilha sem linha de cabeçalho")
	}

	headers := cells[idx]
	var out []importacao.RawRow
	for _, row := range cells[idx+1:] {
		if linhaVazia(row) {
			continue
		}
		if r.maxRows > 0 && len(out) >= r.maxRows {
			return nil, fmt.Errorf("planilha excede o limite de %d linhas", r.maxRows)
		}
		raw := make(importacao.RawRow, len(headers))
		for j, h := range headers {
			if strings.TrimSpace(h) == "" {
				continue
			}
			if j < len(row) {
				raw[h] = row[j]
			} else {
				raw[h] = ""
			}
		}
		out = append(out, raw)
	}
	return &Planilha{Headers: headers, Rows: out}, nil
}

func readXLSX(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("nenhuma aba encontrada")
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("ler aba %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("aba vazia")
	}
	return rows, nil
}

func readXLS(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("abrir xls: %w", err)
	}
	if workbook.NumSheets() == 0 {
		return nil, fmt.Errorf("nenhuma aba encontrada")
	}
	rows := workbook.ReadAllCells(100000)
	if len(rows) == 0 {
		return nil, fmt.Errorf("aba vazia")
	}
	return rows, nil
}

// readCSV lê CSV detectando o delimitador (vírgula ou ponto e vírgula, comum
// em exportações brasileiras) e o encoding: entrada inválida como UTF-8 é
// decodificada como ISO-8859-1.
func readCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}) // BOM UTF-8

	var reader *csv.Reader
	if utf8.Valid(data) {
		reader = csv.NewReader(bytes.NewReader(data))
	} else {
		reader = csv.NewReader(transform.NewReader(bytes.NewReader(data), charmap.ISO8859_1.NewDecoder()))
	}
	reader.Comma = detectarDelimitador(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ler csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv vazio")
	}
	return rows, nil
}

// detectarDelimitador escolhe ';' quando a primeira linha tem mais pontos e
// vírgulas que vírgulas.
func detectarDelimitador(data []byte) rune {
	idx := bytes.IndexByte(data, '\n')
	primeira := data
	if idx >= 0 {
		primeira = data[:idx]
	}
	if bytes.Count(primeira, []byte{';'}) > bytes.Count(primeira, []byte{','}) {
		return ';'
	}
	return ','
}

func linhaVazia(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
