// Package pdf implementa a geração do Relatório de Empregados em PDF.
//
// Layout da página A4 (paisagem):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razão Social + CNPJ  │  Relatório + Data de emissão │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Matrícula | Nome | Lotação | Admissão | Afast. |    │
//	│          Filiado | Mensalidade                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Empregados / Filiados / Soma das mensalidades      │
//	└─────────────────────────────────────────────────────────────┘
//
// A matrícula sai sob a política de sigilo e a data de afastamento usa a
// substituição "-" para a sentinela 01/01/1900.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/unisafe/unisafe-api/internal/domain/entity"
	"github.com/unisafe/unisafe-api/internal/domain/importacao"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator gera o relatório de empregados usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateEmpregadosPDF gera o relatório e devolve seus bytes.
func (g *MarotoPDFGenerator) GenerateEmpregadosPDF(
	_ context.Context,
	empresa *entity.Empresa,
	empregados []*entity.Empregado,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Relatório de Empregados", true).
		WithAuthor(empresa.Nome, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(empresa))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(empregados) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totaisRow(empregados))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: razão social + CNPJ (esq) e título + data de emissão (dir).
func headerRow(empresa *entity.Empresa) core.Row {
	emissao := time.Now().Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(empresa.Nome, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CNPJ: "+nonEmpty(empresa.CNPJ, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RELATÓRIO DE EMPREGADOS", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido em: "+emissao, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de empregados.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Matrícula", 2, align.Left),
		h("Nome", 3, align.Left),
		h("Lotação", 2, align.Left),
		h("Admissão", 1, align.Center),
		h("Afastamento", 1, align.Center),
		h("Filiado", 1, align.Center),
		h("Mensalidade", 2, align.Right),
	)
}

// tableRows: uma linha por empregado, com as mesmas regras de exibição das
// telas (sigilo de matrícula, sentinela de afastamento, moeda pt-BR).
func tableRows(empregados []*entity.Empregado) []core.Row {
	result := make([]core.Row, 0, len(empregados))
	for _, e := range empregados {
		filiado := "Não"
		if e.Filiado {
			filiado = "Sim"
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				importacao.FormatMatriculaSigilosa(e.Matricula, &e.Filiado),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				e.Nome,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				e.Lotacao,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				dataOuTraco(e.DataAdmissao),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				importacao.FormatDataAfast(e.DataAfast),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				filiado,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				importacao.FormatCurrency(e.ValorMensalidade),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totaisRow: contagens e soma das mensalidades alinhadas à direita.
func totaisRow(empregados []*entity.Empregado) core.Row {
	filiados := 0
	soma := decimal.Zero
	for _, e := range empregados {
		if e.Filiado {
			filiados++
		}
		soma = soma.Add(e.ValorMensalidade)
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Empregados:"),
			label("Filiados:"),
			grandLabel("TOTAL MENSALIDADES:"),
		),
		col.New(4).Add(
			value(fmt.Sprintf("%d", len(empregados))),
			value(fmt.Sprintf("%d", filiados)),
			grandValue(importacao.FormatCurrency(soma)),
		),
		col.New(1),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func dataOuTraco(d *time.Time) string {
	if d == nil || d.IsZero() {
		return "-"
	}
	return importacao.FormatDate(*d)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
