// Package testkit generates synthetic source workbooks with the production
// layout: six fixed-offset table blocks on a Marketing sheet, month header
// rows, a spacer row inside the leads block and a handful of dirty cells
// (formula errors, currency strings). Tests use it instead of the real
// KPI - 2025 BAP.xlsx, which is not checked in.
package testkit

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/domain/kpi"
)

// Metric names per table, matching the label conventions of the real
// workbook so the dashboard's substring lookups can be exercised.
var tableMetrics = map[string][]string{
	kpi.TableMarketingGeral: {
		"Seguidores Instagram",
		"Custo geral de Ads",
		"Visualizações",
		"Alcance Orgânico",
		"Alcance Pago",
		"Engajamento",
	},
	kpi.TableLeads: {
		"Origem da proposta enviada - Indica",
		"Origem da proposta enviada - Capt. Ativa",
		"Origem da proposta enviada - Contato Receptivo",
		"Origem da proposta enviada - Construtora",
		"Origem da proposta enviada - Reativa",
		"Origem da proposta enviada - Ads",
		"Origem da proposta enviada - Mala Direta",
		"Lead Convertido - Indicação",
		"Lead Convertido - Capt. Ativa",
		"Lead Convertido - Capt. Receptiva",
		"Lead Convertido - Construtora",
		"Lead Convertido - Reativação",
		"Lead Convertido - Ads",
		"Lead Convertido - Mala Direta",
		"Leads Recebidos",
		"Propostas Enviadas",
		"Leads Perdidos",
	},
	kpi.TableIndices: {
		"CAC",
		"MRR",
		"Recorrente mensal / Custo",
		"Ticket Médio",
		"LTV",
		"Churn",
		"Carteira Ativa",
	},
	kpi.TableImoveis: {
		"Investimento",
		"Leads Gerados",
		"Clientes Convertidos",
		"ROI",
		"CPL",
		"Impressões",
		"Cliques",
		"CTR",
		"Taxa de Conversão",
	},
	kpi.TableBoleto: {
		"Nº de Unidades",
		"Economia",
		"% da base",
		"Adesões no mês",
		"Custo de Impressão Evitado",
	},
	kpi.TableMultiseguros: {
		"Investimento",
		"Leads Gerados",
		"Clientes Convertidos",
		"ROI",
		"Apólices Emitidas",
		"Prêmio Total",
		"Comissão",
		"CPL",
		"Taxa de Conversão",
	},
}

// Dirty cells overriding the deterministic fill. Keys are
// "table/metricIndex/month".
var dirtyCells = map[string]string{
	// CAC in Janeiro divides by a zero that month.
	kpi.TableIndices + "/0/1": "#DIV/0!",
	// MRR in Fevereiro was typed as a currency string.
	kpi.TableIndices + "/1/2": "R$ 2,500.00",
}

// TableMetrics returns the synthetic metric names of one table.
func TableMetrics(table string) []string {
	return tableMetrics[table]
}

// CellValue is the deterministic numeric fill for a clean cell:
// block index, metric index and month are all recoverable from it.
func CellValue(tableIdx, metricIdx, month int) float64 {
	return float64((tableIdx+1)*1000 + metricIdx*10 + month)
}

// WriteSourceWorkbook writes a synthetic raw workbook to path. Only the
// active reporting months carry data; Novembro and Dezembro stay blank, as
// in the real file.
func WriteSourceWorkbook(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), kpi.SourceSheet); err != nil {
		return err
	}

	// Title rows above the first block, as in the real sheet.
	if err := setCell(f, 1, 1, "KPI - 2025 BAP"); err != nil {
		return err
	}
	if err := setCell(f, 1, 2, "Indicadores de Marketing"); err != nil {
		return err
	}

	for tableIdx, layout := range kpi.Layouts() {
		if err := writeBlock(f, tableIdx, layout); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeBlock(f *excelize.File, tableIdx int, layout kpi.TableLayout) error {
	// Header row with the twelve month names.
	headerRow := layout.StartRow + 1 // 1-based
	if err := setCell(f, 1, headerRow, layout.Name); err != nil {
		return err
	}
	for m := 1; m <= kpi.MonthsPerTable; m++ {
		if err := setCell(f, 1+m, headerRow, kpi.Month(m).Name()); err != nil {
			return err
		}
	}

	for metricIdx, metric := range tableMetrics[layout.Name] {
		row := headerRow + 1 + metricIdx
		if err := setCell(f, 1, row, metric); err != nil {
			return err
		}
		for month := 1; month <= kpi.ActiveMonths; month++ {
			key := fmt.Sprintf("%s/%d/%d", layout.Name, metricIdx, month)
			if raw, ok := dirtyCells[key]; ok {
				if err := setCell(f, 1+month, row, raw); err != nil {
					return err
				}
				continue
			}
			if err := setCell(f, 1+month, row, CellValue(tableIdx, metricIdx, month)); err != nil {
				return err
			}
		}
	}
	// Rows between the last metric and layout.EndRow stay blank, which
	// covers the spacer row inside the leads block.
	return nil
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(kpi.SourceSheet, cell, value)
}
