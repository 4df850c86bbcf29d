package ui

import (
	"sort"
	"strings"

	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/domain/kpi"
)

// Lead analytics over the Leads_Condominios table. Proposal rows and
// converted-lead rows are matched by label substring; their origin spellings
// differ between the two row families, so the pairs are pinned explicitly.

const (
	proposalLabel  = "proposta enviada"
	proposalPrefix = "Origem da proposta enviada"
	convertedLabel = "Lead Convertido"
)

// conversionOrigins pairs a converted-lead origin with the spelling used in
// the proposal rows.
var conversionOrigins = []struct{ Conv, Prop string }{
	{"Indicação", "Indica"},
	{"Capt. Ativa", "Capt. Ativa"},
	{"Capt. Receptiva", "Contato Receptivo"},
	{"Construtora", "Construtora"},
	{"Reativação", "Reativa"},
	{"Ads", "Ads"},
	{"Mala Direta", "Mala Direta"},
}

// SourceTotal is one proposal origin with its period total.
type SourceTotal struct {
	Source string
	Total  float64
}

// ConversionRow pairs proposals and conversions for one origin.
type ConversionRow struct {
	Source      string
	Proposals   float64
	Conversions float64
	Rate        kpi.Value
}

// LeadSources totals the proposal rows per origin, dropping origins with no
// proposals in the period.
func (s *Store) LeadSources() []SourceTotal {
	leads, ok := s.Table(kpi.TableLeads)
	if !ok {
		return nil
	}

	var out []SourceTotal
	for _, name := range leads.Metrics {
		if !strings.Contains(strings.ToLower(name), proposalLabel) {
			continue
		}
		total := leads.series[name].Sum()
		if !total.Valid || total.Float <= 0 {
			continue
		}
		origin := strings.Trim(strings.TrimPrefix(name, proposalPrefix), " -")
		out = append(out, SourceTotal{Source: origin, Total: total.Float})
	}
	return out
}

// LeadConversion computes the conversion rate per origin: converted leads
// over proposals sent, sorted by rate descending. Origins without both rows
// are skipped; a zero-proposal origin carries the missing sentinel.
func (s *Store) LeadConversion() []ConversionRow {
	leads, ok := s.Table(kpi.TableLeads)
	if !ok {
		return nil
	}

	var out []ConversionRow
	for _, origin := range conversionOrigins {
		props, okProp := findWithin(leads, proposalLabel, origin.Prop)
		convs, okConv := findWithin(leads, strings.ToLower(convertedLabel), origin.Conv)
		if !okProp || !okConv {
			continue
		}
		totalProp := props.Sum()
		totalConv := convs.Sum()
		if !totalProp.Valid || !totalConv.Valid {
			continue
		}
		out = append(out, ConversionRow{
			Source:      origin.Conv,
			Proposals:   totalProp.Float,
			Conversions: totalConv.Float,
			Rate:        kpi.ConversionRate(totalConv, totalProp),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Rate, out[j].Rate
		if a.Valid != b.Valid {
			return a.Valid
		}
		return a.Float > b.Float
	})
	return out
}

// findWithin matches a metric that carries both the family label and the
// origin spelling, so "Ads" never collides across row families.
func findWithin(t *TableData, family, origin string) (kpi.Series, bool) {
	fam := strings.ToLower(family)
	org := strings.ToLower(origin)
	for _, name := range t.Metrics {
		lower := strings.ToLower(name)
		if strings.Contains(lower, fam) && strings.Contains(lower, org) {
			return t.series[name], true
		}
	}
	return nil, false
}
