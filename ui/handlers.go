package ui

import (
	"net/http"

	"github.com/gomarkdown/markdown"

	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/domain/kpi"
)

// pageData is the common payload of every dashboard page.
type pageData struct {
	Title  string
	Active string
	Store  *Store
}

func (a *App) page(title, active string) pageData {
	return pageData{Title: title, Active: active, Store: a.store}
}

// metricCard is a headline number with a label.
type metricCard struct {
	Label string
	Value string
}

func (a *App) handleExecutiveSummary(w http.ResponseWriter, r *http.Request) {
	data := struct {
		pageData
		Cards     []metricCard
		Summaries []kpi.TableSummary
		AvgFill   kpi.Value
	}{
		pageData:  a.page("Executive Summary", "executive"),
		Summaries: a.store.Summaries,
		AvgFill:   a.store.AvgFillPct(),
	}

	funcs := templateFuncs()
	money := funcs["money"].(func(kpi.Value) string)
	num := funcs["num"].(func(kpi.Value) string)

	if indices, ok := a.store.Table(kpi.TableIndices); ok {
		data.Cards = append(data.Cards,
			metricCard{"Customer Acquisition Cost", money(indices.MetricSeries("CAC").Mean())},
			metricCard{"Monthly Recurring Revenue", money(indices.MetricSeries("MRR").Mean())},
		)
	}
	if marketing, ok := a.store.Table(kpi.TableMarketingGeral); ok {
		data.Cards = append(data.Cards,
			metricCard{"New Followers", num(marketing.MetricSeries("Seguidores").Sum())},
			metricCard{"Ad Investment", money(marketing.MetricSeries("Custo geral de Ads").Sum())},
		)
	}

	a.renderTemplate(w, "executive.html", data)
}

func (a *App) handleMarketingPerformance(w http.ResponseWriter, r *http.Request) {
	marketing, _ := a.store.Table(kpi.TableMarketingGeral)

	var followers kpi.Series
	if marketing != nil {
		followers = marketing.MetricSeries("Seguidores")
	}

	data := struct {
		pageData
		FollowersMean  kpi.Value
		FollowersMax   kpi.Value
		FollowersMin   kpi.Value
		FollowersTotal kpi.Value
		AdsTotal       kpi.Value
		AdsMean        kpi.Value
		ViewsTotal     kpi.Value
		ViewsMean      kpi.Value
	}{
		pageData:       a.page("Marketing Performance", "marketing"),
		FollowersMean:  followers.Mean(),
		FollowersMax:   followers.Max(),
		FollowersMin:   followers.Min(),
		FollowersTotal: followers.Sum(),
	}
	if marketing != nil {
		ads := marketing.MetricSeries("Custo geral de Ads")
		views := marketing.MetricSeries("Visualizações")
		data.AdsTotal = ads.Sum()
		data.AdsMean = ads.Mean()
		data.ViewsTotal = views.Sum()
		data.ViewsMean = views.Mean()
	}

	a.renderTemplate(w, "marketing.html", data)
}

func (a *App) handleLeadAnalytics(w http.ResponseWriter, r *http.Request) {
	data := struct {
		pageData
		Conversion []ConversionRow
	}{
		pageData:   a.page("Lead Analytics", "leads"),
		Conversion: a.store.LeadConversion(),
	}
	a.renderTemplate(w, "leads.html", data)
}

func (a *App) handleFinancialKPIs(w http.ResponseWriter, r *http.Request) {
	indices, _ := a.store.Table(kpi.TableIndices)

	var cac, mrr, roi kpi.Series
	if indices != nil {
		cac = indices.MetricSeries("CAC")
		mrr = indices.MetricSeries("MRR")
		roi = indices.MetricSeries("Recorrente mensal / Custo")
	}

	positive := 0
	for _, v := range roi {
		if v.Valid && v.Float > 1 {
			positive++
		}
	}

	data := struct {
		pageData
		CACMean        kpi.Value
		CACMin         kpi.Value
		CACMax         kpi.Value
		MRRMean        kpi.Value
		MRRTotal       kpi.Value
		ROIMean        kpi.Value
		PositiveMonths int
		MeasuredMonths int
	}{
		pageData:       a.page("Financial KPIs", "financial"),
		CACMean:        cac.Mean(),
		CACMin:         cac.Min(),
		CACMax:         cac.Max(),
		MRRMean:        mrr.Mean(),
		MRRTotal:       mrr.Sum(),
		ROIMean:        roi.Mean(),
		PositiveMonths: positive,
		MeasuredMonths: roi.Count(),
	}
	a.renderTemplate(w, "financial.html", data)
}

// campaignView is the server-side card block of one campaign tab.
type campaignView struct {
	Key         string
	Title       string
	Investment  kpi.Value
	Leads       kpi.Value
	Conversions kpi.Value
	ROIMean     kpi.Value
	// Boleto-specific cards
	Units   kpi.Value
	Savings kpi.Value
	BasePct kpi.Value
}

func (a *App) handleCampaignManagement(w http.ResponseWriter, r *http.Request) {
	data := struct {
		pageData
		Imoveis campaignView
		Boleto  campaignView
		Seguros campaignView
	}{
		pageData: a.page("Campaign Management", "campaigns"),
		Imoveis:  a.campaign("imoveis", "Real Estate", kpi.TableImoveis),
		Boleto:   a.campaign("boleto", "Digital Billing", kpi.TableBoleto),
		Seguros:  a.campaign("seguros", "Insurance", kpi.TableMultiseguros),
	}
	a.renderTemplate(w, "campaigns.html", data)
}

func (a *App) campaign(key, title, tableName string) campaignView {
	view := campaignView{Key: key, Title: title}
	table, ok := a.store.Table(tableName)
	if !ok {
		return view
	}

	if tableName == kpi.TableBoleto {
		view.Units = table.MetricSeries("Nº de Unidades").Max()
		view.Savings = table.MetricSeries("Economia").Sum()
		base := table.MetricSeries("% da base").Max()
		if base.Valid {
			base = kpi.Number(base.Float * 100)
		}
		view.BasePct = base
		return view
	}

	view.Investment = table.MetricSeries("Investimento").Sum()
	view.Leads = table.MetricSeries("Leads Gerados").Sum()
	view.Conversions = table.MetricSeries("Clientes Convertidos").Sum()
	view.ROIMean = table.MetricSeries("ROI").Mean()
	return view
}

func (a *App) handleComparativeAnalysis(w http.ResponseWriter, r *http.Request) {
	imoveis, _ := a.store.Table(kpi.TableImoveis)
	seguros, _ := a.store.Table(kpi.TableMultiseguros)

	row := func(t *TableData) (inv, leads, conv, roi, cpl kpi.Value) {
		if t == nil {
			return
		}
		inv = t.MetricSeries("Investimento").Sum()
		leads = t.MetricSeries("Leads Gerados").Sum()
		conv = t.MetricSeries("Clientes Convertidos").Sum()
		roi = t.MetricSeries("ROI").Mean()
		cpl = kpi.CostPerLead(inv, leads)
		return
	}

	data := struct {
		pageData
		ImInv, ImLeads, ImConv, ImROI, ImCPL kpi.Value
		SeInv, SeLeads, SeConv, SeROI, SeCPL kpi.Value
	}{
		pageData: a.page("Comparative Analysis", "comparative"),
	}
	data.ImInv, data.ImLeads, data.ImConv, data.ImROI, data.ImCPL = row(imoveis)
	data.SeInv, data.SeLeads, data.SeConv, data.SeROI, data.SeCPL = row(seguros)

	a.renderTemplate(w, "comparative.html", data)
}

func (a *App) handleMethodology(w http.ResponseWriter, r *http.Request) {
	source, err := embeddedFiles.ReadFile("methodology.md")
	if err != nil {
		http.Error(w, "Methodology document not found", http.StatusInternalServerError)
		return
	}

	data := struct {
		pageData
		Content string
	}{
		pageData: a.page("Methodology", "methodology"),
		Content:  string(markdown.ToHTML(source, nil, nil)),
	}
	a.renderTemplate(w, "methodology.html", data)
}
