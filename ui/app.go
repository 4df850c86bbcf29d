package ui

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/adapters/excel"
	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/domain/kpi"
)

//go:embed templates/* static/* methodology.md
var embeddedFiles embed.FS

// App represents the dashboard application
type App struct {
	router    *chi.Mux
	store     *Store
	templates *template.Template
	port      string
}

// Config holds dashboard application configuration
type Config struct {
	Port         string
	PreparedFile string
}

// NewApp loads the prepared workbook and builds the dashboard application
func NewApp(config Config) (*App, error) {
	reader := excel.NewPreparedReader(config.PreparedFile)
	observations, summaries, err := reader.Read(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load prepared workbook: %w", err)
	}

	return newAppWithStore(NewStore(observations, summaries), config.Port)
}

// newAppWithStore wires a pre-built store; tests use it directly.
func newAppWithStore(store *Store, port string) (*App, error) {
	templates, err := template.New("").Funcs(templateFuncs()).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		store:     store,
		templates: templates,
		port:      port,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"money": func(v kpi.Value) string {
			if !v.Valid {
				return "—"
			}
			return fmt.Sprintf("R$ %.2f", v.Float)
		},
		"num": func(v kpi.Value) string {
			if !v.Valid {
				return "—"
			}
			return fmt.Sprintf("%.0f", v.Float)
		},
		"pct": func(v kpi.Value) string {
			if !v.Valid {
				return "—"
			}
			return fmt.Sprintf("%.1f%%", v.Float)
		},
		"ratio": func(v kpi.Value) string {
			if !v.Valid {
				return "—"
			}
			return fmt.Sprintf("%.2fx", v.Float)
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	// Dashboard pages
	a.router.Get("/", a.handleExecutiveSummary)
	a.router.Get("/marketing", a.handleMarketingPerformance)
	a.router.Get("/leads", a.handleLeadAnalytics)
	a.router.Get("/financial", a.handleFinancialKPIs)
	a.router.Get("/campaigns", a.handleCampaignManagement)
	a.router.Get("/comparative", a.handleComparativeAnalysis)
	a.router.Get("/methodology", a.handleMethodology)

	// Chart data API
	a.router.Get("/api/summary", a.handleAPISummary)
	a.router.Get("/api/series", a.handleAPISeries)
	a.router.Get("/api/leads/sources", a.handleAPILeadSources)
	a.router.Get("/api/leads/conversion", a.handleAPILeadConversion)
	a.router.Get("/api/campaigns/{campaign}", a.handleAPICampaign)
	a.router.Get("/api/compare", a.handleAPICompare)
	a.router.Get("/api/trend", a.handleAPITrend)
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.port
	log.Printf("Starting BAP Marketing Analytics dashboard on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Handler exposes the router; tests drive it through httptest.
func (a *App) Handler() http.Handler {
	return a.router
}

// Template helpers
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}
