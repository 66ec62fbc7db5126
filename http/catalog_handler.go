package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"calculator-api/service"
)

// CatalogHandler serves the tool catalog, presets, history and sitemaps.
type CatalogHandler struct {
	sitemaps    *service.SitemapService
	calculators *service.CalculatorService
	rates       service.RateSource
}

func NewCatalogHandler(sitemaps *service.SitemapService, calculators *service.CalculatorService, rates service.RateSource) *CatalogHandler {
	return &CatalogHandler{sitemaps: sitemaps, calculators: calculators, rates: rates}
}

func (h *CatalogHandler) Tools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.sitemaps.Tools())
}

type presetsResponse struct {
	Countries  any      `json:"countries"`
	Drinks     any      `json:"drinks"`
	Currencies []string `json:"currencies"`
}

func (h *CatalogHandler) Presets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, presetsResponse{
		Countries:  service.Countries(),
		Drinks:     service.DrinkPresets(),
		Currencies: service.Symbols(h.rates.Rates(r.Context())),
	})
}

func (h *CatalogHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	calcs, err := h.calculators.History(r.Context(), r.URL.Query().Get("tool"), limit)
	if err != nil {
		slog.Error("listing history", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, calcs)
}

// Sitemap serves sitemap.xml and sitemap-<name>.xml.
func (h *CatalogHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")

	var (
		data []byte
		err  error
	)
	if file == "sitemap.xml" {
		data, err = h.sitemaps.Index()
	} else {
		name, ok := strings.CutPrefix(file, "sitemap-")
		if !ok || !strings.HasSuffix(name, ".xml") {
			http.NotFound(w, r)
			return
		}
		data, err = h.sitemaps.Sitemap(strings.TrimSuffix(name, ".xml"))
	}
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if _, err := w.Write(data); err != nil {
		slog.Warn("error writing sitemap", "file", file, "error", err)
	}
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}
