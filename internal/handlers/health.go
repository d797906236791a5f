package handlers

import (
	"net/http"

	"geotransect-api/internal/common/config"
	apperrors "geotransect-api/internal/common/errors"
	"geotransect-api/internal/common/logger"
	"geotransect-api/internal/store"
)

const (
	maxCollectionsReported = 10
	maxErrorDetailLength   = 50
)

// statusResponse mirrors the diagnostic shape the frontend already consumes.
// DatabaseURL and DatabaseName stay null until a store handle exists.
type statusResponse struct {
	Backend          string      `json:"backend"`
	Database         string      `json:"database"`
	DatabaseURL      interface{} `json:"database_url"`
	DatabaseName     interface{} `json:"database_name"`
	ConnectionStatus string      `json:"connection_status"`
	Collections      []string    `json:"collections"`
}

// HealthHandler serves the diagnostic endpoint. It is the one endpoint
// designed to never fail the request: every internal failure is converted
// into a human-readable status string.
type HealthHandler struct {
	store  store.Store
	cfg    *config.Config
	logger logger.Logger
}

func NewHealthHandler(st store.Store, cfg *config.Config, log logger.Logger) *HealthHandler {
	return &HealthHandler{
		store:  st,
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"handler": "health"}),
	}
}

func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.store == nil {
		resp.Database = "⚠️ Available but not initialized"
		respondJSON(w, http.StatusOK, resp)
		return
	}

	resp.Database = "✅ Available"
	resp.ConnectionStatus = "Connected"

	// Presence checks only; the values are not validated here.
	if h.cfg.Database.Mongo.URL != "" {
		resp.DatabaseURL = "✅ Set"
	} else {
		resp.DatabaseURL = "❌ Not Set"
	}
	if h.cfg.Database.Mongo.Name != "" {
		resp.DatabaseName = h.cfg.Database.Mongo.Name
	} else {
		resp.DatabaseName = "❌ Not Set"
	}

	names, err := h.store.ListCollectionNames(r.Context())
	if err != nil {
		h.logger.Warn("collection listing failed", map[string]interface{}{
			"error": err.Error(),
		})
		resp.Database = "⚠️ Connected but Error: " + apperrors.Truncate(err.Error(), maxErrorDetailLength)
		respondJSON(w, http.StatusOK, resp)
		return
	}

	if len(names) > maxCollectionsReported {
		names = names[:maxCollectionsReported]
	}
	if names == nil {
		names = []string{}
	}
	resp.Collections = names
	resp.Database = "✅ Connected & Working"

	respondJSON(w, http.StatusOK, resp)
}
