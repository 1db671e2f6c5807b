// Package handlers provides HTTP handlers for the mat configurator API.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/assetpath"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/observability"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/resolver"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/vocabulary"
)

// Resolver resolves form selections to stored records.
type Resolver interface {
	Resolve(ctx context.Context, form vocabulary.FormConfiguration) (*resolver.Result, error)
}

// ConfiguratorHandler serves preview lookups for the configurator form.
type ConfiguratorHandler struct {
	logger    *observability.Logger
	resolver  Resolver
	generator *assetpath.Generator
}

// NewConfiguratorHandler creates a new configurator handler.
func NewConfiguratorHandler(logger *observability.Logger, res Resolver, gen *assetpath.Generator) *ConfiguratorHandler {
	return &ConfiguratorHandler{
		logger:    logger.WithComponent("configurator_handler"),
		resolver:  res,
		generator: gen,
	}
}

// ConfigurationDTO is a configuration as sent by the form.
type ConfigurationDTO struct {
	MatType       string `json:"matType"`
	CellStructure string `json:"cellStructure"`
	MaterialColor string `json:"materialColor"`
	BorderColor   string `json:"borderColor"`
}

func (d ConfigurationDTO) form() vocabulary.FormConfiguration {
	return vocabulary.FormConfiguration{
		MatType:       d.MatType,
		CellStructure: d.CellStructure,
		MaterialColor: d.MaterialColor,
		BorderColor:   d.BorderColor,
	}
}

// CanonicalDTO is a configuration in stored vocabulary.
type CanonicalDTO struct {
	MatType       string `json:"matType"`
	CellStructure string `json:"cellStructure"`
	MaterialColor string `json:"materialColor"`
	BorderColor   string `json:"borderColor"`
}

func toCanonicalDTO(c vocabulary.CanonicalConfiguration) CanonicalDTO {
	return CanonicalDTO{
		MatType:       string(c.MatType),
		CellStructure: string(c.CellStructure),
		MaterialColor: c.MaterialColor,
		BorderColor:   c.BorderColor,
	}
}

// RecordDTO is a stored configuration record.
type RecordDTO struct {
	ID            string `json:"id"`
	MatType       string `json:"matType"`
	CellStructure string `json:"cellStructure"`
	MaterialColor string `json:"materialColor"`
	BorderColor   string `json:"borderColor"`
	ImagePath     string `json:"imagePath"`
	UpdatedAt     string `json:"updatedAt"`
}

// ResolveResponseDTO is the response of POST /resolve.
type ResolveResponseDTO struct {
	Status             string       `json:"status"`
	ImagePath          string       `json:"imagePath,omitempty"`
	Record             *RecordDTO   `json:"record,omitempty"`
	Canonical          CanonicalDTO `json:"canonical"`
	MaterialCandidates []string     `json:"materialCandidates,omitempty"`
	BorderCandidates   []string     `json:"borderCandidates,omitempty"`
	Alternatives       int          `json:"alternatives"`
}

// Resolve handles POST /resolve.
func (h *ConfiguratorHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ConfigurationDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	form := req.form()
	if err := form.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid configuration", err.Error())
		return
	}

	result, err := h.resolver.Resolve(ctx, form)
	if err != nil {
		if errors.Is(err, resolver.ErrStoreUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "record store unavailable", "")
			return
		}
		h.logger.WithContext(ctx).Error().Err(err).Msg("Resolve failed")
		writeError(w, http.StatusInternalServerError, "resolve failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toResolveResponseDTO(result))
}

func toResolveResponseDTO(result *resolver.Result) ResolveResponseDTO {
	dto := ResolveResponseDTO{
		Status:             string(result.Status),
		Canonical:          toCanonicalDTO(result.Canonical),
		MaterialCandidates: result.MaterialCandidates,
		BorderCandidates:   result.BorderCandidates,
		Alternatives:       result.Alternatives,
	}
	if rec := result.Record; rec != nil {
		dto.ImagePath = rec.ImagePath
		dto.Record = &RecordDTO{
			ID:            rec.ID.String(),
			MatType:       rec.MatType,
			CellStructure: rec.CellStructure,
			MaterialColor: rec.MaterialColor,
			BorderColor:   rec.BorderColor,
			ImagePath:     rec.ImagePath,
			UpdatedAt:     rec.UpdatedAt.UTC().Format(time.RFC3339),
		}
	}
	return dto
}

// AssetPathRequestDTO is the request of POST /asset-path. With Form set the
// configuration holds form options and is normalized first; otherwise it is
// taken as stored vocabulary.
type AssetPathRequestDTO struct {
	ConfigurationDTO
	Form bool `json:"form,omitempty"`
}

// AssetPathResponseDTO is the response of POST /asset-path.
type AssetPathResponseDTO struct {
	Canonical CanonicalDTO `json:"canonical"`
	Path      string       `json:"path"`
}

// AssetPath handles POST /asset-path.
func (h *ConfiguratorHandler) AssetPath(w http.ResponseWriter, r *http.Request) {
	var req AssetPathRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	form := req.form()
	if err := form.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid configuration", err.Error())
		return
	}

	canonical := vocabulary.CanonicalConfiguration{
		MatType:       vocabulary.MatType(form.MatType),
		CellStructure: vocabulary.CellStructure(form.CellStructure),
		MaterialColor: form.MaterialColor,
		BorderColor:   form.BorderColor,
	}
	if req.Form {
		canonical = vocabulary.Normalize(form)
	}

	path, err := h.generator.Generate(canonical)
	if err != nil {
		if errors.Is(err, assetpath.ErrUnmappedToken) {
			writeError(w, http.StatusUnprocessableEntity, "configuration has no asset path", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "path generation failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, AssetPathResponseDTO{
		Canonical: toCanonicalDTO(canonical),
		Path:      path,
	})
}

// Options handles GET /options.
func (h *ConfiguratorHandler) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, vocabulary.FormOptions())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message, detail string) {
	resp := map[string]string{
		"error":   message,
		"message": message,
	}
	if detail != "" {
		resp["detail"] = detail
	}
	writeJSON(w, status, resp)
}
