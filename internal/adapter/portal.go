package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/agent-portal/internal/config"
	"github.com/MKhiriev/agent-portal/internal/logger"
	"github.com/MKhiriev/agent-portal/internal/utils"
	"github.com/MKhiriev/agent-portal/models"
	"github.com/go-resty/resty/v2"
)

type httpPortalAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPPortalAdapter constructs an HTTP/REST implementation of
// [PortalAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPPortalAdapter(adapterCfg config.Adapter, logger *logger.Logger) (PortalAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: adapter http address: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient().WithTimeout(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpPortalAdapter{client: client, logger: logger}, nil
}

// ListCharacters implements [PortalAdapter]. It GETs /api/characters.
func (h *httpPortalAdapter) ListCharacters(ctx context.Context) ([]models.Character, error) {
	resp, err := h.request(ctx).Get("/api/characters")
	if err != nil {
		return nil, fmt.Errorf("list characters request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var cr models.CharactersResponse
	if err = json.Unmarshal(resp.Body(), &cr); err != nil {
		return nil, fmt.Errorf("decode characters response: %w", err)
	}
	if cr.Characters == nil {
		return []models.Character{}, nil
	}

	return cr.Characters, nil
}

// Synchronize implements [PortalAdapter]. It POSTs the target name to
// /api/sync and decodes the run report. Returns [ErrNotFound] (wrapped) when
// the catalog does not know the name and [ErrBadGateway] (wrapped) when the
// catalog rejected the lookup.
func (h *httpPortalAdapter) Synchronize(ctx context.Context, name string) (models.SyncReport, error) {
	var report models.SyncReport

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SyncRequest{Name: name}).
		SetResult(&report).
		Post("/api/sync")
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("synchronize request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncReport{}, err
	}

	return report, nil
}

// Purge implements [PortalAdapter]. It sends DELETE /api/characters.
func (h *httpPortalAdapter) Purge(ctx context.Context) error {
	resp, err := h.request(ctx).Delete("/api/characters")
	if err != nil {
		return fmt.Errorf("purge request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [PortalAdapter]. It GETs /api/version/.
func (h *httpPortalAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.request(ctx).SetResult(&version).Get("/api/version/")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func (h *httpPortalAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}
