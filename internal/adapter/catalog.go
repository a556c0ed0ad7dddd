package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/agent-portal/internal/config"
	"github.com/MKhiriev/agent-portal/internal/logger"
	"github.com/MKhiriev/agent-portal/internal/utils"
	"github.com/MKhiriev/agent-portal/models"
)

const (
	charactersPath = "/v1/public/characters"
	workCharacters = "characters"

	paramTimestamp = "ts"
	paramAPIKey    = "apikey"
	paramHash      = "hash"
	paramName      = "name"
)

type httpCatalogAdapter struct {
	client *utils.HTTPClient
	agent  config.Agent
	now    func() time.Time

	logger *logger.Logger
}

// NewHTTPCatalogAdapter constructs an HTTP implementation of [CatalogAdapter].
// catalogCfg.BaseURL is normalised and used for by-name lookups; work lookups
// follow the absolute URIs handed out by the catalog itself.
// catalogCfg.RequestTimeout bounds each request when positive.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewHTTPCatalogAdapter(catalogCfg config.Catalog, agentCfg config.Agent, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(catalogCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: catalog base url: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient().WithTimeout(catalogCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpCatalogAdapter{
		client: client,
		agent:  agentCfg,
		now:    time.Now,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// authParams returns the query parameters every catalog call must carry.
// The timestamp is taken per call, so two calls in different seconds carry
// different digests.
func (c *httpCatalogAdapter) authParams() map[string]string {
	ts := strconv.FormatInt(c.now().Unix(), 10)

	return map[string]string{
		paramTimestamp: ts,
		paramAPIKey:    c.agent.PublicKey,
		paramHash:      utils.CatalogDigest(ts, c.agent.PrivateKey, c.agent.PublicKey),
	}
}

// FindCharacterByName implements [CatalogAdapter]. It GETs
// {base}/v1/public/characters?name=... and classifies the envelope.
func (c *httpCatalogAdapter) FindCharacterByName(ctx context.Context, name string) (models.CharacterLookup, error) {
	log := c.logger.With().Str("func", "httpCatalogAdapter.FindCharacterByName").Str("name", name).Logger()

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(c.authParams()).
		SetQueryParam(paramName, name).
		Get(charactersPath)
	if err != nil {
		return models.CharacterLookup{}, fmt.Errorf("find character by name request: %w", err)
	}

	raw := string(resp.Body())

	var payload models.CatalogResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		log.Error().Err(err).Int("http_status", resp.StatusCode()).Str("body", raw).Msg("undecodable catalog response")
		return models.CharacterLookup{Status: models.LookupBadStatus, Code: resp.StatusCode(), Raw: raw}, nil
	}

	code, ok := resolveStatus(payload.Code, resp.StatusCode())
	if !ok {
		log.Error().Int("code", code).Str("status", payload.Status).Str("body", raw).Msg("catalog answered with non-success code")
		return models.CharacterLookup{Status: models.LookupBadStatus, Code: code, Raw: raw}, nil
	}

	if len(payload.Data.Results) == 0 {
		log.Error().Str("body", raw).Msg("character not found")
		return models.CharacterLookup{Status: models.LookupNotFound, Code: code, Raw: raw}, nil
	}

	if len(payload.Data.Results) > 1 {
		log.Debug().Int("results", len(payload.Data.Results)).Msg("multiple matches, using the first one")
	}

	return models.CharacterLookup{
		Status:    models.LookupFound,
		Character: payload.Data.Results[0],
		Code:      code,
		Raw:       raw,
	}, nil
}

// GetWorkCharacters implements [CatalogAdapter]. It GETs {workURI}/characters.
func (c *httpCatalogAdapter) GetWorkCharacters(ctx context.Context, workURI string) ([]models.CatalogCharacter, error) {
	log := c.logger.With().Str("func", "httpCatalogAdapter.GetWorkCharacters").Str("work_uri", workURI).Logger()

	endpoint, err := workCharactersURL(workURI)
	if err != nil {
		return nil, fmt.Errorf("%w: work uri %q: %w", ErrInvalidAddress, workURI, err)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(c.authParams()).
		Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("get work characters request: %w", err)
	}

	var payload models.CatalogResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		log.Error().Err(err).Int("http_status", resp.StatusCode()).Msg("undecodable catalog response, skipping work")
		return []models.CatalogCharacter{}, nil
	}

	code, ok := resolveStatus(payload.Code, resp.StatusCode())
	if !ok {
		log.Error().Int("code", code).Str("status", payload.Status).Msg("catalog answered with non-success code, skipping work")
		return []models.CatalogCharacter{}, nil
	}

	if payload.Data.Results == nil {
		return []models.CatalogCharacter{}, nil
	}

	return payload.Data.Results, nil
}

// workCharactersURL appends the characters segment to the work path. A query
// already carried by the reference is kept.
func workCharactersURL(workURI string) (string, error) {
	u, err := url.Parse(workURI)
	if err != nil {
		return "", err
	}

	return u.JoinPath(workCharacters).String(), nil
}

// resolveStatus picks the code a response is judged by: the envelope code
// when present, the HTTP status otherwise.
func resolveStatus(code models.StatusCode, httpStatus int) (int, bool) {
	if !code.Set {
		return httpStatus, httpStatus == http.StatusOK
	}

	return code.Value, code.IsOK()
}
