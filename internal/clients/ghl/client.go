package ghl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/boostithub/portfolio-backend/internal/platform/envutil"
	"github.com/boostithub/portfolio-backend/internal/platform/httpx"
	"github.com/boostithub/portfolio-backend/internal/platform/logger"
)

// Client talks to the GoHighLevel REST API. Every call is best-effort:
// a nil Result means the operation did not happen, and the reason has
// already been logged. Callers never see an error from this package.
type Client interface {
	CreateContact(ctx context.Context, in ContactInput) Result
	CreateOpportunity(ctx context.Context, contactID, serviceType string) Result
}

type ContactInput struct {
	Name  string
	Email string
	Phone string
}

// Result is the decoded upstream response body. GoHighLevel answers
// with the contact id either at the top level or nested under a
// "contact" object depending on endpoint version.
type Result map[string]any

func (r Result) ContactID() string {
	if r == nil {
		return ""
	}
	if nested, ok := r["contact"].(map[string]any); ok {
		if id, ok := nested["id"].(string); ok && id != "" {
			return id
		}
	}
	if id, ok := r["id"].(string); ok {
		return id
	}
	return ""
}

type Config struct {
	APIKey     string
	LocationID string
	BaseURL    string
	Timeout    time.Duration
}

func ConfigFromEnv() Config {
	timeoutSec := envutil.Int("GHL_TIMEOUT_SECONDS", 30)
	return Config{
		APIKey:     strings.TrimSpace(os.Getenv("GHL_API_KEY")),
		LocationID: strings.TrimSpace(os.Getenv("GHL_LOCATION_ID")),
		BaseURL:    strings.TrimSpace(os.Getenv("GHL_BASE_URL")),
		Timeout:    time.Duration(timeoutSec) * time.Second,
	}
}

// New never fails on missing credentials: an unconfigured client is a
// valid one whose calls short-circuit, so CRM availability can never
// keep the service from starting.
func New(log *logger.Logger, cfg Config) Client {
	clientLog := log.With("client", "GHLClient")

	if cfg.APIKey == "" {
		clientLog.Warn("GHL_API_KEY not configured, CRM sync disabled")
	}
	if cfg.LocationID == "" {
		clientLog.Warn("GHL_LOCATION_ID not configured, CRM sync disabled")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = "https://rest.gohighlevel.com/v1"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &client{
		log:        clientLog,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type client struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

func (c *client) configured() bool {
	return c.cfg.APIKey != "" && c.cfg.LocationID != ""
}

func (c *client) headers(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
}

type contactPayload struct {
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone,omitempty"`
	LocationID string   `json:"locationId"`
	Source     string   `json:"source"`
	Tags       []string `json:"tags"`
}

func (c *client) CreateContact(ctx context.Context, in ContactInput) Result {
	if !c.configured() {
		c.log.Warn("CRM not configured, skipping contact creation", "email", in.Email)
		return nil
	}

	first, last := splitName(in.Name)
	payload := contactPayload{
		FirstName:  first,
		LastName:   last,
		Email:      in.Email,
		Phone:      in.Phone,
		LocationID: c.cfg.LocationID,
		Source:     leadSource,
		Tags:       []string{"Website Lead", "Portfolio Contact"},
	}

	resp, err := c.postJSON(ctx, c.cfg.BaseURL+"/contacts/", payload)
	if err != nil {
		c.log.Error("CRM contact request failed", "email", in.Email, "error", err)
		return nil
	}
	defer httpx.Drain(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var out Result
		if err := httpx.DecodeJSON(resp.Body, &out); err != nil {
			c.log.Error("CRM contact response decode failed", "email", in.Email, "error", err)
			return nil
		}
		c.log.Info("Created CRM contact", "email", in.Email)
		return out
	case http.StatusConflict:
		// Upstream already has this contact; treat it as success so the
		// opportunity step can still run against a resolvable lead.
		c.log.Info("CRM contact already exists", "email", in.Email)
		return Result{"id": "existing", "message": "Contact already exists"}
	default:
		c.log.Error("CRM contact creation rejected", "email", in.Email, "status", resp.StatusCode)
		return nil
	}
}

type pipelinesResponse struct {
	Pipelines []pipeline `json:"pipelines"`
}

type pipeline struct {
	ID     string          `json:"id"`
	Stages []pipelineStage `json:"stages"`
}

type pipelineStage struct {
	ID string `json:"id"`
}

type opportunityPayload struct {
	Title         string `json:"title"`
	PipelineID    string `json:"pipelineId"`
	LocationID    string `json:"locationId"`
	StageID       string `json:"stageId"`
	Status        string `json:"status"`
	Source        string `json:"source"`
	MonetaryValue int    `json:"monetaryValue"`
	ContactID     string `json:"contactId"`
}

func (c *client) CreateOpportunity(ctx context.Context, contactID, serviceType string) Result {
	if !c.configured() {
		return nil
	}

	target, stage, ok := c.defaultPipeline(ctx)
	if !ok {
		return nil
	}

	payload := opportunityPayload{
		Title:         fmt.Sprintf("%s - Portfolio Inquiry", serviceType),
		PipelineID:    target,
		LocationID:    c.cfg.LocationID,
		StageID:       stage,
		Status:        "open",
		Source:        leadSource,
		MonetaryValue: opportunityValue(serviceType),
		ContactID:     contactID,
	}

	resp, err := c.postJSON(ctx, c.cfg.BaseURL+"/pipelines/"+target+"/opportunities/", payload)
	if err != nil {
		c.log.Error("CRM opportunity request failed", "contact_id", contactID, "error", err)
		return nil
	}
	defer httpx.Drain(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.log.Error("CRM opportunity creation rejected", "contact_id", contactID, "status", resp.StatusCode)
		return nil
	}

	var out Result
	if err := httpx.DecodeJSON(resp.Body, &out); err != nil {
		c.log.Error("CRM opportunity response decode failed", "contact_id", contactID, "error", err)
		return nil
	}
	c.log.Info("Created CRM opportunity", "contact_id", contactID, "pipeline_id", target)
	return out
}

// defaultPipeline resolves the first pipeline and its first stage for
// the configured location. Using the default pipeline is deliberate:
// lead routing beyond that lives in the CRM, not here.
func (c *client) defaultPipeline(ctx context.Context) (pipelineID, stageID string, ok bool) {
	u := c.cfg.BaseURL + "/pipelines/?" + url.Values{"locationId": {c.cfg.LocationID}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		c.log.Error("CRM pipeline request build failed", "error", err)
		return "", "", false
	}
	c.headers(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("CRM pipeline fetch failed", "error", err)
		return "", "", false
	}
	defer httpx.Drain(resp.Body)

	if resp.StatusCode != http.StatusOK {
		c.log.Error("CRM pipeline fetch rejected", "status", resp.StatusCode)
		return "", "", false
	}

	var body pipelinesResponse
	if err := httpx.DecodeJSON(resp.Body, &body); err != nil {
		c.log.Error("CRM pipeline response decode failed", "error", err)
		return "", "", false
	}
	if len(body.Pipelines) == 0 {
		c.log.Error("No CRM pipelines found for location")
		return "", "", false
	}
	first := body.Pipelines[0]
	if len(first.Stages) == 0 {
		c.log.Error("CRM pipeline has no stages", "pipeline_id", first.ID)
		return "", "", false
	}
	return first.ID, first.Stages[0].ID, true
}

func (c *client) postJSON(ctx context.Context, url string, payload any) (*http.Response, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	c.headers(req)
	return c.httpClient.Do(req)
}
