package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// VINClient decodes vehicle identification numbers against the NHTSA vPIC
// service. It is an out-of-process collaborator: callers treat failures as
// advisory and never block a write on it.
type VINClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewVINClient(baseURL string, timeout time.Duration) *VINClient {
	return &VINClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type DecodedVIN struct {
	VIN       string `json:"vin"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	ModelYear string `json:"model_year"`
	Trim      string `json:"trim"`
	BodyClass string `json:"body_class"`
	ErrorCode string `json:"error_code,omitempty"`
}

type decodeVinValuesResponse struct {
	Results []struct {
		Make      string `json:"Make"`
		Model     string `json:"Model"`
		ModelYear string `json:"ModelYear"`
		Trim      string `json:"Trim"`
		BodyClass string `json:"BodyClass"`
		ErrorCode string `json:"ErrorCode"`
	} `json:"Results"`
}

func (c *VINClient) Decode(ctx context.Context, vin string) (*DecodedVIN, error) {
	endpoint := fmt.Sprintf("%s/vehicles/DecodeVinValues/%s?format=json",
		c.baseURL, url.PathEscape(vin))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vin decode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vin decode: unexpected status %d", resp.StatusCode)
	}

	var payload decodeVinValuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("vin decode: malformed response: %w", err)
	}
	if len(payload.Results) == 0 {
		return nil, fmt.Errorf("vin decode: empty result set")
	}

	result := payload.Results[0]
	return &DecodedVIN{
		VIN:       vin,
		Make:      result.Make,
		Model:     result.Model,
		ModelYear: result.ModelYear,
		Trim:      result.Trim,
		BodyClass: result.BodyClass,
		ErrorCode: result.ErrorCode,
	}, nil
}
