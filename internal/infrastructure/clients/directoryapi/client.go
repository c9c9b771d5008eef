// Package directoryapi is the HTTP client for the remote directory
// service that publishes tutor and job listings. Records arrive as
// loosely-typed key/value objects; normalization happens downstream.
package directoryapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is the surface consumed by the catalog adapters.
type Client interface {
	// ListTutors fetches the raw tutor batch, upstream order preserved.
	ListTutors(ctx context.Context) ([]map[string]any, error)

	// GetTutor fetches one raw record by batch position.
	GetTutor(ctx context.Context, id int) (map[string]any, error)

	// ListJobs fetches the raw job postings.
	ListJobs(ctx context.Context) ([]map[string]any, error)

	// GetLocations fetches the Province/District/Tehsil/Area mapping.
	GetLocations(ctx context.Context) (map[string]map[string]map[string][]string, error)

	// RegisterTutor submits a registration as multipart/form-data.
	RegisterTutor(ctx context.Context, form RegistrationForm) error
}

// RegistrationForm carries the multipart fields of POST /tutors/register.
type RegistrationForm struct {
	Name           string
	Qualification  string
	Subject        string
	MajorSubjects  string
	Experience     int
	Phone          string
	Bio            string
	ExactLocation  string
	Lat            string
	Lng            string
	RecaptchaToken string
	ImageName      string
	Image          []byte
}

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given upstream base URL. The timeout
// bounds each request; fetch failures are surfaced, never retried.
func NewClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListTutors fetches GET /tutors.
func (c *HTTPClient) ListTutors(ctx context.Context) ([]map[string]any, error) {
	var out []map[string]any
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/tutors", nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTutor fetches GET /tutors/{id}.
func (c *HTTPClient) GetTutor(ctx context.Context, id int) (map[string]any, error) {
	if id < 0 {
		return nil, fmt.Errorf("tutor id must be non-negative")
	}
	endpoint := fmt.Sprintf("%s/tutors/%s", c.baseURL, url.PathEscape(fmt.Sprintf("%d", id)))
	var out map[string]any
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListJobs fetches GET /jobs. The upstream wraps the array in {"jobs": [...]}
// on some deployments and returns a bare array on others; both are accepted.
func (c *HTTPClient) ListJobs(ctx context.Context) ([]map[string]any, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/jobs", nil, "", &raw); err != nil {
		return nil, err
	}

	var bare []map[string]any
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}

	var wrapped struct {
		Jobs []map[string]any `json:"jobs"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("unexpected jobs payload: %w", err)
	}
	return wrapped.Jobs, nil
}

// GetLocations fetches GET /locations.
func (c *HTTPClient) GetLocations(ctx context.Context) (map[string]map[string]map[string][]string, error) {
	var out map[string]map[string]map[string][]string
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/locations", nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterTutor submits POST /tutors/register as multipart/form-data.
func (c *HTTPClient) RegisterTutor(ctx context.Context, form RegistrationForm) error {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"recaptcha_token": form.RecaptchaToken,
		"name":            form.Name,
		"qualification":   form.Qualification,
		"subject":         form.Subject,
		"major_subjects":  form.MajorSubjects,
		"experience":      fmt.Sprintf("%d", form.Experience),
		"phone":           form.Phone,
		"bio":             form.Bio,
		"exactLocation":   form.ExactLocation,
		"lat":             form.Lat,
		"lng":             form.Lng,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}

	if len(form.Image) > 0 {
		name := form.ImageName
		if name == "" {
			name = "profile.jpg"
		}
		part, err := writer.CreateFormFile("image", name)
		if err != nil {
			return fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := part.Write(form.Image); err != nil {
			return fmt.Errorf("failed to write image part: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	return c.doJSON(ctx, http.MethodPost, c.baseURL+"/tutors/register", body, writer.FormDataContentType(), nil)
}

func (c *HTTPClient) doJSON(ctx context.Context, method, endpoint string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("directory api returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return err
	}
	return nil
}
