package source

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"sevanear/internal/domain"
)

// Client talks JSON over HTTP to the services backend.
type Client struct {
	Base string
	HTTP *http.Client
}

// NewClient returns a live source for the given base URL. A nil httpClient
// falls back to http.DefaultClient, so timeouts stay with the transport
// unless the caller configures otherwise.
func NewClient(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: base, HTTP: httpClient}
}

func (c *Client) ListHospitals(ctx context.Context) ([]domain.Hospital, error) {
	var out []domain.Hospital
	return out, c.getJSON(ctx, "/hospitals", &out)
}

func (c *Client) ListServiceTypes(ctx context.Context) ([]domain.ServiceType, error) {
	var out []domain.ServiceType
	return out, c.getJSON(ctx, "/service-types", &out)
}

func (c *Client) FilterServices(
	ctx context.Context,
	hospital domain.HospitalID,
	serviceType domain.ServiceTypeID,
) ([]domain.Service, error) {
	q := url.Values{}
	q.Set("hospital_id", hospital.String())
	if !serviceType.All() {
		q.Set("service_type_id", strconv.Itoa(int(serviceType)))
	}
	var out []domain.Service
	return out, c.getJSON(ctx, "/services/filter?"+q.Encode(), &out)
}

func (c *Client) GetService(ctx context.Context, id domain.ServiceID) (domain.Service, error) {
	var out domain.Service
	if err := c.getJSON(ctx, "/services/"+url.PathEscape(id.String()), &out); err != nil {
		return domain.Service{}, err
	}
	return out, nil
}

func (c *Client) NearbyServices(
	ctx context.Context,
	at domain.Coordinate,
	radiusKm float64,
) ([]domain.Service, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(at.Latitude, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(at.Longitude, 'f', -1, 64))
	q.Set("radius", strconv.FormatFloat(radiusKm, 'f', -1, 64))
	var out []domain.Service
	return out, c.getJSON(ctx, "/services/nearby?"+q.Encode(), &out)
}

func (c *Client) CreateService(
	ctx context.Context,
	draft domain.ServiceDraft,
) (domain.CreateAck, error) {
	var out domain.CreateAck
	if err := c.post(ctx, "/services", draft, &out); err != nil {
		return domain.CreateAck{}, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do executes the request, turning non-2xx statuses into *domain.BackendError
// with the raw body attached. 2xx bodies decode as JSON with no schema
// validation; shape mismatches surface later at render time.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(resp.Body)
		return &domain.BackendError{
			Method:     req.Method,
			URL:        req.URL.String(),
			Status:     resp.Status,
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Compile-time assertion that Client implements domain.Source.
var _ domain.Source = (*Client)(nil)
