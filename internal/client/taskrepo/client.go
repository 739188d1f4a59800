package taskrepo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Kenyi45/task-manager/internal/client/apierr"
	pkgLog "github.com/Kenyi45/task-manager/pkg/log"
)

type implRepository struct {
	baseURL    string
	httpClient *http.Client
	l          pkgLog.Logger
}

// New creates the HTTP-backed task repository. The client is expected to be
// the auth-injecting wrapper from the httpclient package.
func New(baseURL string, httpClient *http.Client, l pkgLog.Logger) Repository {
	return &implRepository{
		baseURL:    baseURL,
		httpClient: httpClient,
		l:          l,
	}
}

func (r *implRepository) FindAll(ctx context.Context, params ListParams) (Page, error) {
	u := fmt.Sprintf("%s/api/tasks/", r.baseURL)
	if qs := buildQuery(params); qs != "" {
		u += "?" + qs
	}

	var page Page
	if err := r.doJSON(ctx, http.MethodGet, u, nil, &page); err != nil {
		return Page{}, err
	}
	if page.Results == nil {
		page.Results = []Task{}
	}
	return page, nil
}

func (r *implRepository) FindByID(ctx context.Context, id int64) (Task, error) {
	u := fmt.Sprintf("%s/api/tasks/%d/", r.baseURL, id)

	var t Task
	if err := r.doJSON(ctx, http.MethodGet, u, nil, &t); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (r *implRepository) Create(ctx context.Context, input CreateInput) (Task, error) {
	u := fmt.Sprintf("%s/api/tasks/", r.baseURL)

	var t Task
	if err := r.doJSON(ctx, http.MethodPost, u, input, &t); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (r *implRepository) Update(ctx context.Context, id int64, input UpdateInput) (Task, error) {
	u := fmt.Sprintf("%s/api/tasks/%d/", r.baseURL, id)

	var t Task
	if err := r.doJSON(ctx, http.MethodPatch, u, input, &t); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (r *implRepository) Delete(ctx context.Context, id int64) error {
	u := fmt.Sprintf("%s/api/tasks/%d/", r.baseURL, id)
	return r.doJSON(ctx, http.MethodDelete, u, nil, nil)
}

// FindByTitle runs a server-side title/description search.
func (r *implRepository) FindByTitle(ctx context.Context, query string) ([]Task, error) {
	page, err := r.FindAll(ctx, ListParams{Search: query})
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

// FindRecent returns tasks created within the last 24 hours, newest first.
// Pages are walked in descending creation order, so the walk stops as soon
// as a task falls outside the window.
func (r *implRepository) FindRecent(ctx context.Context) ([]Task, error) {
	cutoff := time.Now().Add(-24 * time.Hour)

	var recent []Task
	page := 1
	for {
		p, err := r.FindAll(ctx, ListParams{Ordering: "-created_at", Page: page, PageSize: 100})
		if err != nil {
			return nil, err
		}
		for _, t := range p.Results {
			if !t.CreatedAt.Time().After(cutoff) {
				return recent, nil
			}
			recent = append(recent, t)
		}
		if p.Next == nil {
			return recent, nil
		}
		page++
	}
}

// doJSON performs one request and decodes the response into out (when
// non-nil). This is the single point where transport and server failures are
// normalized into the structured error shape.
func (r *implRepository) doJSON(ctx context.Context, method, u string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return apierr.Transport(fmt.Errorf("failed to marshal request: %w", err))
		}
		reader = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return apierr.Transport(fmt.Errorf("failed to build request: %w", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.l.Errorf(ctx, "task repository: %s %s failed: %v", method, u, err)
		return apierr.Transport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return r.normalizeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apierr.Transport(fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// normalizeError maps a non-2xx response body into the structured error.
func (r *implRepository) normalizeError(resp *http.Response) *apierr.Error {
	raw, _ := io.ReadAll(resp.Body)

	out := &apierr.Error{
		Message: http.StatusText(resp.StatusCode),
		Status:  resp.StatusCode,
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return out
	}

	if msg, ok := body["error"].(string); ok {
		out.Message = msg
	} else if msg, ok := body["detail"].(string); ok {
		out.Message = msg
	}

	// Remaining string fields become field-level details.
	for k, v := range body {
		if k == "error" || k == "detail" {
			continue
		}
		if s, ok := v.(string); ok {
			if out.Details == nil {
				out.Details = map[string]string{}
			}
			out.Details[k] = s
		}
	}
	return out
}

func buildQuery(params ListParams) string {
	q := url.Values{}
	if params.Page > 1 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(params.PageSize))
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Ordering != "" {
		q.Set("ordering", params.Ordering)
	}
	return q.Encode()
}
