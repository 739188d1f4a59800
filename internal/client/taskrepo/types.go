package taskrepo

import (
	"encoding/json"
	"time"
)

// timeFormat is the wire format the API serves timestamps in.
const timeFormat = "2006-01-02 15:04:05"

// APITime is a timestamp in the API's wire format.
type APITime time.Time

// UnmarshalJSON implements json.Unmarshaler for APITime.
func (t *APITime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(timeFormat, s)
	if err != nil {
		return err
	}
	*t = APITime(parsed)
	return nil
}

// MarshalJSON implements json.Marshaler for APITime.
func (t APITime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(timeFormat))
}

// Time returns the underlying time.Time.
func (t APITime) Time() time.Time { return time.Time(t) }

// Task is the task resource as served by the API.
type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	User        string  `json:"user"`
	CreatedAt   APITime `json:"created_at"`

	// Derived display fields, present on detail reads only.
	WordCount int  `json:"word_count,omitempty"`
	IsRecent  bool `json:"is_recent,omitempty"`
}

// Page is one page of the task listing. Count is the total across all
// pages, not the page length; Next/Previous are absolute page URLs or nil
// at the edges.
type Page struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Task  `json:"results"`
}

// ListParams narrows and pages the task listing. Zero values are omitted
// from the query string.
type ListParams struct {
	Page     int
	PageSize int
	Search   string
	Ordering string
}

// CreateInput is the body for task creation.
type CreateInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// UpdateInput is the partial body for task updates; nil fields are left
// untouched by the server.
type UpdateInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}
