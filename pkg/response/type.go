package response

import (
	"encoding/json"
	"time"
)

// PaginatedResp is the page-number pagination envelope: total count across
// all pages plus absolute URLs of the adjacent pages (null at the edges).
type PaginatedResp struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

// ErrorResp is the standard error body for task endpoints.
type ErrorResp struct {
	Error string `json:"error"`
}

// DetailResp is the error body for authentication endpoints.
type DetailResp struct {
	Detail string `json:"detail"`
}

// DateTime is a timestamp that marshals as DateTimeFormat.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateTimeFormat))
}

// UnmarshalJSON implements json.Unmarshaler for DateTime.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateTimeFormat, s)
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}
