package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/ggrinberger/grindlog-sub000/internal/config"

	"github.com/gorilla/mux"
)

const DateLayout = "2006-01-02"

// DecodeJSON decodes the request body into v, rejecting unknown fields.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return BadRequest("request body is required")
	}
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return BadRequest("request body is required")
		}
		return BadRequestf("invalid request body: %s", err)
	}
	return nil
}

// DecodeOptionalJSON is DecodeJSON for endpoints where the body may be left out.
// It reports whether a body was present; an empty chunked body counts as absent.
func DecodeOptionalJSON(r *http.Request, v any) (bool, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return false, nil
	}
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, BadRequestf("invalid request body: %s", err)
	}
	return true, nil
}

// PathID reads a positive integer path variable.
func PathID(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok || raw == "" {
		return 0, BadRequestf("missing %s", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, BadRequestf("invalid %s", name)
	}
	return id, nil
}

// QueryDate reads a YYYY-MM-DD query parameter, falling back to today (UTC).
func QueryDate(r *http.Request, name string, now time.Time) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		y, m, d := now.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, BadRequestf("invalid %s, expected YYYY-MM-DD", name)
	}
	return date, nil
}

type Page struct {
	Limit  int
	Offset int
}

// QueryPage reads limit/offset. Limits above the max are clamped.
func QueryPage(r *http.Request, defaults config.Pagination) (Page, error) {
	page := Page{Limit: defaults.DefaultLimit}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return Page{}, BadRequest("invalid limit")
		}
		if limit > 0 {
			page.Limit = limit
		}
	}
	if page.Limit > defaults.MaxLimit {
		page.Limit = defaults.MaxLimit
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return Page{}, BadRequest("invalid offset")
		}
		page.Offset = offset
	}

	return page, nil
}
