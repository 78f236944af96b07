package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"
)

var errNotInteger = errors.New("not an integer")

// requestFields merges a JSON or form body with the query string, so older
// clients can send a parameter in any of them and under any of its aliases.
// Body values take precedence over the query.
type requestFields map[string]any

func readFields(w http.ResponseWriter, r *http.Request) requestFields {
	f := requestFields{}
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err == nil || errors.Is(err, http.ErrNotMultipart) {
			for k, v := range r.PostForm {
				if len(v) > 0 {
					f[k] = v[0]
				}
			}
		}
	default:
		if r.Body != nil {
			body, err := io.ReadAll(r.Body)
			if err == nil && len(bytes.TrimSpace(body)) > 0 {
				var m map[string]any
				// a malformed body is treated as empty
				if json.Unmarshal(body, &m) == nil {
					for k, v := range m {
						f[k] = v
					}
				}
			}
		}
	}

	for k, v := range r.URL.Query() {
		if _, ok := f[k]; !ok && len(v) > 0 {
			f[k] = v[0]
		}
	}
	return f
}

// String returns the first non-empty value among keys.
func (f requestFields) String(keys ...string) string {
	for _, k := range keys {
		switch v := f[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(v)
		}
	}
	return ""
}

// Int returns the first value present among keys. ok is false when none
// is present; err is set when the value is not an integer.
func (f requestFields) Int(keys ...string) (n int, ok bool, err error) {
	for _, k := range keys {
		switch v := f[k].(type) {
		case nil:
			continue
		case float64:
			if v != float64(int(v)) {
				return 0, true, errNotInteger
			}
			return int(v), true, nil
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				continue
			}
			n, err := strconv.Atoi(s)
			if err != nil {
				return 0, true, errNotInteger
			}
			return n, true, nil
		default:
			return 0, true, errNotInteger
		}
	}
	return 0, false, nil
}

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", time.DateOnly}

// Time parses the first non-empty value among keys. A zero time with a nil
// error means the field was absent.
func (f requestFields) Time(keys ...string) (time.Time, error) {
	s := f.String(keys...)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New("invalid date: use RFC 3339 or YYYY-MM-DD")
}
