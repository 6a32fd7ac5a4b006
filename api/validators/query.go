package validators

import (
	"net/http"
	"strconv"

	pkgerrors "github.com/mannyautos/storefront-backend/pkg/errors"
)

// QueryInt parses an optional integer query parameter, returning fallback
// when the parameter is absent.
func QueryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid query parameter").
			WithDetails(map[string]string{"param": name, "value": raw})
	}
	return n, nil
}

// QueryStrings returns all values for a repeated query parameter, dropping
// empty entries.
func QueryStrings(r *http.Request, name string) []string {
	var out []string
	for _, v := range r.URL.Query()[name] {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// PathInt parses a required integer path segment.
func PathInt(raw, name string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid path parameter").
			WithDetails(map[string]string{"param": name, "value": raw})
	}
	return n, nil
}
