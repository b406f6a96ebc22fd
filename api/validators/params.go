package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/calebmartin/wishlist-backend/pkg/errors"
	"github.com/go-chi/chi/v5"
)

// ParsePathID reads a positive integer id from a chi URL parameter.
func ParsePathID(r *http.Request, key string) (uint, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "path parameter must be a positive integer").
			WithDetails(map[string]any{"field": key})
	}
	return uint(value), nil
}

// ParseForm extracts required and optional fields from a URL-encoded
// form body, mirroring the browser login/register flow.
func ParseForm(r *http.Request) (map[string]string, error) {
	if err := r.ParseForm(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form body")
	}
	fields := map[string]string{}
	for key, values := range r.PostForm {
		if len(values) > 0 {
			fields[key] = strings.TrimSpace(values[0])
		}
	}
	return fields, nil
}
