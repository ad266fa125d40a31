package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/thoth-pub/cc-license/internal/httpserver/deps"
	"github.com/thoth-pub/cc-license/internal/logger"
	redisstore "github.com/thoth-pub/cc-license/internal/store/redis"
	"github.com/thoth-pub/cc-license/license"
)

type resolveResponse struct {
	Rights           string `json:"rights"`
	RightsFull       string `json:"rights_full"`
	Version          string `json:"version"`
	Jurisdiction     string `json:"jurisdiction,omitempty"`
	JurisdictionName string `json:"jurisdiction_name,omitempty"`
	Short            string `json:"short"`
	Description      string `json:"description"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// Resolve parses a Creative Commons license URL passed as ?url= and returns
// its canonical renderings. Parse failures map to 422 with the error kind.
func Resolve(d deps.Deps) http.HandlerFunc {
	var store *redisstore.Store
	if d.RedisClient != nil {
		store = redisstore.NewStore(d.RedisClient)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		rawURL := strings.TrimSpace(r.URL.Query().Get("url"))

		w.Header().Set("Content-Type", "application/json")

		if rawURL == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(errorResponse{Error: "missing url parameter"})
			return
		}

		l, err := license.FromURL(rawURL)
		if err != nil {
			kind := errorKind(err)
			d.Logger.Info("resolve failed",
				logger.String("url", rawURL),
				logger.String("kind", kind),
				logger.Error(err))

			// Counters are best effort; a down Redis never fails a request.
			if store != nil {
				if serr := store.RecordFailure(ctx, kind); serr != nil {
					d.Logger.Debug("failed to record failure", logger.Error(serr))
				}
			}

			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error(), Kind: kind})
			return
		}

		d.Logger.Info("resolved license",
			logger.String("url", rawURL),
			logger.String("rights", l.Rights()),
			logger.String("version", l.Version()))

		if store != nil {
			if serr := store.RecordResolution(ctx, l.Rights()); serr != nil {
				d.Logger.Debug("failed to record resolution", logger.Error(serr))
			}
		}

		resp := resolveResponse{
			Rights:       l.Rights(),
			RightsFull:   l.RightsFull(),
			Version:      l.Version(),
			Jurisdiction: l.Jurisdiction(),
			Short:        l.Short(),
			Description:  l.String(),
		}
		if d.Catalog != nil && l.Jurisdiction() != "" {
			if name, ok := d.Catalog.DisplayName(l.Jurisdiction()); ok {
				resp.JurisdictionName = name
			}
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// errorKind maps a parse error to the stable kind token used in API
// responses and failure counters.
func errorKind(err error) string {
	switch {
	case errors.Is(err, license.ErrInvalidURL):
		return "invalid_url"
	case errors.Is(err, license.ErrUnsupportedHost):
		return "unsupported_host"
	case errors.Is(err, license.ErrUnrecognizedPath):
		return "unrecognized_path"
	case errors.Is(err, license.ErrUnknownLicenseCode):
		return "unknown_license_code"
	case errors.Is(err, license.ErrInvalidZeroVersion):
		return "invalid_zero_version"
	case errors.Is(err, license.ErrInvalidVersion):
		return "invalid_version"
	case errors.Is(err, license.ErrMalformedPath):
		return "malformed_path"
	default:
		return "unknown"
	}
}
