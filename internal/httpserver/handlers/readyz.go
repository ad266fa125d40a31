package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/thoth-pub/cc-license/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool   `json:"ready"`
	Redis string `json:"redis,omitempty"`
}

// Readyz reports readiness. The resolver itself is always ready (parsing is
// pure computation); a configured but unreachable Redis is reported without
// flipping readiness, since stats are best effort.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		resp := readyzResponse{Ready: true}
		if d.RedisClient != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := d.RedisClient.Ping(ctx).Err(); err != nil {
				resp.Redis = "unreachable"
			} else {
				resp.Redis = "ok"
			}
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
