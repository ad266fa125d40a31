package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/thoth-pub/cc-license/internal/httpserver/deps"
	"github.com/thoth-pub/cc-license/internal/logger"
	redisstore "github.com/thoth-pub/cc-license/internal/store/redis"
)

// Stats returns the usage counters. 503 when the stats store is not configured.
func Stats(d deps.Deps) http.HandlerFunc {
	var store *redisstore.Store
	if d.RedisClient != nil {
		store = redisstore.NewStore(d.RedisClient)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if store == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(errorResponse{Error: "usage statistics are disabled"})
			return
		}

		stats, err := store.GetStats(r.Context())
		if err != nil {
			d.Logger.Error("failed to load usage stats", logger.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(errorResponse{Error: "failed to load usage statistics"})
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(stats)
	}
}
