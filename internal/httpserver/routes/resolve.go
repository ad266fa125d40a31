package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/thoth-pub/cc-license/internal/httpserver/deps"
	"github.com/thoth-pub/cc-license/internal/httpserver/handlers"
)

func init() { Register(registerResolve) }

func registerResolve(r chi.Router, d deps.Deps) {
	r.Get("/resolve", handlers.Resolve(d))
}
