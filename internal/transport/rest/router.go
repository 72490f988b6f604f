// Package rest wires the HTTP surface: JSON handlers over the services,
// method-and-pattern routing on the standard mux.
package rest

import "net/http"

// Router bundles the handlers mounted by NewRouter.
type Router struct {
	Auth   *AuthHandler
	Pins   *PinsHandler
	Boards *BoardsHandler
	Health *HealthHandler
}

// NewRouter returns the API route table. Middleware is applied by the caller.
func NewRouter(rt Router) *http.ServeMux {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/v1/auth/register", rt.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", rt.Auth.Login)

	// Pins
	mux.HandleFunc("POST /api/v1/pins", rt.Pins.Create)
	mux.HandleFunc("GET /api/v1/pins", rt.Pins.List)
	mux.HandleFunc("GET /api/v1/pins/{pinId}", rt.Pins.Get)
	mux.HandleFunc("DELETE /api/v1/pins/{pinId}", rt.Pins.Delete)
	mux.HandleFunc("POST /api/v1/pins/{pinId}/like", rt.Pins.ToggleLike)

	// Boards
	mux.HandleFunc("POST /api/v1/boards", rt.Boards.Create)
	mux.HandleFunc("GET /api/v1/boards", rt.Boards.List)
	mux.HandleFunc("DELETE /api/v1/boards/{boardId}", rt.Boards.Delete)
	mux.HandleFunc("POST /api/v1/boards/{boardId}/pins", rt.Boards.AddPin)
	mux.HandleFunc("GET /api/v1/boards/{boardId}/pins", rt.Boards.ListPins)
	mux.HandleFunc("DELETE /api/v1/boards/{boardId}/pins/{pinId}", rt.Boards.RemovePin)

	// Health probes
	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)

	return mux
}
