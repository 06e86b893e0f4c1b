package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(apiHandler *APIHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger)           // Structured request logging
	r.Use(middleware.Recoverer)    // Recover from panics
	r.Use(middleware.StripSlashes) // Ensure consistent path handling

	// All API routes will be under /api
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		// Advisory routes
		r.Post("/soil/advice", apiHandler.SoilAdviceHandler)
		r.Post("/weather/alerts", apiHandler.WeatherAlertHandler)
		r.Post("/pest/detect", apiHandler.PestDetectHandler)
		r.Get("/market/prices", apiHandler.MarketPricesHandler)

		// Chat session routes
		r.Post("/sessions", apiHandler.CreateSessionHandler)
		r.Get("/sessions/{sessionID}", apiHandler.GetSessionHandler)
		r.Post("/sessions/{sessionID}/messages", apiHandler.PostMessageHandler)
		r.Post("/sessions/{sessionID}/reset", apiHandler.ResetSessionHandler)

		// Feedback route
		r.Post("/feedback", apiHandler.FeedbackHandler)
	})

	return r
}
