package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/salmansheikhutk/readarabicbackend/internal/api"
	apiMiddleware "github.com/salmansheikhutk/readarabicbackend/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.googleVerifier,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	vocabularyHandler := api.NewVocabularyHandler(app.vocabularyService, app.reviewService)
	bookHandler := api.NewBookHandler(app.contentClient)
	dictionaryHandler := api.NewDictionaryHandler(app.dictionaryClient)
	subscriptionHandler := api.NewSubscriptionHandler(app.subscriptionStore)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/google", authHandler.GoogleLogin)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Reading content and dictionary (public)
		r.Get("/books", bookHandler.ListBooks)
		r.Get("/book/{id}", bookHandler.GetBook)
		r.Get("/define/{word}", dictionaryHandler.Define)

		// Health check endpoint
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			api.RespondWithJSON(w, r, http.StatusOK, api.HealthResponse{
				Status:  "healthy",
				Service: "readarabic-backend",
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Vocabulary and review endpoints
			r.Post("/vocabulary", vocabularyHandler.SaveWord)
			r.Get("/vocabulary/due", vocabularyHandler.ListDue)
			r.Post("/vocabulary/{id}/review", vocabularyHandler.SubmitReview)

			// Subscription status
			r.Get("/subscription", subscriptionHandler.Status)
		})
	})

	return r
}
