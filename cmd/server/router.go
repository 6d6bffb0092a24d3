package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/hbnb-api/internal/api"
	apiMiddleware "github.com/phrazzld/hbnb-api/internal/api/middleware"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(middleware.Recoverer)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	authHandler := api.NewAuthHandler(app.facade, app.jwtService, app.logger)
	userHandler := api.NewUserHandler(app.facade, app.logger)
	placeHandler := api.NewPlaceHandler(app.facade, app.logger)
	reviewHandler := api.NewReviewHandler(app.facade, app.logger)
	amenityHandler := api.NewAmenityHandler(app.facade, app.logger)

	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/login", authHandler.Login)
		r.Get("/users", userHandler.ListUsers)
		r.Get("/users/{id}", userHandler.GetUser)
		r.Get("/users/{id}/places", userHandler.ListUserPlaces)
		r.Get("/places", placeHandler.ListPlaces)
		r.Get("/places/{id}", placeHandler.GetPlace)
		r.Get("/places/{id}/reviews", placeHandler.ListReviews)
		r.Get("/reviews", reviewHandler.ListReviews)
		r.Get("/reviews/{id}", reviewHandler.GetReview)
		r.Get("/amenities", amenityHandler.ListAmenities)
		r.Get("/amenities/{id}", amenityHandler.GetAmenity)

		// Registration is public, but an admin token may grant is_admin.
		r.With(authMiddleware.OptionalAuthenticate).Post("/users", userHandler.CreateUser)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/protected", authHandler.Protected)
			r.Put("/users/{id}", userHandler.UpdateUser)

			r.Post("/places", placeHandler.CreatePlace)
			r.Put("/places/{id}", placeHandler.UpdatePlace)
			r.Post("/places/{id}/amenities/{amenityID}", placeHandler.AddAmenity)
			r.Delete("/places/{id}/amenities/{amenityID}", placeHandler.RemoveAmenity)

			r.Post("/reviews", reviewHandler.CreateReview)
			r.Put("/reviews/{id}", reviewHandler.UpdateReview)
			r.Delete("/reviews/{id}", reviewHandler.DeleteReview)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(apiMiddleware.RequireAdmin)
				r.Post("/amenities", amenityHandler.CreateAmenity)
				r.Put("/amenities/{id}", amenityHandler.UpdateAmenity)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
