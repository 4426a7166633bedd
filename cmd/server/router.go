package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/rkshop/admin-api/internal/api"
	"github.com/rkshop/admin-api/internal/api/shared"
	apimiddleware "github.com/rkshop/admin-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware from the application's services.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordService,
		app.passwordService,
		app.logger,
	)
	productHandler := api.NewProductHandler(app.productStore, app.logger)
	categoryHandler := api.NewCategoryHandler(app.categoryStore, app.logger)
	mediaHandler := api.NewMediaHandler(app.mediaService, app.logger)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Liveness probe
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			shared.RespondWithSuccess(w, r, http.StatusOK, api.MsgAPIWorking, nil)
		})

		// Authentication endpoints (public)
		r.Post("/login", authHandler.Login)
		r.Post("/register", authHandler.Register)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/product", productHandler.Create)
			r.Get("/product", productHandler.List)
			r.Get("/product/{productId}", productHandler.View)
			r.Put("/product/{productId}", productHandler.Edit)
			r.Delete("/product/{productId}", productHandler.Delete)

			r.Post("/category", categoryHandler.Create)
			r.Get("/category", categoryHandler.List)

			r.Post("/media", mediaHandler.Upload)
		})
	})

	// Any unmatched route gets the generic not-found envelope.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, api.MsgAPINotFound)
	})

	return r
}
