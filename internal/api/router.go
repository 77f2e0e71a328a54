package api

import (
	"net/http"

	"github.com/dcastro/clientadmin/internal/api/handlers"
	"github.com/dcastro/clientadmin/internal/api/middleware"
	"github.com/dcastro/clientadmin/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	credentialHandler := handlers.NewCredentialHandler(services.Auth)
	userHandler := handlers.NewUserHandler(services.User)
	roleHandler := handlers.NewRoleHandler(services.Role)
	clientHandler := handlers.NewClientHandler(services.Client)
	orderHandler := handlers.NewOrderHandler(services.Order)
	commentHandler := handlers.NewCommentHandler(services.Comment)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/reset-password", authHandler.ResetPassword)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			// Credential routes
			r.Route("/credentials", func(r chi.Router) {
				r.Put("/{id}/password", credentialHandler.UpdatePassword)
				r.Patch("/status", credentialHandler.UpdateStatus)
			})

			// User routes
			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
				r.Get("/{id}", userHandler.Get)
				r.Put("/{id}", userHandler.Update)
				r.Delete("/{id}", userHandler.Delete)
			})

			// Role routes
			r.Route("/roles", func(r chi.Router) {
				r.Get("/", roleHandler.List)
				r.Post("/", roleHandler.Create)
				r.Put("/{id}", roleHandler.Update)
				r.Delete("/{id}", roleHandler.Delete)
			})

			// Client routes
			r.Route("/clients", func(r chi.Router) {
				r.Get("/", clientHandler.List)
				r.Post("/", clientHandler.Create)
				r.Get("/{id}", clientHandler.Get)
				r.Put("/{id}", clientHandler.Update)
				r.Delete("/{id}", clientHandler.Delete)
			})

			// Order routes
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", orderHandler.List)
				r.Post("/", orderHandler.Create)
				r.Get("/{id}", orderHandler.Get)
				r.Put("/{id}", orderHandler.Update)
				r.Delete("/{id}", orderHandler.Delete)
			})

			// Comment routes
			r.Route("/comments", func(r chi.Router) {
				r.Get("/", commentHandler.List)
				r.Post("/", commentHandler.Create)
				r.Delete("/{id}", commentHandler.Delete)
			})
		})
	})

	return r
}
