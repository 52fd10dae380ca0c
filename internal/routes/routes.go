package routes

import (
	"examly/internal/config"
	"examly/internal/handlers"
	"examly/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	resetHandler *handlers.PasswordResetHandler,
	practiceHandler *handlers.PracticeHandler,
	reviewHandler *handlers.ReviewHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logging)

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	api.HandleFunc("/password/forgot", resetHandler.Forgot).Methods("POST")
	api.HandleFunc("/password/verify", resetHandler.Verify).Methods("POST")
	api.HandleFunc("/password/reset/{id:[0-9]+}", resetHandler.Apply).Methods("POST")

	// --- Защищённые сессионной кукой ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.SessionAuth(cfg.SessionCookieName, cfg.JWTSecret))

	protected.HandleFunc("/profile", authHandler.Profile).Methods("GET")
	protected.HandleFunc("/practice/next", practiceHandler.NextQuestion).Methods("GET")
	protected.HandleFunc("/practice/answer", practiceHandler.Answer).Methods("POST")

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.OnlyAdmin)
	admin.HandleFunc("/review", reviewHandler.ListPending).Methods("GET")
	admin.HandleFunc("/review/{id:[0-9]+}", reviewHandler.GetQuestion).Methods("GET")
	admin.HandleFunc("/review/{id:[0-9]+}", reviewHandler.SubmitVerdict).Methods("POST")
}
