package app

import (
	"strconv"
	"time"

	"examly/internal/config"
	"examly/internal/db"
	"examly/internal/handlers"
	"examly/internal/repository"
	"examly/internal/routes"
	"examly/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	if err := db.RunMigrations(cfg); err != nil {
		return nil, err
	}

	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	sessionTTL, err := time.ParseDuration(cfg.SessionTTL)
	if err != nil {
		sessionTTL = 720 * time.Hour
	}
	resetTTLMin, err := strconv.Atoi(cfg.ResetCodeTTLMin)
	if err != nil || resetTTLMin <= 0 {
		resetTTLMin = 10
	}

	// Репозитории
	userRepo := repository.NewUserRepository(conn)
	resetRepo := repository.NewResetPasswordRepository(conn)
	questionRepo := repository.NewQuestionRepository(conn)

	// Сервисы
	emailService := services.NewEmailService(cfg)
	notifier := services.NewNotifier(resetTTLMin)
	authService := services.NewAuthService(userRepo, notifier, cfg.JWTSecret, sessionTTL)
	resetService := services.NewPasswordResetService(resetRepo, userRepo, notifier, time.Duration(resetTTLMin)*time.Minute)
	practiceService := services.NewPracticeService(questionRepo)
	reviewService := services.NewReviewService(questionRepo)

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService, cfg)
	resetHandler := handlers.NewPasswordResetHandler(resetService)
	practiceHandler := handlers.NewPracticeHandler(practiceService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// Воркеры отправки писем
	for i := 0; i < 3; i++ {
		services.StartEmailWorker(emailService)
	}

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, cfg, authHandler, resetHandler, practiceHandler, reviewHandler)

	return router, nil
}
