// internal/wire/wire.go
package wire

import (
	"net/http"

	"filmestop/internal/adaptor"
	"filmestop/internal/data/repository"
	"filmestop/internal/usecase"
	"filmestop/pkg/cache"
	"filmestop/pkg/middleware"
	"filmestop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(
	db usecase.TxBeginner,
	repo *repository.Repository,
	store cache.Cache,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	// Initialize services dan handlers
	service := usecase.NewService(db, repo, store, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireGenre(r, handler.Genre)
	wireUser(r, handler.User)
	wireMovie(r, handler.Movie)
	wireRental(r, handler.Rental, handler.Review)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "API endpoint not found")
	})

	return r
}
