package wire

import (
	"filmestop/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireGenre configures genre catalogue routes
func wireGenre(r chi.Router, genreHandler *adaptor.GenreHandler) {
	r.Get("/genres", genreHandler.GetGenres)
}
