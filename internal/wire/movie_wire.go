package wire

import (
	"filmestop/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireMovie configures movie catalogue routes
func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/movies", func(r chi.Router) {
		r.Post("/", movieHandler.CreateMovie)             // POST /movies
		r.Get("/", movieHandler.GetMovies)                // GET /movies?genre_id=1
		r.Get("/{movie_id}", movieHandler.GetMovieByID)   // GET /movies/{movie_id}
		r.Put("/{movie_id}", movieHandler.UpdateMovie)    // PUT /movies/{movie_id}
		r.Delete("/{movie_id}", movieHandler.DeleteMovie) // DELETE /movies/{movie_id}
	})
}
