package wire

import (
	"filmestop/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireRental configures rental and review routes, both scoped to a user/movie pair
func wireRental(r chi.Router, rentalHandler *adaptor.RentalHandler, reviewHandler *adaptor.ReviewHandler) {
	r.Route("/users/{user_id}/movies/{movie_id}", func(r chi.Router) {
		r.Post("/rent", rentalHandler.RentMovie)    // POST /users/{user_id}/movies/{movie_id}/rent
		r.Post("/review", reviewHandler.RateMovie)  // POST /users/{user_id}/movies/{movie_id}/review
	})

	r.Get("/users/{user_id}/rented_movies", rentalHandler.GetRentedMovies)
}
