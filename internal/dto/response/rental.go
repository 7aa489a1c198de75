package response

import "filmestop/internal/data/entity"

type RentalResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	MovieID   int64  `json:"movie_id"`
	StartDate string `json:"start_date"`
	RentDays  int    `json:"rent_days"`
}

type RentedMovieResponse struct {
	RentID        int64  `json:"rent_id"`
	MovieName     string `json:"movie_name"`
	RentStartDate string `json:"rent_start_date"`
	MovieRating   *int   `json:"movie_rating"`
}

const dateLayout = "2006-01-02"

// Helper converters
func RentalToResponse(rental *entity.Rental) RentalResponse {
	return RentalResponse{
		ID:        rental.ID,
		UserID:    rental.UserID,
		MovieID:   rental.MovieID,
		StartDate: rental.StartDate.Format(dateLayout),
		RentDays:  rental.RentDays,
	}
}

func RentedMovieToResponse(row *entity.RentedMovie) RentedMovieResponse {
	return RentedMovieResponse{
		RentID:        row.RentID,
		MovieName:     row.MovieName,
		RentStartDate: row.StartDate.Format(dateLayout),
		MovieRating:   row.Rate,
	}
}
