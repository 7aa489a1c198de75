package response

import "filmestop/internal/data/entity"

type MovieResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Director    string  `json:"director"`
	Year        int     `json:"year"`
	Genre       *string `json:"genre"`
	AvgRate     float64 `json:"avg_rate"`
	CountReview int     `json:"count_review"`
}

// Helper converter
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Name:        movie.Name,
		Director:    movie.Director,
		Year:        movie.Year,
		Genre:       movie.GenreName,
		AvgRate:     movie.AvgRate,
		CountReview: movie.CountReview,
	}
}
