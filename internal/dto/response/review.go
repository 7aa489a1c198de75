package response

type ReviewResponse struct {
	ReviewID int64 `json:"review_id"`
	UserID   int64 `json:"user_id"`
	MovieID  int64 `json:"movie_id"`
	Rate     int   `json:"rate"`

	// Movie aggregate after this write.
	AvgRate     float64 `json:"avg_rate"`
	CountReview int     `json:"count_review"`
}
