package entity

import "time"

type Movie struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Director string `db:"director"`
	Year     int    `db:"year"`
	GenreID  int64  `db:"genre_id"`

	// Denormalized aggregates, recomputed on every review write.
	AvgRate     float64 `db:"avg_rate"`
	CountReview int     `db:"count_review"`

	// Genre display name resolved via LEFT JOIN; nil if the relation is broken.
	GenreName *string `db:"genre_name"`

	CreatedAt time.Time `db:"created_at"`
}
