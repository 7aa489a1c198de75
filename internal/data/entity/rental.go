package entity

import "time"

// Rental records that a user rented a movie. Repeatable: the same (user,
// movie) pair may produce any number of rows.
type Rental struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	MovieID   int64     `db:"movie_id"`
	StartDate time.Time `db:"start_date"`
	RentDays  int       `db:"rent_days"`
	CreatedAt time.Time `db:"created_at"`
}

// RentedMovie is the joined row for a user's rental history: the rental,
// the movie name and the rate the user gave it, if any.
type RentedMovie struct {
	RentID    int64     `db:"rent_id"`
	MovieName string    `db:"movie_name"`
	StartDate time.Time `db:"rent_start_date"`
	Rate      *int      `db:"movie_rating"`
}
