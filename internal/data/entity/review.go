package entity

import "time"

// Review is a user's 0-100 rating of a movie. At most one row exists per
// (user, movie) pair, enforced by the service via look-up-then-update.
type Review struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	MovieID   int64     `db:"movie_id"`
	Rate      int       `db:"rate"`
	CreatedAt time.Time `db:"created_at"`
}
