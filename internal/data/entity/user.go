package entity

import "time"

type User struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     *string   `db:"email"`
	Phone     *string   `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
}
