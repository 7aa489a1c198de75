package entity

import "time"

// Genre is static reference data, seeded by migration.
type Genre struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}
