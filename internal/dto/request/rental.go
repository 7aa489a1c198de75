package request

// RentalRequest carries the rent body. Fields are checked by the service so
// the error messages can name exactly what is missing or malformed.
type RentalRequest struct {
	StartDate string `json:"start_date"`
	RentDays  *int   `json:"rent_days"`
}
