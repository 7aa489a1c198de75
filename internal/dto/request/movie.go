package request

type MovieRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Director string `json:"director" validate:"required,min=1,max=50"`
	Year     int    `json:"year" validate:"required,min=1888,max=2100"`
	GenreID  int64  `json:"genre_id" validate:"required"`
}

type MovieUpdateRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Director *string `json:"director,omitempty" validate:"omitempty,min=1,max=50"`
	Year     *int    `json:"year,omitempty" validate:"omitempty,min=1888,max=2100"`
	GenreID  *int64  `json:"genre_id,omitempty"`
}
