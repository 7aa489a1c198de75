package request

// ReviewRequest carries the rate body. Rate is a pointer so that 0, a legal
// rate, is distinguishable from an absent field.
type ReviewRequest struct {
	Rate *int `json:"rate"`
}
