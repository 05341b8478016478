package entity

// RequestFilter holds optional filters for listing blood requests
type RequestFilter struct {
	Search      string
	BloodType   string
	Status      string
	QuantityMin *int
	QuantityMax *int
	Limit       int
	Skip        int
}
