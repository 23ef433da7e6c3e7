package geo

const (
	DefaultRadiusMeters = 5000
	MaxRadiusMeters     = 50000
)

type NearbyRequest struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radius_meters"`
}

// Hospital is one result. Rating fields are always null; the shape is kept
// for clients that were written against a places-style response.
type Hospital struct {
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	Lat              float64  `json:"lat"`
	Lng              float64  `json:"lng"`
	Rating           *float64 `json:"rating"`
	UserRatingsTotal *int     `json:"user_ratings_total"`
	PlaceID          string   `json:"place_id"`
	OpenNow          *bool    `json:"open_now"`
	MapsURL          string   `json:"maps_url"`
}
