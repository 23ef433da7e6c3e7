package geo

import (
	"context"
	"errors"
	"fmt"
)

var ErrInvalidCoordinates = errors.New("invalid coordinates")

type Service struct {
	client *OverpassClient
}

func NewService(client *OverpassClient) *Service {
	return &Service{client: client}
}

// Nearby validates the request, applies the radius default and cap, and
// queries Overpass.
func (s *Service) Nearby(ctx context.Context, req NearbyRequest) ([]Hospital, error) {
	if req.Latitude < -90 || req.Latitude > 90 {
		return nil, fmt.Errorf("%w: latitude must be between -90 and 90", ErrInvalidCoordinates)
	}
	if req.Longitude < -180 || req.Longitude > 180 {
		return nil, fmt.Errorf("%w: longitude must be between -180 and 180", ErrInvalidCoordinates)
	}

	radius := req.RadiusMeters
	if radius <= 0 {
		radius = DefaultRadiusMeters
	}
	if radius > MaxRadiusMeters {
		radius = MaxRadiusMeters
	}

	return s.client.FindHospitals(ctx, req.Latitude, req.Longitude, radius)
}
