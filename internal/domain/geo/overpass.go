package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// OverpassClient queries the Overpass API for amenity data.
type OverpassClient struct {
	baseURL string
	client  *http.Client
}

func NewOverpassClient(baseURL string) *OverpassClient {
	return &OverpassClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 25 * time.Second},
	}
}

type overpassElement struct {
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// FindHospitals returns hospitals within radius meters of the point.
// Ways and relations report their computed center coordinate; elements
// without any coordinate are skipped.
func (c *OverpassClient) FindHospitals(ctx context.Context, lat, lng float64, radius int) ([]Hospital, error) {
	query := fmt.Sprintf(`[out:json];
(
  node["amenity"="hospital"](around:%d,%f,%f);
  way["amenity"="hospital"](around:%d,%f,%f);
  relation["amenity"="hospital"](around:%d,%f,%f);
);
out center;`, radius, lat, lng, radius, lat, lng, radius, lat, lng)

	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call overpass: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass returned status %d", resp.StatusCode)
	}

	var out overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode overpass response: %w", err)
	}

	hospitals := make([]Hospital, 0, len(out.Elements))
	for _, el := range out.Elements {
		var hLat, hLng float64
		switch {
		case el.Lat != nil && el.Lon != nil:
			hLat, hLng = *el.Lat, *el.Lon
		case el.Center != nil:
			hLat, hLng = el.Center.Lat, el.Center.Lon
		default:
			continue
		}

		name := el.Tags["name"]
		if name == "" {
			name = "Unnamed Hospital"
		}

		hospitals = append(hospitals, Hospital{
			Name:    name,
			Address: name,
			Lat:     hLat,
			Lng:     hLng,
			PlaceID: strconv.FormatInt(el.ID, 10),
			MapsURL: fmt.Sprintf("https://www.openstreetmap.org/?mlat=%v&mlon=%v#map=17/%v/%v", hLat, hLng, hLat, hLng),
		})
	}

	return hospitals, nil
}
