package geo

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

const sampleOverpassJSON = `{
  "elements": [
    {
      "type": "node",
      "id": 101,
      "lat": 28.61,
      "lon": 77.21,
      "tags": {"amenity": "hospital", "name": "City Hospital"}
    },
    {
      "type": "way",
      "id": 202,
      "center": {"lat": 28.62, "lon": 77.22},
      "tags": {"amenity": "hospital"}
    },
    {
      "type": "relation",
      "id": 303,
      "tags": {"amenity": "hospital", "name": "No Coordinates Trust"}
    }
  ]
}`

func TestFindHospitals(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		form, err := url.ParseQuery(string(body))
		if err != nil {
			t.Errorf("parse form body: %v", err)
		}
		gotQuery = form.Get("data")
		w.Write([]byte(sampleOverpassJSON))
	}))
	defer srv.Close()

	client := NewOverpassClient(srv.URL)
	hospitals, err := client.FindHospitals(context.Background(), 28.6, 77.2, 5000)
	if err != nil {
		t.Fatalf("FindHospitals() error: %v", err)
	}

	for _, want := range []string{`"amenity"="hospital"`, "around:5000", "out center"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query missing %q:\n%s", want, gotQuery)
		}
	}

	// The relation without coordinates is skipped.
	if len(hospitals) != 2 {
		t.Fatalf("expected 2 hospitals, got %d", len(hospitals))
	}

	node := hospitals[0]
	if node.Name != "City Hospital" || node.Lat != 28.61 || node.Lng != 77.21 {
		t.Errorf("unexpected node result: %+v", node)
	}
	if node.PlaceID != "101" {
		t.Errorf("expected place_id 101, got %q", node.PlaceID)
	}
	if !strings.Contains(node.MapsURL, "openstreetmap.org") {
		t.Errorf("unexpected maps url: %q", node.MapsURL)
	}

	way := hospitals[1]
	if way.Name != "Unnamed Hospital" {
		t.Errorf("expected fallback name, got %q", way.Name)
	}
	if way.Lat != 28.62 || way.Lng != 77.22 {
		t.Errorf("expected center coordinates, got %+v", way)
	}
	if way.Rating != nil || way.OpenNow != nil || way.UserRatingsTotal != nil {
		t.Errorf("expected null rating fields, got %+v", way)
	}
}

func TestFindHospitals_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewOverpassClient(srv.URL)
	if _, err := client.FindHospitals(context.Background(), 0, 0, 5000); err == nil {
		t.Error("expected error for upstream failure")
	}
}

func TestFindHospitals_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewOverpassClient(srv.URL)
	if _, err := client.FindHospitals(context.Background(), 0, 0, 5000); err == nil {
		t.Error("expected error for malformed response")
	}
}

func TestFindHospitals_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"elements": []}`))
	}))
	defer srv.Close()

	client := NewOverpassClient(srv.URL)
	hospitals, err := client.FindHospitals(context.Background(), 0, 0, 5000)
	if err != nil {
		t.Fatalf("FindHospitals() error: %v", err)
	}
	if hospitals == nil || len(hospitals) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", hospitals)
	}
}
