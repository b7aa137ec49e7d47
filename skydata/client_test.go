package skydata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var temps = map[string]struct {
	name string
	temp float64
}{
	"mercure": {"Mercury", 440},
	"venus":   {"Venus", 737},
	"terre":   {"Earth", 288},
	"mars":    {"Mars", 210},
	"jupiter": {"Jupiter", 165},
	"saturn":  {"Saturn", 134},
	"uranus":  {"Uranus", 76},
	"neptune": {"Neptune", 72},
}

type fakeSky struct {
	peopleStatus int
	peopleBody   string
	failBody     string
	wrongBody    string
	noTemp       string
	slowFirst    bool
}

func (f *fakeSky) handler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/astros.json", func(w http.ResponseWriter, r *http.Request) {
		if f.peopleStatus != 0 {
			w.WriteHeader(f.peopleStatus)
			return
		}
		body := f.peopleBody
		if body == "" {
			body = `{"message":"success","number":3,"people":[` +
				`{"name":"A","craft":"ISS"},{"name":"B","craft":"ISS"},{"name":"C","craft":"Tiangong"}]}`
		}
		fmt.Fprint(w, body)
	})
	mux.HandleFunc("/bodies/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/bodies/")
		if id == f.failBody {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		// answer in reverse order to shake out index mixups
		if f.slowFirst {
			for i, b := range BodyIDs {
				if b == id {
					time.Sleep(time.Duration(len(BodyIDs)-i) * 5 * time.Millisecond)
				}
			}
		}
		info, ok := temps[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		respID := id
		if id == f.wrongBody {
			respID = "lune"
		}
		body := map[string]any{
			"id":          respID,
			"englishName": info.name,
			"avgTemp":     info.temp,
			"isPlanet":    true,
		}
		if id == f.noTemp {
			delete(body, "avgTemp")
		}
		_ = json.NewEncoder(w).Encode(body)
	})
	return mux
}

func newTestClient(t *testing.T, f *fakeSky) *Client {
	t.Helper()
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/astros.json", srv.URL+"/bodies/", WithHTTPClient(srv.Client()))
}

func TestFetchPeopleCount(t *testing.T) {
	c := newTestClient(t, &fakeSky{})

	report, err := c.FetchPeopleCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Count)
	assert.Equal(t, "Tiangong", report.People[2].Craft)
}

func TestFetchPeopleCountStatusError(t *testing.T) {
	c := newTestClient(t, &fakeSky{peopleStatus: http.StatusServiceUnavailable})

	_, err := c.FetchPeopleCount(context.Background())
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)
}

func TestFetchPeopleCountMalformed(t *testing.T) {
	c := newTestClient(t, &fakeSky{peopleBody: `{"message":"success"}`})

	_, err := c.FetchPeopleCount(context.Background())
	require.ErrorIs(t, err, ErrMalformedPeople)
}

func TestFetchPeopleCountBadJSON(t *testing.T) {
	c := newTestClient(t, &fakeSky{peopleBody: `{"people":`})

	_, err := c.FetchPeopleCount(context.Background())
	require.Error(t, err)
}

func TestFetchCelestialRecordsKeepsInputOrder(t *testing.T) {
	c := newTestClient(t, &fakeSky{slowFirst: true})

	records, err := c.FetchCelestialRecords(context.Background(), BodyIDs)
	require.NoError(t, err)
	require.Len(t, records, len(BodyIDs))
	for i, id := range BodyIDs {
		assert.Equal(t, id, records[i].ID)
		assert.Equal(t, temps[id].name, records[i].EnglishName)
		assert.Equal(t, temps[id].temp, records[i].AvgTemp)
	}
}

func TestFetchCelestialRecordsAllOrNothing(t *testing.T) {
	c := newTestClient(t, &fakeSky{failBody: "saturn"})

	records, err := c.FetchCelestialRecords(context.Background(), BodyIDs)
	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "saturn")
}

func TestFetchCelestialRecordsRejectsWrongBody(t *testing.T) {
	c := newTestClient(t, &fakeSky{wrongBody: "mars"})

	_, err := c.FetchCelestialRecords(context.Background(), BodyIDs)
	require.ErrorIs(t, err, ErrBodyMismatch)
}

func TestFetchBodyRequiresName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"avgTemp": 12}`)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, srv.URL, WithHTTPClient(srv.Client()))

	_, err := c.FetchBody(context.Background(), "mars")
	require.ErrorIs(t, err, ErrMalformedBody)
}

func TestFetchBodyRequiresTemperature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"mars","englishName":"Mars"}`)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, srv.URL, WithHTTPClient(srv.Client()))

	rec, err := c.FetchBody(context.Background(), "mars")
	require.ErrorIs(t, err, ErrMalformedBody)
	assert.Equal(t, CelestialRecord{}, rec)
}

func TestFetchBodyAcceptsZeroTemperature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"mars","englishName":"Mars","avgTemp":0}`)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, srv.URL, WithHTTPClient(srv.Client()))

	rec, err := c.FetchBody(context.Background(), "mars")
	require.NoError(t, err)
	assert.Equal(t, CelestialRecord{ID: "mars", EnglishName: "Mars", AvgTemp: 0}, rec)
}

func TestFetchCelestialRecordsFailsOnMissingTemperature(t *testing.T) {
	c := newTestClient(t, &fakeSky{noTemp: "jupiter"})

	records, err := c.FetchCelestialRecords(context.Background(), BodyIDs)
	require.ErrorIs(t, err, ErrMalformedBody)
	assert.Nil(t, records)
}

func TestFetchBodyEscapesID(t *testing.T) {
	c := NewClient("", "https://example.test/rest/bodies/")
	assert.Equal(t, "https://example.test/rest/bodies/a%2Fb", c.bodyURL("a/b"))
	assert.Equal(t, "https://example.test/rest/bodies/mars", c.bodyURL("mars"))
}
