// Package skydata fetches the live astronomy data the ride's checkpoints
// display: the people currently in space and per-planet temperatures.
package skydata

// BodyIDs is the fixed lookup order of the celestial body source.
var BodyIDs = []string{"mercure", "venus", "terre", "mars", "jupiter", "saturn", "uranus", "neptune"}

// Astronaut is one entry of the people-in-space roster.
type Astronaut struct {
	Name  string `json:"name"`
	Craft string `json:"craft"`
}

// PeopleReport is the headcount plus the raw roster it was derived from.
type PeopleReport struct {
	Count  int
	People []Astronaut
}

// CelestialRecord is the part of a body lookup the checkpoints use.
type CelestialRecord struct {
	ID          string  `json:"id"`
	EnglishName string  `json:"englishName"`
	AvgTemp     float64 `json:"avgTemp"` // Kelvin
}

// bodyResponse keeps avgTemp optional so a missing field is not read as 0 K.
type bodyResponse struct {
	ID          string   `json:"id"`
	EnglishName string   `json:"englishName"`
	AvgTemp     *float64 `json:"avgTemp"`
}

type peopleResponse struct {
	Message string      `json:"message"`
	Number  int         `json:"number"`
	People  []Astronaut `json:"people"`
}
