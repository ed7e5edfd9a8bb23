// Package cities holds the static Sri Lankan city reference table used to
// translate a user-selected city name into coordinates for radius queries.
// It is plain data with a lookup; it has no other behavior.
package cities

import (
	"sort"
	"strings"
)

// City is one (name, coordinates, district) tuple, fixed at build time.
type City struct {
	Name     string
	Lat      float64
	Lng      float64
	District string
}

// Coordinates is a (lat, lng) pair.
type Coordinates struct {
	Lat float64
	Lng float64
}

var all = []City{
	// Western Province
	{Name: "Colombo", Lat: 6.9271, Lng: 79.8612, District: "Colombo"},
	{Name: "Dehiwala-Mount Lavinia", Lat: 6.8417, Lng: 79.8653, District: "Colombo"},
	{Name: "Moratuwa", Lat: 6.7731, Lng: 79.8817, District: "Colombo"},
	{Name: "Sri Jayawardenepura Kotte", Lat: 6.9, Lng: 79.95, District: "Colombo"},
	{Name: "Negombo", Lat: 7.2083, Lng: 79.8358, District: "Gampaha"},
	{Name: "Gampaha", Lat: 7.0917, Lng: 80.0014, District: "Gampaha"},
	{Name: "Kalutara", Lat: 6.5854, Lng: 79.9607, District: "Kalutara"},

	// Central Province
	{Name: "Kandy", Lat: 7.2906, Lng: 80.6337, District: "Kandy"},
	{Name: "Matale", Lat: 7.4686, Lng: 80.6236, District: "Matale"},
	{Name: "Nuwara Eliya", Lat: 6.9497, Lng: 80.7891, District: "Nuwara Eliya"},

	// Southern Province
	{Name: "Galle", Lat: 6.0535, Lng: 80.221, District: "Galle"},
	{Name: "Matara", Lat: 5.9549, Lng: 80.535, District: "Matara"},
	{Name: "Hambantota", Lat: 6.1241, Lng: 81.1185, District: "Hambantota"},

	// Northern Province
	{Name: "Jaffna", Lat: 9.6615, Lng: 80.0255, District: "Jaffna"},
	{Name: "Vavuniya", Lat: 8.7514, Lng: 80.4971, District: "Vavuniya"},
	{Name: "Mannar", Lat: 8.9811, Lng: 79.9044, District: "Mannar"},

	// Eastern Province
	{Name: "Trincomalee", Lat: 8.5874, Lng: 81.2152, District: "Trincomalee"},
	{Name: "Batticaloa", Lat: 7.7210, Lng: 81.6924, District: "Batticaloa"},
	{Name: "Ampara", Lat: 7.2917, Lng: 81.6722, District: "Ampara"},

	// North Western Province
	{Name: "Kurunegala", Lat: 7.4864, Lng: 80.3647, District: "Kurunegala"},
	{Name: "Puttalam", Lat: 8.0403, Lng: 79.8283, District: "Puttalam"},
	{Name: "Chilaw", Lat: 7.5763, Lng: 79.7947, District: "Puttalam"},

	// North Central Province
	{Name: "Anuradhapura", Lat: 8.3114, Lng: 80.4037, District: "Anuradhapura"},
	{Name: "Polonnaruwa", Lat: 7.9403, Lng: 81.0188, District: "Polonnaruwa"},

	// Uva Province
	{Name: "Badulla", Lat: 6.9934, Lng: 81.0550, District: "Badulla"},
	{Name: "Monaragala", Lat: 6.8728, Lng: 81.3506, District: "Monaragala"},

	// Sabaragamuwa Province
	{Name: "Ratnapura", Lat: 6.6828, Lng: 80.3992, District: "Ratnapura"},
	{Name: "Kegalle", Lat: 7.2523, Lng: 80.3436, District: "Kegalle"},
}

// GetCoordinates returns the coordinates for a city name. The lookup is
// case-insensitive. The second return value is false for unknown cities.
func GetCoordinates(name string) (Coordinates, bool) {
	for _, c := range all {
		if strings.EqualFold(c.Name, name) {
			return Coordinates{Lat: c.Lat, Lng: c.Lng}, true
		}
	}
	return Coordinates{}, false
}

// Names returns all city names in alphabetical order, for prompts.
func Names() []string {
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = c.Name
	}
	sort.Strings(names)
	return names
}

// All returns the full reference table. Callers must not modify it.
func All() []City {
	return all
}
