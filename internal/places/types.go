// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package places

import "github.com/tomtom215/nightroute/internal/models"

// Provider status values.
const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
)

// latLng is the provider's coordinate object.
type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (l latLng) coordinates() models.Coordinates {
	return models.Coordinates{Lat: l.Lat, Lng: l.Lng}
}

// placeResult is one entry of a nearby or text search answer.
type placeResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Vicinity         string   `json:"vicinity"`
	FormattedAddress string   `json:"formatted_address"`
	Types            []string `json:"types"`
	Rating           *float64 `json:"rating"`
	PriceLevel       *int     `json:"price_level"`
	Geometry         struct {
		Location *latLng `json:"location"`
	} `json:"geometry"`
	Photos []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
}

// searchResponse wraps nearbysearch and textsearch answers.
type searchResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
	Results      []placeResult `json:"results"`
}

// textValue is a provider measurement with display text.
type textValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type directionsStep struct {
	StartLocation latLng `json:"start_location"`
	EndLocation   latLng `json:"end_location"`
}

type directionsLeg struct {
	Distance textValue        `json:"distance"`
	Duration textValue        `json:"duration"`
	Steps    []directionsStep `json:"steps"`
}

// directionsResponse is the walking directions answer.
type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		Legs []directionsLeg `json:"legs"`
	} `json:"routes"`
}

// toVenue converts a provider place into a venue. Places without geometry
// keep a nil Location.
func (p *placeResult) toVenue() models.Venue {
	v := models.Venue{
		ID:         p.PlaceID,
		Name:       p.Name,
		Address:    p.Vicinity,
		Types:      append([]string(nil), p.Types...),
		Rating:     p.Rating,
		PriceLevel: p.PriceLevel,
	}
	if v.Address == "" {
		v.Address = p.FormattedAddress
	}
	if p.Geometry.Location != nil {
		loc := p.Geometry.Location.coordinates()
		v.Location = &loc
	}
	if len(p.Photos) > 0 {
		v.PhotoRef = p.Photos[0].PhotoReference
	}
	return v
}

// toDirections converts the first leg of the first route. The path follows
// step boundaries from origin to destination.
func (r *directionsResponse) toDirections() *models.Directions {
	if len(r.Routes) == 0 || len(r.Routes[0].Legs) == 0 {
		return nil
	}
	leg := r.Routes[0].Legs[0]

	d := &models.Directions{
		DistanceText:    leg.Distance.Text,
		DistanceMeters:  leg.Distance.Value,
		DurationText:    leg.Duration.Text,
		DurationSeconds: leg.Duration.Value,
	}
	if len(leg.Steps) > 0 {
		d.Path = make([]models.Coordinates, 0, len(leg.Steps)+1)
		d.Path = append(d.Path, leg.Steps[0].StartLocation.coordinates())
		for _, s := range leg.Steps {
			d.Path = append(d.Path, s.EndLocation.coordinates())
		}
	}
	return d
}
