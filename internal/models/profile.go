// NightRoute - Venue Matching and Walkable Night-Out Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nightroute

package models

// UserTasteProfile is the user's declared taste.
type UserTasteProfile struct {
	// Tokens are taste tokens drawn from the food and vibe vocabularies.
	// Unknown tokens are ignored by scoring.
	Tokens []string `json:"tokens"`

	// FineTune holds optional refinements.
	FineTune FineTune `json:"fine_tune"`
}

// FineTune narrows matching beyond taste tokens.
type FineTune struct {
	// PriceRange is the accepted set of tier symbols ("$" .. "$$$$").
	PriceRange []string `json:"price_range,omitempty" validate:"dive,oneof=$ $$ $$$ $$$$"`

	// Avoid lists dietary or avoid keywords. Underscores read as spaces.
	Avoid []string `json:"avoid,omitempty"`

	// Pickiness is carried for the UI; scoring does not use it.
	Pickiness string `json:"pickiness,omitempty"`
}

// Energy is the desired energy level of the night.
type Energy string

const (
	EnergyChill    Energy = "chill"
	EnergySocial   Energy = "social"
	EnergyElectric Energy = "electric"
)

// Crowd is the desired crowd density.
type Crowd string

const (
	CrowdIntimate Crowd = "intimate"
	CrowdMixed    Crowd = "mixed"
	CrowdPacked   Crowd = "packed"
)

// Music is the desired music level.
type Music string

const (
	MusicNone       Music = "none"
	MusicBackground Music = "background"
	MusicDJ         Music = "dj"
)

// StopType is a requested slot in a specific journey.
type StopType string

const (
	StopDinner  StopType = "dinner"
	StopDrinks  StopType = "drinks"
	StopDessert StopType = "dessert"
	StopCoffee  StopType = "coffee"
)

// MoodPreferences describes the night the user wants. Empty dimensions are
// treated as "no preference".
type MoodPreferences struct {
	Energy        Energy     `json:"energy,omitempty" validate:"omitempty,oneof=chill social electric"`
	Crowd         Crowd      `json:"crowd,omitempty" validate:"omitempty,oneof=intimate mixed packed"`
	Music         Music      `json:"music,omitempty" validate:"omitempty,oneof=none background dj"`
	NumberOfStops int        `json:"number_of_stops" validate:"min=2,max=4"`
	StopTypes     []StopType `json:"stop_types,omitempty" validate:"max=4,dive,oneof=dinner drinks dessert coffee"`
}
