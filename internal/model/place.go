// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaceStats holds aggregate market figures for a city or county page.
type PlaceStats struct {
	Population      int64   `bson:"population,omitempty" json:"population,omitempty"`
	MedianHomePrice float64 `bson:"medianHomePrice,omitempty" json:"medianHomePrice,omitempty"`
	MedianRent      float64 `bson:"medianRent,omitempty" json:"medianRent,omitempty"`
	SchoolRating    float64 `bson:"schoolRating,omitempty" json:"schoolRating,omitempty"`
}

// City represents one localized city guide. (slug, language) uniquely
// identifies a document; cities have no publish-status gate.
type City struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug         string             `bson:"slug" json:"slug"`
	Language     string             `bson:"language" json:"language"`
	Name         string             `bson:"name" json:"name"`
	County       string             `bson:"county,omitempty" json:"county,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	HeroImage    string             `bson:"heroImage,omitempty" json:"heroImage,omitempty"`
	HeroImageAlt string             `bson:"heroImageAlt,omitempty" json:"heroImageAlt,omitempty"`
	Highlights   []string           `bson:"highlights,omitempty" json:"highlights,omitempty"`
	Stats        PlaceStats         `bson:"stats,omitempty" json:"stats,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// County represents one localized county guide, mirroring City.
type County struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug         string             `bson:"slug" json:"slug"`
	Language     string             `bson:"language" json:"language"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	HeroImage    string             `bson:"heroImage,omitempty" json:"heroImage,omitempty"`
	HeroImageAlt string             `bson:"heroImageAlt,omitempty" json:"heroImageAlt,omitempty"`
	Cities       []string           `bson:"cities,omitempty" json:"cities,omitempty"`
	Stats        PlaceStats         `bson:"stats,omitempty" json:"stats,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
