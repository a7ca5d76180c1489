// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HomeHero is the hero banner copy on the home page.
type HomeHero struct {
	Badge    string `bson:"badge,omitempty" json:"badge,omitempty"`
	Title    string `bson:"title" json:"title"`
	Subtitle string `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Explore  string `bson:"explore,omitempty" json:"explore,omitempty"`
	Contact  string `bson:"contact,omitempty" json:"contact,omitempty"`
}

// HomeStats holds the headline agency figures.
type HomeStats struct {
	YearsExperience    int     `bson:"yearsExperience,omitempty" json:"yearsExperience,omitempty"`
	BillionInSales     float64 `bson:"billionInSales,omitempty" json:"billionInSales,omitempty"`
	CountriesServed    int     `bson:"countriesServed,omitempty" json:"countriesServed,omitempty"`
	ClientSatisfaction int     `bson:"clientSatisfaction,omitempty" json:"clientSatisfaction,omitempty"`
}

// HomeSection is a titled section intro (blog teaser, testimonials header).
type HomeSection struct {
	Title    string `bson:"title,omitempty" json:"title,omitempty"`
	Subtitle string `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
}

// Testimonial is one client quote on the home page.
type Testimonial struct {
	ID     string `bson:"id,omitempty" json:"id,omitempty"`
	Quote  string `bson:"quote" json:"quote"`
	Author string `bson:"author" json:"author"`
	Rating int    `bson:"rating,omitempty" json:"rating,omitempty"`
	Image  string `bson:"image,omitempty" json:"image,omitempty"`
}

// HomeTestimonials groups the testimonial section.
type HomeTestimonials struct {
	Title    string        `bson:"title,omitempty" json:"title,omitempty"`
	Subtitle string        `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Items    []Testimonial `bson:"items,omitempty" json:"items,omitempty"`
}

// HomeCTA is the closing call-to-action block.
type HomeCTA struct {
	Title  string `bson:"title,omitempty" json:"title,omitempty"`
	Text   string `bson:"text,omitempty" json:"text,omitempty"`
	Button string `bson:"button,omitempty" json:"button,omitempty"`
}

// Home is the per-locale home page configuration. One document per
// locale; written with upsert semantics and never deleted.
type Home struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Locale       string             `bson:"locale" json:"locale"`
	Hero         HomeHero           `bson:"hero" json:"hero"`
	Stats        HomeStats          `bson:"stats,omitempty" json:"stats,omitempty"`
	Blog         HomeSection        `bson:"blog,omitempty" json:"blog,omitempty"`
	Testimonials HomeTestimonials   `bson:"testimonials,omitempty" json:"testimonials,omitempty"`
	CTA          HomeCTA            `bson:"cta,omitempty" json:"cta,omitempty"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
