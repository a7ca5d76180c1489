// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain documents and types used throughout the
// application including Blog, City, County, Home, User and Event structures.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog statuses
const (
	BlogStatusDraft     = "Draft"
	BlogStatusPublished = "Published"
)

// Author describes the person credited on a blog post.
type Author struct {
	Name   string `bson:"name" json:"name"`
	Title  string `bson:"title" json:"title"`
	Avatar string `bson:"avatar" json:"avatar"`
	Bio    string `bson:"bio" json:"bio"`
}

// SEO holds per-document search metadata.
type SEO struct {
	MetaTitle       string   `bson:"metaTitle" json:"metaTitle"`
	MetaDescription string   `bson:"metaDescription" json:"metaDescription"`
	OGImage         string   `bson:"ogImage,omitempty" json:"ogImage,omitempty"`
	OGTitle         string   `bson:"ogTitle,omitempty" json:"ogTitle,omitempty"`
	OGDescription   string   `bson:"ogDescription,omitempty" json:"ogDescription,omitempty"`
	Keywords        []string `bson:"keywords,omitempty" json:"keywords,omitempty"`
	TwitterCard     string   `bson:"twitterCard,omitempty" json:"twitterCard,omitempty"`
}

// HreflangTag is one alternate-language link for a document.
type HreflangTag struct {
	Hreflang string `bson:"hreflang" json:"hreflang"`
	Href     string `bson:"href" json:"href"`
}

// Section is one body section of a blog post.
type Section struct {
	Title string `bson:"title,omitempty" json:"title,omitempty"`
	Body  string `bson:"body" json:"body"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// BlogContent is the structured article body: a lead paragraph followed
// by at least one section.
type BlogContent struct {
	Lead     string    `bson:"lead" json:"lead"`
	Sections []Section `bson:"sections" json:"sections"`
}

// CTASection is the call-to-action block at the end of a post.
type CTASection struct {
	Title   string `bson:"title" json:"title"`
	CTAText string `bson:"ctaText" json:"ctaText"`
	CTALink string `bson:"ctaLink" json:"ctaLink"`
}

// Blog represents one localized blog article. Translations of the same
// conceptual article share a group_id; within one group_id there is at
// most one document per language.
type Blog struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug         string             `bson:"slug" json:"slug"`
	Title        string             `bson:"title" json:"title"`
	Subtitle     string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Category     string             `bson:"category" json:"category"`
	Author       Author             `bson:"author" json:"author"`
	Date         string             `bson:"date" json:"date"`
	ReadTime     string             `bson:"readTime" json:"readTime"`
	HeroImage    string             `bson:"heroImage" json:"heroImage"`
	HeroImageAlt string             `bson:"heroImageAlt" json:"heroImageAlt"`
	CanonicalURL string             `bson:"canonicalUrl" json:"canonicalUrl"`
	Language     string             `bson:"language" json:"language"`
	City         string             `bson:"city" json:"city"`
	Topic        string             `bson:"topic" json:"topic"`
	Keyword      string             `bson:"keyword" json:"keyword"`
	GroupID      string             `bson:"group_id" json:"group_id"`
	SEO          SEO                `bson:"seo" json:"seo"`
	HreflangTags []HreflangTag      `bson:"hreflang_tags" json:"hreflang_tags"`
	Content      BlogContent        `bson:"content" json:"content"`
	CTASection   CTASection         `bson:"ctaSection" json:"ctaSection"`
	Status       string             `bson:"status" json:"status"`
	Views        int64              `bson:"views" json:"views"`
	Likes        int64              `bson:"likes" json:"likes"`
	WordCount    int                `bson:"wordcount" json:"wordcount"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsPublished returns true if the blog is externally visible.
func (b *Blog) IsPublished() bool {
	return b.Status == BlogStatusPublished
}
