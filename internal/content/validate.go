// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"fmt"
	"time"

	"github.com/bakhat123/socal/internal/i18n"
	"github.com/bakhat123/socal/internal/model"
	"github.com/bakhat123/socal/internal/util"
)

// MissingFieldError names the exact field a write payload is missing.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

// InvalidFieldError names a field that is present but unusable.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
}

func missing(field string) error { return &MissingFieldError{Field: field} }

// CreateBlogRequest is the payload for creating a blog. Optional
// numeric fields use pointers so that zero is a present value; presence
// is checked explicitly, never by truthiness.
type CreateBlogRequest struct {
	Slug         string               `json:"slug"`
	Title        string               `json:"title"`
	Subtitle     string               `json:"subtitle,omitempty"`
	Category     string               `json:"category"`
	Author       *model.Author        `json:"author"`
	Date         string               `json:"date"`
	ReadTime     string               `json:"readTime"`
	HeroImage    string               `json:"heroImage"`
	HeroImageAlt string               `json:"heroImageAlt"`
	CanonicalURL string               `json:"canonicalUrl"`
	Language     string               `json:"language"`
	City         string               `json:"city"`
	Topic        string               `json:"topic"`
	Keyword      string               `json:"keyword"`
	GroupID      string               `json:"group_id"`
	SEO          *model.SEO           `json:"seo"`
	HreflangTags []model.HreflangTag  `json:"hreflang_tags"`
	Content      *model.BlogContent   `json:"content"`
	CTASection   *model.CTASection    `json:"ctaSection"`
	WordCount    *int                 `json:"wordcount"`
	Status       string               `json:"status,omitempty"`
	Views        *int64               `json:"views,omitempty"`
	Likes        *int64               `json:"likes,omitempty"`
}

// Validate checks the full required-field contract before any write is
// attempted. The first violation is returned as a MissingFieldError (or
// InvalidFieldError) naming the field; no partial inserts happen.
func (req *CreateBlogRequest) Validate() error {
	required := []struct {
		field string
		ok    bool
	}{
		{"slug", req.Slug != ""},
		{"title", req.Title != ""},
		{"category", req.Category != ""},
		{"author", req.Author != nil},
		{"date", req.Date != ""},
		{"readTime", req.ReadTime != ""},
		{"heroImage", req.HeroImage != ""},
		{"heroImageAlt", req.HeroImageAlt != ""},
		{"canonicalUrl", req.CanonicalURL != ""},
		{"language", req.Language != ""},
		{"city", req.City != ""},
		{"topic", req.Topic != ""},
		{"keyword", req.Keyword != ""},
		{"group_id", req.GroupID != ""},
		{"seo", req.SEO != nil},
		{"hreflang_tags", len(req.HreflangTags) > 0},
		{"wordcount", req.WordCount != nil},
		{"ctaSection", req.CTASection != nil},
		{"content", req.Content != nil},
	}
	for _, f := range required {
		if !f.ok {
			return missing(f.field)
		}
	}

	switch {
	case req.Author.Name == "":
		return missing("author.name")
	case req.Author.Title == "":
		return missing("author.title")
	case req.Author.Avatar == "":
		return missing("author.avatar")
	case req.Author.Bio == "":
		return missing("author.bio")
	case req.Content.Lead == "":
		return missing("content.lead")
	case len(req.Content.Sections) == 0:
		return missing("content.sections")
	case req.SEO.MetaTitle == "":
		return missing("seo.metaTitle")
	case req.SEO.MetaDescription == "":
		return missing("seo.metaDescription")
	case req.CTASection.Title == "":
		return missing("ctaSection.title")
	case req.CTASection.CTAText == "":
		return missing("ctaSection.ctaText")
	case req.CTASection.CTALink == "":
		return missing("ctaSection.ctaLink")
	}

	if !util.IsValidSlug(req.Slug) {
		return &InvalidFieldError{Field: "slug", Reason: "must contain only lowercase letters, digits and hyphens"}
	}
	if !i18n.IsSupported(req.Language) {
		return &InvalidFieldError{Field: "language", Reason: "unsupported locale code"}
	}
	if req.Status != "" && req.Status != model.BlogStatusDraft && req.Status != model.BlogStatusPublished {
		return &InvalidFieldError{Field: "status", Reason: "must be Draft or Published"}
	}
	return nil
}

// Blog builds the document to insert, applying create-time defaults:
// status Draft, zero views and likes, createdAt = updatedAt = now.
func (req *CreateBlogRequest) Blog(now time.Time) *model.Blog {
	blog := &model.Blog{
		Slug:         req.Slug,
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		Category:     req.Category,
		Author:       *req.Author,
		Date:         req.Date,
		ReadTime:     req.ReadTime,
		HeroImage:    req.HeroImage,
		HeroImageAlt: req.HeroImageAlt,
		CanonicalURL: req.CanonicalURL,
		Language:     req.Language,
		City:         req.City,
		Topic:        req.Topic,
		Keyword:      req.Keyword,
		GroupID:      req.GroupID,
		SEO:          *req.SEO,
		HreflangTags: req.HreflangTags,
		Content:      *req.Content,
		CTASection:   *req.CTASection,
		Status:       req.Status,
		WordCount:    *req.WordCount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if blog.Status == "" {
		blog.Status = model.BlogStatusDraft
	}
	if req.Views != nil {
		blog.Views = *req.Views
	}
	if req.Likes != nil {
		blog.Likes = *req.Likes
	}
	return blog
}

// CreateUserRequest is the payload for creating an admin-panel account.
// Password is optional: externally authenticated accounts have none.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
	Status   string `json:"status,omitempty"`
}

// Validate checks the account contract.
func (req *CreateUserRequest) Validate() error {
	if req.Email == "" {
		return missing("email")
	}
	return nil
}

// User builds the account document with defaults applied. The password
// hash is supplied by the caller; the store never holds plaintext.
func (req *CreateUserRequest) User(passwordHash string, now time.Time) *model.User {
	user := &model.User{
		Email:        util.NormalizeEmail(req.Email),
		PasswordHash: passwordHash,
		Role:         req.Role,
		Status:       req.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	if user.Status == "" {
		user.Status = model.UserStatusActive
	}
	return user
}
