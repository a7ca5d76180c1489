// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content implements the locale-fallback content resolution
// policy shared by blogs, cities, counties and home content, the
// cross-locale slug mapper, and the validation contracts enforced in
// front of all content writes.
package content

import (
	"context"
	"errors"

	"github.com/bakhat123/socal/internal/i18n"
	"github.com/bakhat123/socal/internal/model"
	"github.com/bakhat123/socal/internal/store"
)

// BlogSource lists and looks up Published blogs by language.
type BlogSource interface {
	ListBlogs(ctx context.Context, language string) ([]model.Blog, error)
	FindBlog(ctx context.Context, language, slug string) (*model.Blog, error)
}

// CitySource lists and looks up city guides by language.
type CitySource interface {
	ListCities(ctx context.Context, language string) ([]model.City, error)
	FindCity(ctx context.Context, language, slug string) (*model.City, error)
}

// CountySource lists and looks up county guides by language.
type CountySource interface {
	ListCounties(ctx context.Context, language string) ([]model.County, error)
	FindCounty(ctx context.Context, language, slug string) (*model.County, error)
}

// HomeSource looks up the per-locale home configuration.
type HomeSource interface {
	FindHome(ctx context.Context, locale string) (*model.Home, error)
}

// Resolver resolves (content type, locale, key) tuples to documents,
// retrying with the default locale on a miss. It is read-only: a store
// failure always propagates and is never folded into an empty result.
type Resolver struct {
	blogs    BlogSource
	cities   CitySource
	counties CountySource
	home     HomeSource
}

// NewResolver creates a Resolver over the given sources.
func NewResolver(blogs BlogSource, cities CitySource, counties CountySource, home HomeSource) *Resolver {
	return &Resolver{blogs: blogs, cities: cities, counties: counties, home: home}
}

// resolveOne fetches a single document for the requested locale and, on
// a not-found miss only, retries with the default locale. Every other
// error propagates unchanged.
func resolveOne[T any](ctx context.Context, locale string, find func(context.Context, string) (*T, error)) (*T, error) {
	doc, err := find(ctx, locale)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, store.ErrNotFound) || locale == i18n.DefaultLocale {
		return nil, err
	}
	return find(ctx, i18n.DefaultLocale)
}

// resolveList fetches the full set for the requested locale. An empty
// set for a non-default locale is replaced wholesale by the default
// locale's set; the two are never merged.
func resolveList[T any](ctx context.Context, locale string, list func(context.Context, string) ([]T, error)) ([]T, error) {
	docs, err := list(ctx, locale)
	if err != nil {
		return nil, err
	}
	if len(docs) > 0 || locale == i18n.DefaultLocale {
		return docs, nil
	}
	return list(ctx, i18n.DefaultLocale)
}

// Blogs returns the Published blog list for a locale, falling back to
// the default locale when the list is empty.
func (r *Resolver) Blogs(ctx context.Context, locale string) ([]model.Blog, error) {
	return resolveList(ctx, locale, r.blogs.ListBlogs)
}

// BlogBySlug returns one Published blog, falling back to the default
// locale when the (slug, locale) pair has no document.
func (r *Resolver) BlogBySlug(ctx context.Context, locale, slug string) (*model.Blog, error) {
	return resolveOne(ctx, locale, func(ctx context.Context, lang string) (*model.Blog, error) {
		return r.blogs.FindBlog(ctx, lang, slug)
	})
}

// Cities returns the city guide list for a locale with default-locale
// fallback.
func (r *Resolver) Cities(ctx context.Context, locale string) ([]model.City, error) {
	return resolveList(ctx, locale, r.cities.ListCities)
}

// CityBySlug returns one city guide with default-locale fallback.
func (r *Resolver) CityBySlug(ctx context.Context, locale, slug string) (*model.City, error) {
	return resolveOne(ctx, locale, func(ctx context.Context, lang string) (*model.City, error) {
		return r.cities.FindCity(ctx, lang, slug)
	})
}

// Counties returns the county guide list for a locale with
// default-locale fallback.
func (r *Resolver) Counties(ctx context.Context, locale string) ([]model.County, error) {
	return resolveList(ctx, locale, r.counties.ListCounties)
}

// CountyBySlug returns one county guide with default-locale fallback.
func (r *Resolver) CountyBySlug(ctx context.Context, locale, slug string) (*model.County, error) {
	return resolveOne(ctx, locale, func(ctx context.Context, lang string) (*model.County, error) {
		return r.counties.FindCounty(ctx, lang, slug)
	})
}

// HomeByLocale returns the home configuration for a locale with
// default-locale fallback. A store failure surfaces to the caller; it
// is never masked by a default payload.
func (r *Resolver) HomeByLocale(ctx context.Context, locale string) (*model.Home, error) {
	return resolveOne(ctx, locale, r.home.FindHome)
}
