// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"

	"github.com/bakhat123/socal/internal/model"
)

// MapSlug maps a blog slug from one locale to its counterpart in
// another. Translated articles share a group_id, so the target slug is
// found by group rather than by name; when no mapping exists the
// original slug is returned unchanged and navigation degrades to a
// best guess instead of breaking. Only a store failure is an error.
func (r *Resolver) MapSlug(ctx context.Context, fromLocale, toLocale, slug string) (string, error) {
	fromBlogs, err := r.Blogs(ctx, fromLocale)
	if err != nil {
		return "", err
	}
	toBlogs, err := r.Blogs(ctx, toLocale)
	if err != nil {
		return "", err
	}

	source := blogBySlug(fromBlogs, slug)
	if source == nil {
		return slug, nil
	}

	if source.GroupID == "" {
		// No translation group: a same-named slug in the target locale
		// is the best available match.
		if target := blogBySlug(toBlogs, slug); target != nil {
			return target.Slug, nil
		}
		return slug, nil
	}

	for i := range toBlogs {
		if toBlogs[i].GroupID == source.GroupID {
			return toBlogs[i].Slug, nil
		}
	}
	return slug, nil
}

func blogBySlug(blogs []model.Blog, slug string) *model.Blog {
	for i := range blogs {
		if blogs[i].Slug == slug {
			return &blogs[i]
		}
	}
	return nil
}
