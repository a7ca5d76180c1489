package content

import (
	"context"
	"errors"
	"testing"

	"github.com/bakhat123/socal/internal/model"
)

func slugMapResolver() *Resolver {
	blogs := &fakeBlogSource{byLang: map[string][]model.Blog{
		"en": {
			{Slug: "market-2024", Language: "en", GroupID: "g1"},
			{Slug: "buying-guide", Language: "en"},
		},
		"de": {
			{Slug: "markt-2024", Language: "de", GroupID: "g1"},
			{Slug: "buying-guide", Language: "de"},
		},
	}}
	return newTestResolver(blogs, nil)
}

func TestMapSlug(t *testing.T) {
	r := slugMapResolver()

	tests := []struct {
		name     string
		from, to string
		slug     string
		expected string
	}{
		{
			name: "group match",
			from: "en", to: "de",
			slug:     "market-2024",
			expected: "markt-2024",
		},
		{
			name: "group match reversed",
			from: "de", to: "en",
			slug:     "markt-2024",
			expected: "market-2024",
		},
		{
			name: "no group id, same slug exists in target",
			from: "en", to: "de",
			slug:     "buying-guide",
			expected: "buying-guide",
		},
		{
			name: "unknown source slug keeps identity",
			from: "en", to: "de",
			slug:     "does-not-exist",
			expected: "does-not-exist",
		},
		{
			name: "group absent in target keeps identity",
			from: "en", to: "fr",
			slug:     "market-2024",
			expected: "market-2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.MapSlug(context.Background(), tt.from, tt.to, tt.slug)
			if err != nil {
				t.Fatalf("MapSlug() error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("MapSlug(%s->%s, %q) = %q, want %q", tt.from, tt.to, tt.slug, got, tt.expected)
			}
		})
	}
}

func TestMapSlugEmptyTargetLocaleFallsBack(t *testing.T) {
	// fr has no blogs, so the target list falls back to English and the
	// group match lands on the English slug.
	r := slugMapResolver()

	got, err := r.MapSlug(context.Background(), "de", "fr", "markt-2024")
	if err != nil {
		t.Fatalf("MapSlug() error: %v", err)
	}
	if got != "market-2024" {
		t.Errorf("MapSlug(de->fr) = %q, want the English fallback slug", got)
	}
}

func TestMapSlugPropagatesStoreFailure(t *testing.T) {
	failure := errors.New("no reachable servers")
	r := newTestResolver(&fakeBlogSource{err: failure}, nil)

	_, err := r.MapSlug(context.Background(), "en", "de", "market-2024")
	if !errors.Is(err, failure) {
		t.Errorf("MapSlug() error = %v, want the store failure", err)
	}
}
