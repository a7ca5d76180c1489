package content

import (
	"context"
	"errors"
	"testing"

	"github.com/bakhat123/socal/internal/model"
	"github.com/bakhat123/socal/internal/store"
)

// fakeBlogSource serves blogs from an in-memory map keyed by language.
// Calls are recorded so tests can assert on the fallback sequence.
type fakeBlogSource struct {
	byLang map[string][]model.Blog
	err    error
	calls  []string
}

func (f *fakeBlogSource) ListBlogs(_ context.Context, language string) ([]model.Blog, error) {
	f.calls = append(f.calls, "list:"+language)
	if f.err != nil {
		return nil, f.err
	}
	return f.byLang[language], nil
}

func (f *fakeBlogSource) FindBlog(_ context.Context, language, slug string) (*model.Blog, error) {
	f.calls = append(f.calls, "find:"+language+":"+slug)
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.byLang[language] {
		if f.byLang[language][i].Slug == slug {
			return &f.byLang[language][i], nil
		}
	}
	return nil, store.ErrNotFound
}

type fakeHomeSource struct {
	byLocale map[string]*model.Home
	err      error
}

func (f *fakeHomeSource) FindHome(_ context.Context, locale string) (*model.Home, error) {
	if f.err != nil {
		return nil, f.err
	}
	if home, ok := f.byLocale[locale]; ok {
		return home, nil
	}
	return nil, store.ErrNotFound
}

func newTestResolver(blogs *fakeBlogSource, home *fakeHomeSource) *Resolver {
	if blogs == nil {
		blogs = &fakeBlogSource{}
	}
	if home == nil {
		home = &fakeHomeSource{}
	}
	return NewResolver(blogs, nil, nil, home)
}

func TestBlogsServesRequestedLocale(t *testing.T) {
	blogs := &fakeBlogSource{byLang: map[string][]model.Blog{
		"de": {{Slug: "markt-2024", Language: "de"}},
		"en": {{Slug: "market-2024", Language: "en"}},
	}}
	r := newTestResolver(blogs, nil)

	got, err := r.Blogs(context.Background(), "de")
	if err != nil {
		t.Fatalf("Blogs() error: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "markt-2024" {
		t.Errorf("Blogs(de) = %+v, want the German list", got)
	}
	if len(blogs.calls) != 1 {
		t.Errorf("expected a single store call, got %v", blogs.calls)
	}
}

func TestBlogsFallsBackOnEmptyList(t *testing.T) {
	blogs := &fakeBlogSource{byLang: map[string][]model.Blog{
		"en": {{Slug: "market-2024", Language: "en"}},
	}}
	r := newTestResolver(blogs, nil)

	got, err := r.Blogs(context.Background(), "fr")
	if err != nil {
		t.Fatalf("Blogs() error: %v", err)
	}
	if len(got) != 1 || got[0].Language != "en" {
		t.Errorf("Blogs(fr) = %+v, want the English replacement list", got)
	}
	want := []string{"list:fr", "list:en"}
	if len(blogs.calls) != 2 || blogs.calls[0] != want[0] || blogs.calls[1] != want[1] {
		t.Errorf("call sequence = %v, want %v", blogs.calls, want)
	}
}

func TestBlogsEmptyDefaultLocaleStaysEmpty(t *testing.T) {
	blogs := &fakeBlogSource{byLang: map[string][]model.Blog{}}
	r := newTestResolver(blogs, nil)

	got, err := r.Blogs(context.Background(), "en")
	if err != nil {
		t.Fatalf("Blogs() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Blogs(en) = %+v, want empty", got)
	}
	if len(blogs.calls) != 1 {
		t.Errorf("empty default locale must not retry, calls = %v", blogs.calls)
	}
}

func TestBlogsPropagatesStoreFailure(t *testing.T) {
	failure := errors.New("connection reset")
	blogs := &fakeBlogSource{err: failure}
	r := newTestResolver(blogs, nil)

	_, err := r.Blogs(context.Background(), "de")
	if !errors.Is(err, failure) {
		t.Errorf("Blogs() error = %v, want the store failure", err)
	}
	if len(blogs.calls) != 1 {
		t.Errorf("a store failure must not trigger fallback, calls = %v", blogs.calls)
	}
}

func TestBlogBySlugFallsBackOnMiss(t *testing.T) {
	blogs := &fakeBlogSource{byLang: map[string][]model.Blog{
		"en": {{Slug: "market-2024", Language: "en"}},
	}}
	r := newTestResolver(blogs, nil)

	got, err := r.BlogBySlug(context.Background(), "zh", "market-2024")
	if err != nil {
		t.Fatalf("BlogBySlug() error: %v", err)
	}
	if got.Language != "en" {
		t.Errorf("BlogBySlug(zh) returned language %q, want en", got.Language)
	}
}

func TestBlogBySlugMissInBothLocales(t *testing.T) {
	blogs := &fakeBlogSource{byLang: map[string][]model.Blog{}}
	r := newTestResolver(blogs, nil)

	_, err := r.BlogBySlug(context.Background(), "de", "nope")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("BlogBySlug() error = %v, want ErrNotFound", err)
	}
}

func TestHomeByLocaleFallsBack(t *testing.T) {
	enHome := &model.Home{Locale: "en"}
	home := &fakeHomeSource{byLocale: map[string]*model.Home{"en": enHome}}
	r := newTestResolver(nil, home)

	got, err := r.HomeByLocale(context.Background(), "ar")
	if err != nil {
		t.Fatalf("HomeByLocale() error: %v", err)
	}
	if got.Locale != "en" {
		t.Errorf("HomeByLocale(ar) locale = %q, want en", got.Locale)
	}
}

func TestHomeByLocaleSurfacesFailure(t *testing.T) {
	failure := errors.New("server selection timeout")
	home := &fakeHomeSource{err: failure}
	r := newTestResolver(nil, home)

	_, err := r.HomeByLocale(context.Background(), "de")
	if !errors.Is(err, failure) {
		t.Errorf("HomeByLocale() error = %v, want the store failure, never a default payload", err)
	}
}
