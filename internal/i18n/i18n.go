// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package i18n defines the locale set served by the site and helpers
// for validating and normalizing locale codes.
package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLocale is the fallback language for all content resolution.
const DefaultLocale = "en"

// locales is the fixed set of languages the site is translated into.
var locales = []string{"en", "de", "fr", "zh", "ar", "es"}

// Locales returns a copy of the supported locale codes, default first.
func Locales() []string {
	out := make([]string, len(locales))
	copy(out, locales)
	return out
}

// IsSupported reports whether code is exactly one of the supported
// locale codes.
func IsSupported(code string) bool {
	for _, l := range locales {
		if l == code {
			return true
		}
	}
	return false
}

// Normalize parses a BCP 47 language tag and reduces it to a supported
// base locale code ("de-AT" -> "de"). The second return is false when
// the tag is unparseable or its base language is not served.
func Normalize(code string) (string, bool) {
	if IsSupported(code) {
		return code, true
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	if c := base.String(); IsSupported(c) {
		return c, true
	}
	return "", false
}
