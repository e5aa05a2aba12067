// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"strings"
)

// DefaultLanguage is used when a request names no language.
const DefaultLanguage = "python"

var languagePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9+#._-]{0,31}$`)

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeLanguage returns a lower-cased language tag safe to embed in a
// prompt fence. Empty or malformed tags become DefaultLanguage.
func NormalizeLanguage(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if !languagePattern.MatchString(language) {
		return DefaultLanguage
	}
	return language
}
