package controllers

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// userTextPolicy strips every HTML element from user-supplied text;
// posts, comments and bios are plain text.
var userTextPolicy = bluemonday.StrictPolicy()

func sanitizeText(s string) string {
	return strings.TrimSpace(userTextPolicy.Sanitize(s))
}
