package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Slugify turns an arbitrary string into a lowercase, hyphen-separated
// token safe for URLs and storage paths. Runs of non-alphanumeric
// characters collapse into a single hyphen.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// CourseSlug derives the unique course slug when none was supplied,
// suffixing a unix timestamp to avoid collisions between same-titled courses.
func CourseSlug(title string, now time.Time) string {
	return fmt.Sprintf("%s-%d", Slugify(title), now.Unix())
}
