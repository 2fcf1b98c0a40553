package responder

import "regexp"

// unsafePatterns match requests for vaccine-avoidance or home-made vaccine
// instructions.
var unsafePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)how to make`),
	regexp.MustCompile(`(?i)diy vaccine`),
	regexp.MustCompile(`(?i)avoid vaccine`),
	regexp.MustCompile(`(?i)skip vaccine`),
	regexp.MustCompile(`(?i)vaccine harmful`),
	regexp.MustCompile(`(?i)vaccine dangerous`),
}

// IsUnsafeQuery reports whether the message must be answered with the safety
// redirect instead of being passed to a Responder.
func IsUnsafeQuery(message string) bool {
	for _, p := range unsafePatterns {
		if p.MatchString(message) {
			return true
		}
	}
	return false
}
