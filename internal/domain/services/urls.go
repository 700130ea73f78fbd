package services

import "regexp"

// reURL matches http(s) URLs up to the next whitespace.
var reURL = regexp.MustCompile(`https?://\S+`)

// ExtractURLs returns every URL in text, left to right. It never returns nil.
func ExtractURLs(text string) []string {
	urls := reURL.FindAllString(text, -1)
	if urls == nil {
		return []string{}
	}
	return urls
}
