// Package videoref parses user-supplied strings into YouTube media identifiers.
package videoref

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// MediaID is an opaque 11-character YouTube video identifier.
type MediaID string

var (
	// ErrEmpty is returned for blank input.
	ErrEmpty = errors.New("empty video reference")
	// ErrUnparseable is returned when no known URL shape or bare ID matches.
	ErrUnparseable = errors.New("unparseable video reference")
)

// urlPattern matches the three supported URL shapes: watch?v=<id>,
// youtu.be/<id> short links, and /embed/<id>. First match wins.
var urlPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([a-zA-Z0-9_-]{11})`)

// barePattern matches a direct 11-character video ID.
var barePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// Resolve extracts a MediaID from a URL or bare identifier.
// Pure and deterministic; no network access.
func Resolve(input string) (MediaID, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrEmpty
	}

	if m := urlPattern.FindStringSubmatch(input); m != nil {
		return MediaID(m[1]), nil
	}

	if barePattern.MatchString(input) {
		return MediaID(input), nil
	}

	return "", ErrUnparseable
}

// EmbedURL returns the embeddable player URL for a video, with autoplay and
// the JS API enabled so the player accepts postMessage transport commands.
func EmbedURL(id MediaID) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1&enablejsapi=1", id)
}
