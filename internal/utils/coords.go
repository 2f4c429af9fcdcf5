package utils

import (
	"regexp"
	"strconv"
)

// Google Maps embed URLs encode the marker position as "...!3d<lat>!2d<lng>...".
var (
	embedLatPattern = regexp.MustCompile(`!3d(-?[0-9.]+)`)
	embedLngPattern = regexp.MustCompile(`!2d(-?[0-9.]+)`)
)

// ExtractEmbedCoords scans a map-embed snippet for the latitude/longitude
// markers used by Google Maps iframes. Returns false when either marker is
// missing or unparseable; embeds from other providers simply yield nothing.
func ExtractEmbedCoords(embed string) (lat, lng float64, ok bool) {
	if embed == "" {
		return 0, 0, false
	}
	latMatch := embedLatPattern.FindStringSubmatch(embed)
	lngMatch := embedLngPattern.FindStringSubmatch(embed)
	if latMatch == nil || lngMatch == nil {
		return 0, 0, false
	}
	lat, latErr := strconv.ParseFloat(latMatch[1], 64)
	lng, lngErr := strconv.ParseFloat(lngMatch[1], 64)
	if latErr != nil || lngErr != nil {
		return 0, 0, false
	}
	return lat, lng, true
}
