package utils

import "testing"

func TestExtractEmbedCoords(t *testing.T) {
	embed := `<iframe src="https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3988.78!2d36.8219462!3d-1.2920659!2m3"></iframe>`

	lat, lng, ok := ExtractEmbedCoords(embed)
	if !ok {
		t.Fatal("Expected coordinates to be extracted")
	}
	if lat != -1.2920659 {
		t.Fatalf("Expected lat -1.2920659, got %v", lat)
	}
	if lng != 36.8219462 {
		t.Fatalf("Expected lng 36.8219462, got %v", lng)
	}
}

func TestExtractEmbedCoordsMissingMarkers(t *testing.T) {
	for _, embed := range []string{
		"",
		"https://example.com/maps?q=nairobi",
		"!3d-1.2920659", // lat only
		"!2d36.8219462", // lng only
	} {
		if _, _, ok := ExtractEmbedCoords(embed); ok {
			t.Fatalf("Expected no coordinates for %q", embed)
		}
	}
}
