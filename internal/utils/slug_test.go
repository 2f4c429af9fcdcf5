package utils

import "testing"

func TestSlugifyBasic(t *testing.T) {
	got := Slugify("Smart Hut Apartments")
	if got != "smart-hut-apartments" {
		t.Fatalf("Expected 'smart-hut-apartments', got '%s'", got)
	}
}

func TestSlugifyCollapsesAndTrims(t *testing.T) {
	cases := map[string]string{
		"  2BR -- Kilimani!!  ":      "2br-kilimani",
		"Nyumba @ Ngong' Road":       "nyumba-ngong-road",
		"---Bedsitter---":            "bedsitter",
		"Studio (Westlands), Ksh10k": "studio-westlands-ksh10k",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestSlugifyNonASCIIOnly(t *testing.T) {
	if got := Slugify("!!!"); got != "" {
		t.Fatalf("Expected empty slug, got '%s'", got)
	}
}
