package profiles

import "testing"

func TestMakeSlug(t *testing.T) {
	cases := []struct {
		name, lastname, want string
	}{
		{"Ada", "Lovelace", "ada-lovelace"},
		{"  Grace ", " Hopper ", "grace-hopper"},
		{"Jean-Luc", "Picard", "jean-luc-picard"},
		{"Önder", "Çelik", "nder-elik"},
		{"", "", "student"},
		{"!!!", "???", "student"},
	}
	for _, tc := range cases {
		if got := MakeSlug(tc.name, tc.lastname); got != tc.want {
			t.Errorf("MakeSlug(%q, %q) = %q, want %q", tc.name, tc.lastname, got, tc.want)
		}
	}
}

func TestBuildPublicURL(t *testing.T) {
	if got := BuildPublicURL("ada-lovelace-32"); got != "https://internhub.app/p/ada-lovelace-32" {
		t.Fatalf("BuildPublicURL = %q", got)
	}
}
