package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"diacritics", "Büro AG", "buro ag"},
		{"uppercase", "BÜRO AG", "buro ag"},
		{"extra whitespace", "  Büro   AG  ", "buro ag"},
		{"kept punctuation", "Büro-Offices & Co.", "buro-offices & co."},
		{"dropped punctuation", "Acme, Inc. (Berlin)!", "acme inc. berlin"},
		{"ring and umlaut", "Ångström & Söner AB", "angstrom & soner ab"},
		{"empty", "", ""},
		{"whitespace only", "   \t\n ", ""},
		{"symbols only", "™©«»", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Büro AG",
		"  Büro   Offices & Co.  ",
		"Ångström & Söner AB",
		"déjà-vu Café № 5",
		"",
		"---...&&&",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalizeCharset(t *testing.T) {
	allowed := regexp.MustCompile(`^[a-z0-9&\-. ]*$`)
	inputs := []string{
		"Büro AG",
		"Crème brûlée GmbH & Co. KG",
		"日本株式会社",
		"!@#$%^&*()_+",
		"tab\tand\nnewline",
	}
	for _, in := range inputs {
		got := Normalize(in)
		assert.Regexp(t, allowed, got, "input %q", in)
	}
}
