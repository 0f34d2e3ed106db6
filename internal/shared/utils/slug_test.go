package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"turkish characters", "Şeker Yiyelim Çay İçelim Ğ", "seker-yiyelim-cay-icelim-g"},
		{"whitespace collapse", "  DotNet    Core      Dersleri  ", "dotnet-core-dersleri"},
		{"simple title", "Hello World", "hello-world"},
		{"punctuation stripped", "Go 1.24: What's New?", "go-124-whats-new"},
		{"dotted capital i", "İstanbul Gezisi", "istanbul-gezisi"},
		{"dotless i", "Ilık sıcak", "ilik-sicak"},
		{"already slugged", "zaten-slug", "zaten-slug"},
		{"empty", "", ""},
		{"only symbols", "!!! ???", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GenerateSlug(tc.input))
		})
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	inputs := []string{
		"Şeker Yiyelim Çay İçelim Ğ",
		"  DotNet    Core      Dersleri  ",
		"Merhaba Dünya",
	}
	for _, input := range inputs {
		once := GenerateSlug(input)
		assert.Equal(t, once, GenerateSlug(once))
	}
}
