// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sanitize

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain ascii unchanged", in: "report.docx", want: "report.docx"},
		{name: "lowercase turkish", in: "ığüşöç.doc", want: "igusoc.doc"},
		{name: "uppercase turkish", in: "İĞÜŞÖÇ.doc", want: "IGUSOC.doc"},
		{name: "mixed name", in: "Çalışma Raporu-2024.docx", want: "Calisma Raporu-2024.docx"},
		{name: "path separators", in: "../etc/passwd", want: ".._etc_passwd"},
		{name: "punctuation", in: "a(b)&c!.doc", want: "a_b__c_.doc"},
		{name: "decomposed cedilla", in: "s\u0327irket.doc", want: "sirket.doc"},
		{name: "other letters kept", in: "résumé.docx", want: "résumé.docx"},
		{name: "empty", in: "", want: ""},
		{name: "emoji", in: "📄.pdf", want: "_.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.in))
		})
	}
}

func TestFilename_OnlySafeRunes(t *testing.T) {
	inputs := []string{
		"Öğrenci Listesi (son).docx",
		"ŞİRKET/rapor:2024?.doc",
		"tab\there\nnewline.doc",
		"ığüşöçİĞÜŞÖÇ",
	}
	for _, in := range inputs {
		got := Filename(in)
		for _, r := range got {
			ok := unicode.IsLetter(r) || unicode.IsNumber(r) || strings.ContainsRune("._- ", r)
			assert.Truef(t, ok, "Filename(%q) = %q contains %q", in, got, r)
		}
		assert.NotContains(t, got, "ı")
		assert.NotContains(t, got, "ş")
	}
}

func TestFilename_Deterministic(t *testing.T) {
	in := "Müşteri Sözleşmesi.docx"
	assert.Equal(t, Filename(in), Filename(in))
}

func TestFilename_Idempotent(t *testing.T) {
	inputs := []string{
		"Çalışma Raporu.docx",
		"a/b\\c.doc",
		"s\u0327irket.doc",
		"already_safe-name 1.pdf",
	}
	for _, in := range inputs {
		once := Filename(in)
		assert.Equal(t, once, Filename(once), "input %q", in)
	}
}
