package template

import "testing"

func TestDefaultLabeler(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"amount", "Amount"},
		{"document_number", "Document Number"},
		{"client-name", "Client Name"},
		{"clientName", "Client Name"},
		{"agencyIBAN", "Agency Iban"},
		{"line2", "Line 2"},
	}

	for _, tc := range cases {
		if got := DefaultLabeler(tc.input); got != tc.want {
			t.Fatalf("DefaultLabeler(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
