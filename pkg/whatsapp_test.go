package pkg

import "testing"

func TestBuildWhatsAppLink(t *testing.T) {
	cases := []struct {
		name    string
		phone   string
		message string
		want    string
	}{
		{name: "local number with message", phone: "012-345 6789", message: "Hello Ah Hock", want: "https://wa.me/60123456789?text=Hello+Ah+Hock"},
		{name: "already international", phone: "+60 12 345 6789", message: "", want: "https://wa.me/60123456789"},
		{name: "empty phone", phone: "  ", message: "hi", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BuildWhatsAppLink(tc.phone, tc.message); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
