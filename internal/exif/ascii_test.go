package exif

import "testing"

func TestASCII(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"IMG_0001.jpg", "IMG_0001.jpg"},
		{"Jiří v Třeboni.jpg", "Jiri v Treboni.jpg"},
		{"Café crème", "Cafe creme"},
		{"tab\there", "tab here"},
		{"bell\x07", "bell"},
		{"写真.jpg", "??.jpg"},
	}
	for _, tt := range tests {
		if got := ASCII(tt.in); got != tt.want {
			t.Errorf("ASCII(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
