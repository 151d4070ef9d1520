package exif

import (
	"reflect"
	"testing"
)

func TestCaption_Empty(t *testing.T) {
	if got := Caption(Metadata{}); got != "" {
		t.Errorf("expected empty caption, got %q", got)
	}
	if got := Caption(nil); got != "" {
		t.Errorf("expected empty caption for nil metadata, got %q", got)
	}
}

func TestCaption_FullSettings(t *testing.T) {
	m := Metadata{
		KeyFocalLength:  "85",
		KeyFNumber:      "1.4",
		KeyExposureTime: "1/125",
		KeyISO:          "800",
	}
	if got := Caption(m); got != "85mm f/1.4 1/125 800" {
		t.Errorf("expected '85mm f/1.4 1/125 800', got %q", got)
	}
}

func TestCaption_SingleFields(t *testing.T) {
	tests := []struct {
		name string
		m    Metadata
		want string
	}{
		{"decimal exposure", Metadata{KeyExposureTime: "0.008"}, "1/125"},
		{"long exposure", Metadata{KeyExposureTime: "2"}, "2s"},
		{"fractional long exposure", Metadata{KeyExposureTime: "1.5"}, "1.5s"},
		{"one second", Metadata{KeyExposureTime: "1"}, "1s"},
		{"rational over one", Metadata{KeyExposureTime: "5/2"}, "2.5s"},
		{"focal only", Metadata{KeyFocalLength: "35"}, "35mm"},
		{"aperture only", Metadata{KeyFNumber: "2.8"}, "f/2.8"},
		{"iso fallback", Metadata{KeyISOSpeedRatings: "1600"}, "1600"},
		{"iso preferred", Metadata{KeyISO: "200", KeyISOSpeedRatings: "1600"}, "200"},
		{"unparseable exposure kept", Metadata{KeyExposureTime: "bulb"}, "bulb"},
		{"unrelated keys only", Metadata{KeyMake: "Nikon", KeyFlash: "16"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Caption(tt.m); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTokens_Order(t *testing.T) {
	m := Metadata{
		KeyISO:          "100",
		KeyExposureTime: "1/4000",
		KeyFocalLength:  "24",
		KeyFNumber:      "8",
	}
	want := []string{"24mm", "f/8", "1/4000", "100"}
	if got := Tokens(m); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseExposure(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1/125", 0.008, true},
		{"0.008", 0.008, true},
		{" 1/60 ", 1.0 / 60, true},
		{"2s", 2, true},
		{"1/0", 0, false},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseExposure(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseExposure(%q): expected (%v, %v), got (%v, %v)", tt.in, tt.want, tt.ok, got, ok)
		}
	}
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"IMG_0001.jpg", "IMG_0001.jpg"},
		{"exactly_twenty_c.jpg", "exactly_twenty_c.jpg"},
		{"twenty_one_chars_.jpg", "twenty_one_chars_..."},
		{"a_very_long_vacation_photo_name.jpg", "a_very_long_vacat..."},
	}
	for _, tt := range tests {
		got := TruncateName(tt.in)
		if got != tt.want {
			t.Errorf("TruncateName(%q): expected %q, got %q", tt.in, tt.want, got)
		}
		if len([]rune(got)) > MaxNameLength {
			t.Errorf("TruncateName(%q) is longer than %d", tt.in, MaxNameLength)
		}
	}
}

func TestCameraLine(t *testing.T) {
	tests := []struct {
		name string
		m    Metadata
		want string
	}{
		{"make and model", Metadata{KeyMake: "Sony", KeyModel: "ILCE-7M3"}, "Sony ILCE-7M3"},
		{"model repeats make", Metadata{KeyMake: "Canon", KeyModel: "Canon EOS R5"}, "Canon EOS R5"},
		{"with lens", Metadata{KeyMake: "Nikon", KeyModel: "Z6", KeyLensModel: "NIKKOR Z 50mm f/1.8 S"}, "Nikon Z6, NIKKOR Z 50mm f/1.8 S"},
		{"lens make fallback", Metadata{KeyModel: "X100V", KeyLensMake: "Fujifilm"}, "X100V, Fujifilm"},
		{"empty", Metadata{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CameraLine(tt.m); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
