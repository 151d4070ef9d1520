// Package exif formats camera metadata into short print captions and
// applies ingestion defaults for photos with missing tags.
package exif

import "time"

// Recognized metadata keys.
const (
	KeyMake             = "Make"
	KeyModel            = "Model"
	KeyFocalLength      = "FocalLength"
	KeyFNumber          = "FNumber"
	KeyExposureTime     = "ExposureTime"
	KeyISO              = "ISO"
	KeyISOSpeedRatings  = "ISOSpeedRatings"
	KeyDateTimeOriginal = "DateTimeOriginal"
	KeyLensModel        = "LensModel"
	KeyLensMake         = "LensMake"
	KeyWhiteBalance     = "WhiteBalance"
	KeyExposureMode     = "ExposureMode"
	KeyExposureProgram  = "ExposureProgram"
	KeyMeteringMode     = "MeteringMode"
	KeyFlash            = "Flash"
)

// Keys lists every recognized key.
var Keys = []string{
	KeyMake, KeyModel, KeyFocalLength, KeyFNumber, KeyExposureTime,
	KeyISO, KeyISOSpeedRatings, KeyDateTimeOriginal, KeyLensModel, KeyLensMake,
	KeyWhiteBalance, KeyExposureMode, KeyExposureProgram, KeyMeteringMode, KeyFlash,
}

// Ingestion defaults for missing tags.
const (
	DefaultMake         = "Unknown"
	DefaultModel        = "Camera"
	DefaultFocalLength  = "50"
	DefaultFNumber      = "5.6"
	DefaultExposureTime = "1/60"
	DefaultISO          = "400"
)

// Metadata maps EXIF tag names to free-form values. Absent keys are legal.
type Metadata map[string]string

// Get returns the value for key, or "" when absent.
func (m Metadata) Get(key string) string {
	return m[key]
}

// Clone returns an independent copy.
func (m Metadata) Clone() Metadata {
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// optionalKeys are copied as-is when present and never defaulted.
var optionalKeys = []string{
	KeyWhiteBalance, KeyExposureMode, KeyExposureProgram, KeyMeteringMode, KeyFlash,
}

// WithDefaults returns the ingestion view of raw metadata: core tags get
// their defaults when missing, ISO falls back to ISOSpeedRatings, the lens
// falls back to LensMake, and a missing capture date becomes now's date.
// raw is not modified.
func WithDefaults(raw Metadata, now time.Time) Metadata {
	out := Metadata{
		KeyMake:             firstNonEmpty(raw[KeyMake], DefaultMake),
		KeyModel:            firstNonEmpty(raw[KeyModel], DefaultModel),
		KeyFocalLength:      firstNonEmpty(raw[KeyFocalLength], DefaultFocalLength),
		KeyFNumber:          firstNonEmpty(raw[KeyFNumber], DefaultFNumber),
		KeyExposureTime:     firstNonEmpty(raw[KeyExposureTime], DefaultExposureTime),
		KeyISO:              firstNonEmpty(raw[KeyISO], raw[KeyISOSpeedRatings], DefaultISO),
		KeyDateTimeOriginal: firstNonEmpty(raw[KeyDateTimeOriginal], now.Format(time.DateOnly)),
	}
	if lens := firstNonEmpty(raw[KeyLensModel], raw[KeyLensMake]); lens != "" {
		out[KeyLensModel] = lens
	}
	for _, k := range optionalKeys {
		if v := raw[k]; v != "" {
			out[k] = v
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
