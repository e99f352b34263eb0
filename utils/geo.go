package utils

import (
	"math"
	"regexp"
	"strings"
)

const earthRadiusKm = 6371

// HaversineKm returns the great-circle distance between two coordinates in
// kilometres.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRad(v float64) float64 {
	return v * math.Pi / 180
}

// Plus Code format: 8 code characters, "+", 2-3 more, then a locality name.
var plusCodeRegex = regexp.MustCompile(`^[23456789CFGHJMPQRVWX]{8}\+[23456789CFGHJMPQRVWX]{2,3}\s+[A-Za-z\s]+$`)

// IsValidPlusCode reports whether the query looks like a localized Plus Code.
func IsValidPlusCode(code string) bool {
	return plusCodeRegex.MatchString(code)
}

// ExtractCityFromPlusCode returns the locality part of a localized Plus Code,
// or the empty string if the code is malformed.
func ExtractCityFromPlusCode(plusCode string) string {
	if !IsValidPlusCode(plusCode) {
		return ""
	}
	_, city, ok := strings.Cut(plusCode, " ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(city)
}
