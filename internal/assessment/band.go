package assessment

import (
	"encoding/json"
	"fmt"
)

// Band is the qualitative classification of a dimension score.
type Band int

const (
	BandUnderdeveloped Band = iota
	BandDeveloping
	BandSolid
	BandStrong
)

// Band thresholds are absolute values against the canonical 25-point
// dimension maximum (5 questions × 5 points), not fractions of FullMark.
// Dimensions configured with a different question count are flagged at
// bank load instead of silently rescaled.
const (
	strongThreshold     = 21
	solidThreshold      = 15
	developingThreshold = 10
)

// Classify maps a dimension score to its band.
func Classify(value int) Band {
	switch {
	case value >= strongThreshold:
		return BandStrong
	case value >= solidThreshold:
		return BandSolid
	case value >= developingThreshold:
		return BandDeveloping
	default:
		return BandUnderdeveloped
	}
}

// Bands returns all bands from weakest to strongest.
func Bands() []Band {
	return []Band{BandUnderdeveloped, BandDeveloping, BandSolid, BandStrong}
}

func (b Band) String() string {
	switch b {
	case BandStrong:
		return "strong"
	case BandSolid:
		return "solid"
	case BandDeveloping:
		return "developing"
	case BandUnderdeveloped:
		return "underdeveloped"
	default:
		return "unknown"
	}
}

// ParseBand converts a wire-format string into a Band.
func ParseBand(s string) (Band, error) {
	for _, b := range Bands() {
		if b.String() == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown band %q", s)
}

// MarshalJSON encodes the band as its wire-format string.
func (b Band) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON decodes the band from its wire-format string.
func (b *Band) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseBand(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// UnmarshalYAML decodes the band from its wire-format string.
func (b *Band) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseBand(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
