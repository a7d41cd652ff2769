package diagnostic

import "strings"

// Bits is a binary number stored most significant bit first,
// one 0/1 value per element.
type Bits []uint8

// Uint64 interprets b as an unsigned binary number.
func (b Bits) Uint64() uint64 {
	var v uint64
	for _, bit := range b {
		v = v<<1 | uint64(bit)
	}

	return v
}

// String renders b as a string of '0' and '1'.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		sb.WriteByte('0' + bit)
	}

	return sb.String()
}

// Report is a parsed diagnostic report. All rows share Width.
type Report struct {
	Rows  []Bits
	Width int
}

// RatingKind selects the bit criterion of a RatingFinder.
type RatingKind int

const (
	// OxygenGenerator keeps the most common bit, 1 on ties.
	OxygenGenerator RatingKind = iota
	// CO2Scrubber keeps the least common bit, 0 on ties.
	CO2Scrubber
)

func (k RatingKind) String() string {
	switch k {
	case OxygenGenerator:
		return "oxygen generator"
	case CO2Scrubber:
		return "CO2 scrubber"
	}
	return "unknown"
}
