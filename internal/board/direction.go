package board

import (
	"fmt"
	"math"
	"strings"
)

// Direction is the compass direction the board is tilted towards.
type Direction int

const (
	DirNone Direction = iota // Board is level
	DirN
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW
	DirNW
)

// DefaultTiltThreshold is the tilt (milli-g) below which the board counts as level.
const DefaultTiltThreshold int32 = 200

var directionNames = [...]string{
	DirNone: "level",
	DirN:    "N",
	DirNE:   "NE",
	DirE:    "E",
	DirSE:   "SE",
	DirS:    "S",
	DirSW:   "SW",
	DirW:    "W",
	DirNW:   "NW",
}

// ledByDirection follows the Discovery BSP numbering: LED3..LED10 are 0..7.
var ledByDirection = [...]int{
	DirNone: -1,
	DirN:    0, // LD3
	DirNW:   1, // LD4
	DirNE:   2, // LD5
	DirW:    3, // LD6
	DirE:    4, // LD7
	DirSW:   5, // LD8
	DirSE:   6, // LD9
	DirS:    7, // LD10
}

// sectors lists directions counter-clockwise from east, matching atan2.
var sectors = [8]Direction{DirE, DirNE, DirN, DirNW, DirW, DirSW, DirS, DirSE}

// CompassOrder lists LED indices clockwise starting at north.
var CompassOrder = [LEDCount]int{0, 2, 4, 6, 7, 5, 3, 1}

// String returns the compass abbreviation, or "level".
func (d Direction) String() string {
	if d < DirNone || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// LED returns the LED index for the direction.
// The second value is false for DirNone and invalid directions.
func (d Direction) LED() (int, bool) {
	if d <= DirNone || int(d) >= len(ledByDirection) {
		return -1, false
	}
	return ledByDirection[d], true
}

// Vector returns an acceleration sample tilted towards d with the given
// magnitude (milli-g).
func (d Direction) Vector(magnitude int32) (x, y int32) {
	if d <= DirNone || int(d) >= len(directionNames) {
		return 0, 0
	}
	for i, s := range sectors {
		if s == d {
			angle := float64(i) * math.Pi / 4
			x = int32(math.Round(float64(magnitude) * math.Cos(angle)))
			y = int32(math.Round(float64(magnitude) * math.Sin(angle)))
			return x, y
		}
	}
	return 0, 0
}

// DirectionForLED maps an LED index back to its compass direction.
func DirectionForLED(led int) Direction {
	for d := DirN; d <= DirNW; d++ {
		if ledByDirection[d] == led {
			return d
		}
	}
	return DirNone
}

// ParseDirection parses a compass abbreviation (case-insensitive).
// "level", "none" and "0" all mean DirNone.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "LEVEL", "NONE", "0":
		return DirNone, nil
	}
	for d := DirN; d <= DirNW; d++ {
		if directionNames[d] == s {
			return d, nil
		}
	}
	return DirNone, fmt.Errorf("board: unknown direction %q", s)
}

// TiltDirection quantises an acceleration sample into one of eight compass
// sectors. Samples whose dominant axis is below threshold are level.
func TiltDirection(x, y, threshold int32) Direction {
	ax, ay := abs64(x), abs64(y)
	if max(ax, ay) < int64(threshold) {
		return DirNone
	}

	angle := math.Atan2(float64(y), float64(x))
	sector := int(math.Round(angle/(math.Pi/4))) % 8
	if sector < 0 {
		sector += 8
	}
	return sectors[sector]
}

func abs64(v int32) int64 {
	if v < 0 {
		return -int64(v)
	}
	return int64(v)
}
