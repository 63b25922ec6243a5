package common

import (
	"fmt"
	"math"
)

// SafeIntToInt16 safely converts int to int16 with bounds checking
func SafeIntToInt16(value int) (int16, error) {
	if value < math.MinInt16 || value > math.MaxInt16 {
		return 0, fmt.Errorf("value %d out of range for int16 (%d-%d)", value, math.MinInt16, math.MaxInt16)
	}
	return int16(value), nil
}

// SafeIntToInt32 safely converts int to int32 with bounds checking
func SafeIntToInt32(value int) (int32, error) {
	if value < math.MinInt32 || value > math.MaxInt32 {
		return 0, fmt.Errorf("value %d out of range for int32 (%d-%d)", value, math.MinInt32, math.MaxInt32)
	}
	return int32(value), nil
}

// SafeIntToUint16 safely converts int to uint16 with bounds checking
func SafeIntToUint16(value int) (uint16, error) {
	if value < 0 || value > math.MaxUint16 {
		return 0, fmt.Errorf("value %d out of range for uint16 (0-%d)", value, math.MaxUint16)
	}
	return uint16(value), nil
}

// ClampToUint8 clamps an int to 0-255 (for color components)
func ClampToUint8(value int) uint8 {
	if value < 0 {
		return 0
	}
	if value > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(value)
}
