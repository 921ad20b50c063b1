package exporter

import (
	"fmt"
	"math"
)

// formatGain formats a percentage value for CSV and text output with
// exactly 2 decimal places. Undefined gains print as NaN.
func formatGain(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

// jsonValue converts a gain to its JSON form. NaN cannot be encoded, so an
// undefined gain becomes null.
func jsonValue(value float64) *float64 {
	if math.IsNaN(value) {
		return nil
	}
	return &value
}
