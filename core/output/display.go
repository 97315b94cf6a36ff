package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"charger-sizing/core/types"
)

// Amps renders a current to one decimal place. The engine keeps full
// precision; rounding happens only here, after every comparison has
// been made.
func Amps(a float64) string {
	return decimal.NewFromFloat(a).StringFixed(1)
}

// Kilowatts renders a power to one decimal place.
func Kilowatts(kw float64) string {
	return decimal.NewFromFloat(kw).StringFixed(1)
}

// MM2 renders a cross-section without trailing zeros (2.5, 10, 120).
func MM2(size float64) string {
	return strconv.FormatFloat(size, 'f', -1, 64)
}

// BreakerSpecString builds the display annotation for a protective
// device, e.g. "AS/NZS 60898, C-curve, 40A, 240V AC, 1P" or
// "AS/NZS 60947.2, 250A, 500V DC".
func BreakerSpecString(b types.BreakerSpec) string {
	parts := []string{b.Standard}
	if b.Curve != "" {
		parts = append(parts, b.Curve+"-curve")
	}
	parts = append(parts,
		fmt.Sprintf("%dA", b.RatingA),
		fmt.Sprintf("%dV %s", b.RatedVoltageV, b.System))
	if b.Poles > 0 {
		parts = append(parts, fmt.Sprintf("%dP", b.Poles))
	}
	return strings.Join(parts, ", ")
}

// CableTypeString names the conductor construction, e.g.
// "4C PVC/XLPE Cu".
func CableTypeString(c types.CableSelection) string {
	return fmt.Sprintf("%s PVC/XLPE Cu", c.Cores)
}

// CableString is the full conductor annotation, e.g.
// "10 mm² 2C PVC/XLPE Cu (46A)".
func CableString(c types.CableSelection) string {
	return fmt.Sprintf("%s mm² %s (%sA)", MM2(c.SizeMM2), CableTypeString(c), Amps(c.AmpacityA))
}

// BoardLabel names the selected switchboard configuration.
func BoardLabel(d *types.DistributionDesign) string {
	return fmt.Sprintf("%dA Main Switchboard", d.BoardRatingA)
}
