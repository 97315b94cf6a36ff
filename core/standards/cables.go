package standards

import "charger-sizing/core/types"

// CableRating is one row of an ampacity table: a conductor
// cross-section and its tabulated current capacity.
type CableRating struct {
	// SizeMM2 is the conductor cross-sectional area.
	SizeMM2 float64

	// AmpacityA is the current capacity at standard installation
	// conditions (AS/NZS 3008:2017, PVC insulated copper, Reference
	// Method C, 40 degree ambient).
	AmpacityA float64
}

// cableTables maps core configuration to rows ordered by ascending
// cross-section. Ampacity is monotonically non-decreasing within each
// table.
var cableTables = map[types.CoreConfig][]CableRating{
	types.Core1C: {
		{1.5, 17.5}, {2.5, 23}, {4, 30}, {6, 39}, {10, 53}, {16, 70},
		{25, 92}, {35, 115}, {50, 142}, {70, 179}, {95, 217}, {120, 254},
		{150, 292}, {185, 336}, {240, 392}, {300, 451}, {400, 527},
		{500, 600}, {630, 696},
	},
	types.Core2C: {
		{1.5, 15}, {2.5, 20}, {4, 26}, {6, 34}, {10, 46}, {16, 61},
		{25, 80}, {35, 99}, {50, 123}, {70, 155}, {95, 189}, {120, 221},
		{150, 255}, {185, 292}, {240, 352}, {300, 409}, {400, 489},
		{500, 569}, {630, 674},
	},
	types.Core3C: {
		{1.5, 13.5}, {2.5, 17.5}, {4, 23}, {6, 30}, {10, 40}, {16, 53},
		{25, 70}, {35, 87}, {50, 108}, {70, 136}, {95, 166}, {120, 194},
		{150, 225}, {185, 260}, {240, 310}, {300, 360}, {400, 429},
		{500, 495}, {630, 588},
	},
	types.Core4C: {
		{1.5, 12}, {2.5, 16}, {4, 21}, {6, 27}, {10, 37}, {16, 49},
		{25, 64}, {35, 80}, {50, 99}, {70, 125}, {95, 152}, {120, 178},
		{150, 207}, {185, 240}, {240, 287}, {300, 334}, {400, 400},
		{500, 464}, {630, 555},
	},
}

// CableTable returns the ordered ampacity rows for a core
// configuration.
func CableTable(cores types.CoreConfig) []CableRating {
	return cableTables[cores]
}

// SelectCable returns the smallest cross-section whose tabulated
// ampacity is at least requiredA. ok is false when no row qualifies.
func SelectCable(cores types.CoreConfig, requiredA float64) (CableRating, bool) {
	for _, row := range cableTables[cores] {
		if row.AmpacityA >= requiredA {
			return row, true
		}
	}
	return CableRating{}, false
}

// Ampacity returns the tabulated capacity for an exact cross-section.
func Ampacity(cores types.CoreConfig, sizeMM2 float64) (float64, bool) {
	for _, row := range cableTables[cores] {
		if row.SizeMM2 == sizeMM2 {
			return row.AmpacityA, true
		}
	}
	return 0, false
}
