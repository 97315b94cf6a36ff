// Package types defines core domain types shared across all layers.
// This package contains NO sizing logic - only type definitions.
package types

// ChargerType distinguishes AC and DC charging equipment.
type ChargerType string

const (
	ChargerAC ChargerType = "AC"
	ChargerDC ChargerType = "DC"
)

// String returns the string representation.
func (t ChargerType) String() string {
	return string(t)
}

// IsValid checks if the charger type is known.
func (t ChargerType) IsValid() bool {
	return t == ChargerAC || t == ChargerDC
}

// Phase identifies the supply configuration of a circuit.
type Phase string

const (
	PhaseSingle Phase = "Single"
	PhaseThree  Phase = "Three"
	PhaseDC     Phase = "DC"
)

// CoreConfig identifies a cable core configuration.
// 2C covers both single-phase active+neutral and a DC pos/neg pair;
// 4C is three-phase plus neutral.
type CoreConfig string

const (
	Core1C CoreConfig = "1C"
	Core2C CoreConfig = "2C"
	Core3C CoreConfig = "3C"
	Core4C CoreConfig = "4C"
)

// String returns the string representation.
func (c CoreConfig) String() string {
	return string(c)
}

// ChargerSpec is a user-entered charger line item. The engine receives
// these as immutable snapshots; ownership stays with the caller.
type ChargerSpec struct {
	// Type is AC or DC.
	Type ChargerType `json:"type" yaml:"type"`

	// CapacityKW is the rated output power in kilowatts.
	CapacityKW float64 `json:"capacity_kw" yaml:"capacity_kw"`

	// Quantity is how many identical units are installed.
	Quantity int `json:"quantity" yaml:"quantity"`
}

// CircuitLoad pairs a sized circuit with the number of identical units
// it represents. Quantity multiplies only at aggregation time.
type CircuitLoad struct {
	Design   *CircuitDesign `json:"design"`
	Quantity int            `json:"quantity"`
}

// Capacity menus offered by the market. The sizing formulas themselves
// handle any positive capacity; these menus are enforced at the input
// boundary only.
var (
	ACCapacitiesKW = []float64{7, 22}
	DCCapacitiesKW = []float64{25, 50, 75, 100, 120, 150, 300, 350}
)

// CapacitiesFor returns the capacity menu for a charger type.
func CapacitiesFor(t ChargerType) []float64 {
	switch t {
	case ChargerAC:
		return ACCapacitiesKW
	case ChargerDC:
		return DCCapacitiesKW
	default:
		return nil
	}
}

// MenuCapacity checks whether kw is on the menu for the charger type.
func MenuCapacity(t ChargerType, kw float64) bool {
	for _, c := range CapacitiesFor(t) {
		if c == kw {
			return true
		}
	}
	return false
}
