package types

// CurrentSystem distinguishes AC and DC protective devices.
type CurrentSystem string

const (
	SystemAC CurrentSystem = "AC"
	SystemDC CurrentSystem = "DC"
)

// BreakerSpec is the structured protective-device selection. Display
// strings like "AS/NZS 60898, C-curve, 40A, 240V AC, 1P" are built by
// the output layer from these fields, never stored here.
type BreakerSpec struct {
	// Standard is the governing device standard
	// (AS/NZS 60898 for AC MCBs, AS/NZS 60947.2 for DC devices).
	Standard string `json:"standard"`

	// Curve is the trip curve designation, empty for DC devices.
	Curve string `json:"curve,omitempty"`

	// RatingA is the selected standard rating in amperes.
	RatingA int `json:"rating_a"`

	// RatedVoltageV is the device's rated voltage. For single-phase
	// circuits this is the 240V device rating, not the 230V nominal
	// supply.
	RatedVoltageV int `json:"rated_voltage_v"`

	// Poles is the pole count (1 or 3), zero for DC devices.
	Poles int `json:"poles,omitempty"`

	// System is AC or DC.
	System CurrentSystem `json:"system"`
}

// CableSelection is the chosen conductor for a circuit.
type CableSelection struct {
	// Cores is the core configuration the ampacity was read from.
	Cores CoreConfig `json:"cores"`

	// SizeMM2 is the conductor cross-sectional area.
	SizeMM2 float64 `json:"size_mm2"`

	// AmpacityA is the tabulated current capacity at standard
	// installation conditions.
	AmpacityA float64 `json:"ampacity_a"`
}

// CircuitDesign is the immutable output of sizing one charger. All
// currents are held at full precision; presentation rounds to one
// decimal place.
type CircuitDesign struct {
	// ChargerType and PowerKW echo the sized input.
	ChargerType ChargerType `json:"charger_type"`
	PowerKW     float64     `json:"power_kw"`

	// VoltageV is the nominal circuit voltage.
	VoltageV float64 `json:"voltage_v"`

	// Phase is the resolved supply configuration.
	Phase Phase `json:"phase"`

	// FullLoadA is the load current before derating.
	FullLoadA float64 `json:"full_load_a"`

	// DeratedA is the load current after the safety factor.
	DeratedA float64 `json:"derated_a"`

	// ACInputA is the AC-side input current. For AC circuits it equals
	// FullLoadA; for DC circuits it models the three-phase rectifier
	// input. Used only for upstream aggregation.
	ACInputA float64 `json:"ac_input_a"`

	// DeratedACInputA is ACInputA after the safety factor.
	DeratedACInputA float64 `json:"derated_ac_input_a"`

	// Breaker is the selected protective device.
	Breaker BreakerSpec `json:"breaker"`

	// Cable is the selected conductor.
	Cable CableSelection `json:"cable"`
}

// DistributionDesign is the output of aggregating all circuits into a
// main switchboard selection. Fully recomputed from the current circuit
// set on every call.
type DistributionDesign struct {
	// TotalConnectedKW is the sum of power times quantity.
	TotalConnectedKW float64 `json:"total_connected_kw"`

	// TotalDeratedACA is the sum of derated AC input currents times
	// quantity.
	TotalDeratedACA float64 `json:"total_derated_ac_a"`

	// DiversityFactor is the factor that was applied.
	DiversityFactor float64 `json:"diversity_factor"`

	// DiversifiedA is TotalDeratedACA after diversity.
	DiversifiedA float64 `json:"diversified_a"`

	// MainBreakerA is the main protective-device rating.
	MainBreakerA int `json:"main_breaker_a"`

	// BoardRatingA is the nominal rating of the selected switchboard.
	BoardRatingA int `json:"board_rating_a"`

	// BoardDimensionsMM is the enclosure size as WxDxH in millimetres.
	BoardDimensionsMM string `json:"board_dimensions_mm"`

	// BusbarA is the recommended copper busbar rating, rounded up to
	// the next 100A increment. Reported alongside BoardRatingA because
	// the conductor rating and the enclosure's nominal switchgear
	// rating may legitimately differ.
	BusbarA int `json:"busbar_a"`
}
