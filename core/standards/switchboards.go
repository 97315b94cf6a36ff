package standards

// BoardConfig is one switchboard catalog entry (AS/NZS 3439 low-voltage
// switchgear assemblies).
type BoardConfig struct {
	// RatedA is the nominal switchgear rating.
	RatedA int

	// DimensionsMM is the enclosure size as WxDxH in millimetres.
	DimensionsMM string

	// BusbarA is the busbar rating, always at least RatedA.
	BusbarA int
}

// SwitchboardCatalog lists common Australian main switchboard
// configurations in ascending rated-current order.
var SwitchboardCatalog = []BoardConfig{
	{100, "300x200x150", 100},
	{200, "400x250x200", 200},
	{400, "600x300x250", 400},
	{600, "800x400x300", 600},
	{800, "1000x500x350", 800},
	{1000, "1200x600x400", 1000},
	{1200, "1500x700x450", 1200},
	{1600, "1800x800x500", 1600},
	{2000, "2000x1000x600", 2000},
	{2500, "2200x1200x700", 2500},
	{3000, "2500x1500x800", 3000},
}

// SelectBoard returns the first catalog entry whose busbar rating is at
// least requiredA. ok is false when the catalog is exhausted.
func SelectBoard(requiredA float64) (BoardConfig, bool) {
	for _, board := range SwitchboardCatalog {
		if float64(board.BusbarA) >= requiredA {
			return board, true
		}
	}
	return BoardConfig{}, false
}
