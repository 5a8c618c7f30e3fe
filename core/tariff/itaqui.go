package tariff

import (
	"math"

	"github.com/shopspring/decimal"
)

// Reference port/terminal pair the auto-pricing gate defaults to.
const (
	ReferencePort     = "Itaqui"
	ReferenceTerminal = "Itaqui"
)

func brl(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ItaquiPilotageGroups is the configured pilotage schedule for Itaqui.
// Berths 106 and 108 carry the external-berth tariff and outrank the
// 99-104 inner-berth group. Treat as read-only.
var ItaquiPilotageGroups = []Group{
	{
		Name:     "Berths 99-104",
		Priority: 1,
		Berths:   berthSet(99, 100, 101, 102, 103, 104),
		Table: Table{
			{Min: 0, Max: 1000, Rate: brl("6389.79")},
			{Min: 1001, Max: 10000, Rate: brl("8500.00")},
			{Min: 10001, Max: 20000, Rate: brl("11200.00")},
			{Min: 20001, Max: 50000, Rate: brl("14800.00")},
			{Min: 50001, Max: math.Inf(1), Rate: brl("18900.00")},
		},
	},
	{
		Name:     "Berths 106 & 108",
		Priority: 2,
		Berths:   berthSet(106, 108),
		Table: Table{
			{Min: 0, Max: 1000, Rate: brl("7650.00")},
			{Min: 1001, Max: 10000, Rate: brl("10100.00")},
			{Min: 10001, Max: 20000, Rate: brl("16800.00")},
			{Min: 20001, Max: 50000, Rate: brl("21300.00")},
			{Min: 50001, Max: math.Inf(1), Rate: brl("26500.00")},
		},
	},
}

// ItaquiTowageTable is the port-wide towage schedule, berth-independent.
var ItaquiTowageTable = Table{
	{Min: 0, Max: 1000, Rate: brl("3200.00")},
	{Min: 1001, Max: 10000, Rate: brl("5400.00")},
	{Min: 10001, Max: 20000, Rate: brl("8100.00")},
	{Min: 20001, Max: 50000, Rate: brl("11900.00")},
	{Min: 50001, Max: math.Inf(1), Rate: brl("15600.00")},
}

// ItaquiLightDuesTable is the port-wide light dues schedule.
var ItaquiLightDuesTable = Table{
	{Min: 0, Max: 1000, Rate: brl("950.00")},
	{Min: 1001, Max: 10000, Rate: brl("1800.00")},
	{Min: 10001, Max: 20000, Rate: brl("2750.00")},
	{Min: 20001, Max: 50000, Rate: brl("4100.00")},
	{Min: 50001, Max: math.Inf(1), Rate: brl("5900.00")},
}

func berthSet(berths ...int) map[int]bool {
	set := make(map[int]bool, len(berths))
	for _, b := range berths {
		set[b] = true
	}
	return set
}
