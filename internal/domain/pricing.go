package domain

// DefaultHourlyPrice is returned for any (carType, visitType) pair
// that is not present in the price table
const DefaultHourlyPrice = 27

// HourlyPriceTable maps carType -> visitType -> price per hour.
// Static reference data, integer values only
var HourlyPriceTable = map[CarType]map[VisitType]float64{
	CarTypeSedan: {
		VisitMasjidQuba:      27,
		VisitMountUhud:       27,
		VisitMasjidQiblatain: 24,
		VisitTrenchBattle:    24,
		VisitPackage:         32,
		VisitOtherLocations:  35,
	},
	CarTypeMinivan: {
		VisitMasjidQuba:      35,
		VisitMountUhud:       35,
		VisitMasjidQiblatain: 30,
		VisitTrenchBattle:    30,
		VisitPackage:         40,
		VisitOtherLocations:  45,
	},
}

// PriceFor looks up the hourly price for the selection.
// Falls back to DefaultHourlyPrice if either key is absent
func PriceFor(carType CarType, visitType VisitType) float64 {
	byVisit, ok := HourlyPriceTable[carType]
	if !ok {
		return DefaultHourlyPrice
	}
	price, ok := byVisit[visitType]
	if !ok {
		return DefaultHourlyPrice
	}
	return price
}
