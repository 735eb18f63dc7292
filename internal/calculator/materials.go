package calculator

import (
	"fmt"

	"github.com/iwvelando/paint-bid/internal/pricing"
	"github.com/iwvelando/paint-bid/pkg/mathutil"
)

// Interior and exterior material categories.
const (
	MaterialWalls            = "Walls"
	MaterialCeilings         = "Ceilings"
	MaterialTrim             = "Trim"
	MaterialCabinets         = "Cabinets"
	MaterialSiding           = "Siding"
	MaterialTrimFasciaSoffit = "Trim/Fascia/Soffit"
	MaterialDoors            = "Doors"
)

// materialLine is one category quantity waiting to be priced.
type materialLine struct {
	category string
	quantity float64
	gallons  int
}

func buildMaterials(paintType PaintType, pricePerGallon float64, lines []materialLine) MaterialBreakdown {
	breakdown := MaterialBreakdown{Items: []MaterialItem{}}
	for _, line := range lines {
		if line.quantity <= 0 || line.gallons == 0 {
			continue
		}
		cost := float64(line.gallons) * pricePerGallon
		breakdown.Items = append(breakdown.Items, MaterialItem{
			Name:           fmt.Sprintf("%s - %s", paintType, line.category),
			Quantity:       line.gallons,
			PricePerGallon: pricePerGallon,
			Cost:           cost,
		})
		breakdown.TotalCost += cost
	}
	return breakdown
}

// CalculateInteriorMaterials converts interior quantities into whole gallons
// per surface and prices them at the selected paint's interior price.
// Cabinet coverage counts both existing and new cabinet doors.
func CalculateInteriorMaterials(in InteriorDetailedInputs, settings *pricing.Settings) MaterialBreakdown {
	if settings == nil {
		return MaterialBreakdown{Items: []MaterialItem{}}
	}
	coverage := settings.InteriorCoverage
	price, _ := settings.InteriorPaint.Price(in.PaintType)
	cabinetDoors := in.CabinetDoors + in.NewCabinetDoors

	return buildMaterials(in.PaintType, price, []materialLine{
		{MaterialWalls, in.WallSqft, mathutil.CeilDiv(in.WallSqft, coverage.WallSqftPerGallon)},
		{MaterialCeilings, in.CeilingSqft, mathutil.CeilDiv(in.CeilingSqft, coverage.CeilingSqftPerGallon)},
		{MaterialTrim, in.TrimLF, mathutil.CeilDiv(in.TrimLF, coverage.TrimLFPerGallon)},
		{MaterialCabinets, cabinetDoors, mathutil.CeilMul(cabinetDoors, coverage.CabinetGallonsPerDoor)},
	})
}

// CalculateExteriorMaterials converts exterior quantities into whole gallons
// per surface and prices them at the selected paint's exterior price.
func CalculateExteriorMaterials(in ExteriorDetailedInputs, settings *pricing.Settings) MaterialBreakdown {
	if settings == nil {
		return MaterialBreakdown{Items: []MaterialItem{}}
	}
	coverage := settings.ExteriorCoverage
	price, _ := settings.ExteriorPaint.Price(in.PaintType)

	return buildMaterials(in.PaintType, price, []materialLine{
		{MaterialSiding, in.WallSqft, mathutil.CeilDiv(in.WallSqft, coverage.WallSqftPerGallon)},
		{MaterialTrimFasciaSoffit, in.TrimFasciaSoffitLF, mathutil.CeilDiv(in.TrimFasciaSoffitLF, coverage.TrimLFPerGallon)},
		{MaterialDoors, in.Doors, mathutil.CeilMul(in.Doors, coverage.DoorGallonsPerDoor)},
	})
}

// SimpleMaterials is a single-line estimate covering sqft at coverageRate
// square feet per gallon. Unlike the itemized estimators it always emits
// its line, even for zero square footage.
func SimpleMaterials(sqft float64, paintType PaintType, coverageRate float64, prices pricing.PaintPrices) MaterialBreakdown {
	price, _ := prices.Price(paintType)
	gallons := mathutil.CeilDiv(sqft, coverageRate)
	cost := float64(gallons) * price
	return MaterialBreakdown{
		Items: []MaterialItem{{
			Name:           fmt.Sprintf("%s Paint", paintType),
			Quantity:       gallons,
			PricePerGallon: price,
			Cost:           cost,
		}},
		TotalCost: cost,
	}
}
