package service

import (
	"math"

	"calculator-api/domain"
)

type weightFormula struct {
	base    float64 // kg at 60 inches
	perInch float64 // kg per inch above 60
}

type idealWeightFormulas struct {
	devine, robinson, miller, hamwi weightFormula
}

var idealWeightCoefficients = map[domain.Gender]idealWeightFormulas{
	domain.GenderMale: {
		devine:   weightFormula{50, 2.3},
		robinson: weightFormula{52, 1.9},
		miller:   weightFormula{56.2, 1.41},
		hamwi:    weightFormula{48, 2.7},
	},
	domain.GenderFemale: {
		devine:   weightFormula{45.5, 2.3},
		robinson: weightFormula{49, 1.7},
		miller:   weightFormula{53.1, 1.36},
		hamwi:    weightFormula{45.5, 2.2},
	},
}

func (f weightFormula) at(inchesOver60 float64) float64 {
	return math.Max(MinIdealWeightKg, f.base+f.perInch*inchesOver60)
}

// CalculateIdealWeight applies the Devine, Robinson, Miller and Hamwi formulas.
// Every formula is floored at 40 kg; the average and range are taken in kg and
// converted to pounds only afterwards when imperial units are requested.
func CalculateIdealWeight(input domain.IdealWeightInput) (domain.IdealWeightResult, error) {
	heightCm, err := resolveHeightCm(input)
	if err != nil {
		return domain.IdealWeightResult{}, err
	}

	formulas, ok := idealWeightCoefficients[input.Gender]
	if !ok {
		return domain.IdealWeightResult{}, invalid("gender must be %q or %q", domain.GenderMale, domain.GenderFemale)
	}

	over := heightCm/CmPerInch - IdealWeightBaseIn
	devine := formulas.devine.at(over)
	robinson := formulas.robinson.at(over)
	miller := formulas.miller.at(over)
	hamwi := formulas.hamwi.at(over)
	average := (devine + robinson + miller + hamwi) / 4

	factor, unit := 1.0, "kg"
	if input.Units == domain.UnitImperial {
		factor, unit = KgToLbs, "lbs"
	}

	return domain.IdealWeightResult{
		Devine:   roundTo2Decimals(devine * factor),
		Robinson: roundTo2Decimals(robinson * factor),
		Miller:   roundTo2Decimals(miller * factor),
		Hamwi:    roundTo2Decimals(hamwi * factor),
		Average:  roundTo2Decimals(average * factor),
		Range: domain.WeightRange{
			Min: roundTo2Decimals(average * (1 - IdealWeightSpread) * factor),
			Max: roundTo2Decimals(average * (1 + IdealWeightSpread) * factor),
		},
		Unit: unit,
	}, nil
}

func resolveHeightCm(input domain.IdealWeightInput) (float64, error) {
	heightCm := input.HeightCm
	switch input.Units {
	case "", domain.UnitMetric:
	case domain.UnitImperial:
		if input.HeightFeet < 0 || input.HeightInches < 0 {
			return 0, invalid("height must be positive")
		}
		if input.HeightFeet > 0 || input.HeightInches > 0 {
			heightCm = (input.HeightFeet*12 + input.HeightInches) * CmPerInch
		}
	default:
		return 0, invalid("unknown unit system %q", input.Units)
	}

	if !isFinite(heightCm) || heightCm <= 0 {
		return 0, invalid("height must be positive")
	}
	if heightCm > MaxHeightCm {
		return 0, invalid("height exceeds %.0f cm", MaxHeightCm)
	}
	return heightCm, nil
}
