package service

import (
	"math"
	"sort"
	"strings"

	"calculator-api/domain"
)

var drinkPresets = map[string]domain.DrinkPreset{
	"beer":       {ID: "beer", Name: "Regular Beer", ServingSize: 355, ServingUnit: domain.VolumeMl, ABVPercent: 5, CaloriesPerServing: 153},
	"light-beer": {ID: "light-beer", Name: "Light Beer", ServingSize: 355, ServingUnit: domain.VolumeMl, ABVPercent: 4.2, CaloriesPerServing: 103},
	"wine":       {ID: "wine", Name: "Wine", ServingSize: 148, ServingUnit: domain.VolumeMl, ABVPercent: 12, CaloriesPerServing: 125},
	"champagne":  {ID: "champagne", Name: "Champagne", ServingSize: 120, ServingUnit: domain.VolumeMl, ABVPercent: 12, CaloriesPerServing: 90},
	"spirits":    {ID: "spirits", Name: "Spirits (shot)", ServingSize: 44, ServingUnit: domain.VolumeMl, ABVPercent: 40, CaloriesPerServing: 97},
	"cider":      {ID: "cider", Name: "Hard Cider", ServingSize: 355, ServingUnit: domain.VolumeMl, ABVPercent: 5, CaloriesPerServing: 180},
	"cocktail":   {ID: "cocktail", Name: "Margarita", ServingSize: 240, ServingUnit: domain.VolumeMl, ABVPercent: 13, CaloriesPerServing: 274},
}

// DrinkPresets lists the drink presets ordered by ID.
func DrinkPresets() []domain.DrinkPreset {
	out := make([]domain.DrinkPreset, 0, len(drinkPresets))
	for _, p := range drinkPresets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func applyDrinkPreset(input domain.AlcoholCalorieInput) (domain.AlcoholCalorieInput, error) {
	if input.Preset == "" {
		return input, nil
	}
	preset, ok := drinkPresets[strings.ToLower(input.Preset)]
	if !ok {
		return input, invalid("unknown drink preset %q", input.Preset)
	}
	if input.ServingSize == 0 {
		input.ServingSize = preset.ServingSize
		input.ServingUnit = preset.ServingUnit
	}
	if input.ABVPercent == 0 {
		input.ABVPercent = preset.ABVPercent
	}
	if input.CaloriesPerServing == 0 {
		input.CaloriesPerServing = preset.CaloriesPerServing
	}
	return input, nil
}

func volumeInMl(size float64, unit domain.VolumeUnit) (float64, error) {
	switch unit {
	case "", domain.VolumeMl:
		return size, nil
	case domain.VolumeOz:
		return size * MlPerOz, nil
	case domain.VolumeCl:
		return size * MlPerCl, nil
	default:
		return 0, invalid("unknown serving unit %q", unit)
	}
}

// CalculateAlcoholCalories splits a drink's calories into the part that comes
// from ethanol (grams × 7) and the rest. Totals cover Count servings.
func CalculateAlcoholCalories(input domain.AlcoholCalorieInput) (domain.AlcoholCalorieResult, error) {
	input, err := applyDrinkPreset(input)
	if err != nil {
		return domain.AlcoholCalorieResult{}, err
	}

	if input.Count == 0 {
		input.Count = 1
	}
	if input.Count < 0 || input.Count > MaxDrinkCount {
		return domain.AlcoholCalorieResult{}, invalid("count must be between 1 and %d", MaxDrinkCount)
	}
	if !isFinite(input.ServingSize, input.ABVPercent, input.CaloriesPerServing) {
		return domain.AlcoholCalorieResult{}, invalid("inputs must be numbers")
	}
	if input.ABVPercent <= 0 || input.ABVPercent > 100 {
		return domain.AlcoholCalorieResult{}, invalid("ABV must be between 0 and 100%%")
	}
	if input.CaloriesPerServing < 0 || input.CaloriesPerServing > MaxCaloriesPerServing {
		return domain.AlcoholCalorieResult{}, invalid("calories per serving must be between 0 and %.0f", MaxCaloriesPerServing)
	}

	volume, err := volumeInMl(input.ServingSize, input.ServingUnit)
	if err != nil {
		return domain.AlcoholCalorieResult{}, err
	}
	if volume <= 0 || volume > MaxServingMl {
		return domain.AlcoholCalorieResult{}, invalid("serving size must be between 0 and %.0f ml", MaxServingMl)
	}

	count := float64(input.Count)
	grams := volume * (input.ABVPercent / 100) * EthanolDensity * count
	alcoholCalories := grams * CaloriesPerGramEthanol
	total := alcoholCalories
	if input.CaloriesPerServing > 0 {
		total = input.CaloriesPerServing * count
	}

	result := domain.AlcoholCalorieResult{
		VolumeMl:           roundTo2Decimals(volume * count),
		AlcoholGrams:       roundTo2Decimals(grams),
		AlcoholCalories:    roundTo2Decimals(alcoholCalories),
		NonAlcoholCalories: roundTo2Decimals(math.Max(0, total-alcoholCalories)),
		TotalCalories:      roundTo2Decimals(total),
		Count:              input.Count,
	}
	if err := requireFinite("alcohol calories", result.AlcoholCalories, result.TotalCalories, result.NonAlcoholCalories); err != nil {
		return domain.AlcoholCalorieResult{}, err
	}
	return result, nil
}
