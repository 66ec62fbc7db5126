package domain

type VolumeUnit string

const (
	VolumeMl VolumeUnit = "ml"
	VolumeOz VolumeUnit = "oz"
	VolumeCl VolumeUnit = "cl"
)

// AlcoholCalorieInput fields left at zero are filled from Preset when one is named.
type AlcoholCalorieInput struct {
	Preset             string     `json:"preset,omitempty"`
	ServingSize        float64    `json:"serving_size"`
	ServingUnit        VolumeUnit `json:"serving_unit"`
	ABVPercent         float64    `json:"abv_percent"`
	CaloriesPerServing float64    `json:"calories_per_serving"`
	Count              int        `json:"count"`
}

type AlcoholCalorieResult struct {
	VolumeMl           float64 `json:"volume_ml"`
	AlcoholGrams       float64 `json:"alcohol_grams"`
	AlcoholCalories    float64 `json:"alcohol_calories"`
	NonAlcoholCalories float64 `json:"non_alcohol_calories"`
	TotalCalories      float64 `json:"total_calories"`
	Count              int     `json:"count"`
}

type DrinkPreset struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	ServingSize        float64    `json:"serving_size"`
	ServingUnit        VolumeUnit `json:"serving_unit"`
	ABVPercent         float64    `json:"abv_percent"`
	CaloriesPerServing float64    `json:"calories_per_serving"`
}
