package domain

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type UnitSystem string

const (
	UnitMetric   UnitSystem = "metric"
	UnitImperial UnitSystem = "imperial"
)

type IdealWeightInput struct {
	HeightCm     float64    `json:"height_cm"`
	HeightFeet   float64    `json:"height_feet"`
	HeightInches float64    `json:"height_inches"`
	Units        UnitSystem `json:"units"`
	Gender       Gender     `json:"gender"`
}

type WeightRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type IdealWeightResult struct {
	Devine   float64     `json:"devine"`
	Robinson float64     `json:"robinson"`
	Miller   float64     `json:"miller"`
	Hamwi    float64     `json:"hamwi"`
	Average  float64     `json:"average"`
	Range    WeightRange `json:"range"`
	Unit     string      `json:"unit"` // "kg" or "lbs"
}
