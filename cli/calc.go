package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"calculator-api/domain"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run a calculation from the command line",
	Long: `Run one of the calculators locally. Results are recorded in the configured
history store, the same as calculations made over HTTP.`,
}

// withApp builds the app for a single calculation and tears it down afterwards.
func withApp(cmd *cobra.Command, fn func(a *app) (any, string, error)) error {
	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	result, title, err := fn(a)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), title, result)
}

var idealWeightCmd = &cobra.Command{
	Use:   "ideal-weight",
	Short: "Ideal body weight by the Devine, Robinson, Miller and Hamwi formulas",
	Example: `  calculator-api calc ideal-weight --height 180 --gender male
  calculator-api calc ideal-weight --units imperial --feet 5 --inches 10 --gender female`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		input := domain.IdealWeightInput{}
		input.HeightCm, _ = f.GetFloat64("height")
		input.HeightFeet, _ = f.GetFloat64("feet")
		input.HeightInches, _ = f.GetFloat64("inches")
		units, _ := f.GetString("units")
		gender, _ := f.GetString("gender")
		input.Units = domain.UnitSystem(strings.ToLower(units))
		input.Gender = domain.Gender(strings.ToLower(gender))

		return withApp(cmd, func(a *app) (any, string, error) {
			r, err := a.calculators.IdealWeight(cmd.Context(), input)
			return r, "Ideal weight", err
		})
	},
}

var simpleInterestCmd = &cobra.Command{
	Use:     "simple-interest",
	Short:   "Simple interest with a per-year breakdown",
	Example: `  calculator-api calc simple-interest --principal 10000 --rate 8 --time 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		input := domain.SimpleInterestInput{}
		input.Principal, _ = f.GetFloat64("principal")
		input.RatePercent, _ = f.GetFloat64("rate")
		input.Time, _ = f.GetFloat64("time")
		unit, _ := f.GetString("unit")
		input.TimeUnit = domain.TimeUnit(strings.ToLower(unit))

		return withApp(cmd, func(a *app) (any, string, error) {
			r, err := a.calculators.SimpleInterest(cmd.Context(), input)
			return r, "Simple interest", err
		})
	},
}

var caseCmd = &cobra.Command{
	Use:     "case TEXT",
	Short:   "Convert text into every supported case",
	Example: `  calculator-api calc case "hello world"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := domain.CaseConversionInput{Text: strings.Join(args, " ")}
		return withApp(cmd, func(a *app) (any, string, error) {
			r, err := a.calculators.ConvertCase(cmd.Context(), input)
			return r, "Case conversion", err
		})
	},
}

var inflationCmd = &cobra.Command{
	Use:   "inflation",
	Short: "Project or discount an amount by compound inflation",
	Example: `  calculator-api calc inflation --amount 10000 --rate 3.5 --years 10
  calculator-api calc inflation --amount 100 --country GB --start-year 2000 --end-year 2020 --mode past`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		input := domain.InflationInput{}
		input.Amount, _ = f.GetFloat64("amount")
		input.Years, _ = f.GetFloat64("years")
		input.StartYear, _ = f.GetInt("start-year")
		input.EndYear, _ = f.GetInt("end-year")
		input.Country, _ = f.GetString("country")
		mode, _ := f.GetString("mode")
		input.Mode = domain.InflationMode(strings.ToLower(mode))
		if f.Changed("rate") {
			rate, _ := f.GetFloat64("rate")
			input.RatePercent = &rate
		}

		return withApp(cmd, func(a *app) (any, string, error) {
			r, err := a.calculators.Inflation(cmd.Context(), input)
			return r, "Inflation", err
		})
	},
}

var breakEvenCmd = &cobra.Command{
	Use:     "break-even",
	Short:   "Units and revenue needed to cover fixed costs",
	Example: `  calculator-api calc break-even --fixed 10000 --variable 30 --price 50 --target 800`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		input := domain.BreakEvenInput{}
		input.FixedCosts, _ = f.GetFloat64("fixed")
		input.VariableCostPerUnit, _ = f.GetFloat64("variable")
		input.SellingPricePerUnit, _ = f.GetFloat64("price")
		input.TargetUnits, _ = f.GetFloat64("target")

		return withApp(cmd, func(a *app) (any, string, error) {
			r, err := a.calculators.BreakEven(cmd.Context(), input)
			return r, "Break-even", err
		})
	},
}

var alcoholCmd = &cobra.Command{
	Use:   "alcohol",
	Short: "Calories from alcoholic drinks",
	Example: `  calculator-api calc alcohol --preset wine --count 2
  calculator-api calc alcohol --size 12 --unit oz --abv 5 --calories 150`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		input := domain.AlcoholCalorieInput{}
		input.Preset, _ = f.GetString("preset")
		input.ServingSize, _ = f.GetFloat64("size")
		unit, _ := f.GetString("unit")
		input.ServingUnit = domain.VolumeUnit(strings.ToLower(unit))
		input.ABVPercent, _ = f.GetFloat64("abv")
		input.CaloriesPerServing, _ = f.GetFloat64("calories")
		input.Count, _ = f.GetInt("count")

		return withApp(cmd, func(a *app) (any, string, error) {
			r, err := a.calculators.AlcoholCalories(cmd.Context(), input)
			return r, "Alcohol calories", err
		})
	},
}

var cipherCmd = &cobra.Command{
	Use:   "cipher TEXT",
	Short: "Encrypt or decrypt text with a classical cipher or base64",
	Example: `  calculator-api calc cipher --method caesar --shift 3 "attack at dawn"
  calculator-api calc cipher --method base64 --decrypt SGVsbG8=`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		input := domain.CipherInput{Text: strings.Join(args, " "), Direction: domain.Encrypt}
		method, _ := f.GetString("method")
		input.Method = domain.CipherMethod(strings.ToLower(method))
		input.Shift, _ = f.GetInt("shift")
		input.Options.CaseSensitive, _ = f.GetBool("case-sensitive")
		input.Options.IncludeSpaces, _ = f.GetBool("include-spaces")
		if decrypt, _ := f.GetBool("decrypt"); decrypt {
			input.Direction = domain.Decrypt
		}

		return withApp(cmd, func(a *app) (any, string, error) {
			r, err := a.calculators.Cipher(cmd.Context(), input)
			return r, "Text cipher", err
		})
	},
}

var currencyCmd = &cobra.Command{
	Use:     "currency AMOUNT FROM TO",
	Short:   "Convert between fiat and crypto currencies",
	Example: `  calculator-api calc currency 0.5 BTC EUR`,
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount(args[0])
		if err != nil {
			return err
		}
		input := domain.CurrencyConversionInput{Amount: amount, From: args[1], To: args[2]}

		return withApp(cmd, func(a *app) (any, string, error) {
			r, err := a.calculators.Currency(cmd.Context(), input)
			return r, "Currency conversion", err
		})
	},
}

func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	return amount, nil
}

func init() {
	f := idealWeightCmd.Flags()
	f.Float64("height", 0, "height in centimetres (metric)")
	f.Float64("feet", 0, "height feet (imperial)")
	f.Float64("inches", 0, "height inches (imperial)")
	f.String("units", string(domain.UnitMetric), "metric or imperial")
	f.String("gender", string(domain.GenderMale), "male or female")

	f = simpleInterestCmd.Flags()
	f.Float64("principal", 0, "principal amount")
	f.Float64("rate", 0, "annual interest rate in percent")
	f.Float64("time", 0, "duration")
	f.String("unit", string(domain.TimeYears), "years or months")

	f = inflationCmd.Flags()
	f.Float64("amount", 0, "amount of money")
	f.Float64("rate", 0, "annual inflation rate in percent (default: the country's rate)")
	f.Float64("years", 0, "number of years")
	f.Int("start-year", 0, "start year (used with --end-year instead of --years)")
	f.Int("end-year", 0, "end year")
	f.String("country", "", "country code for the default rate (default US)")
	f.String("mode", string(domain.InflationFuture), "future, past or purchasing-power")

	f = breakEvenCmd.Flags()
	f.Float64("fixed", 0, "total fixed costs")
	f.Float64("variable", 0, "variable cost per unit")
	f.Float64("price", 0, "selling price per unit")
	f.Float64("target", 0, "target sales in units")

	f = alcoholCmd.Flags()
	f.String("preset", "", "drink preset (see GET /presets)")
	f.Float64("size", 0, "serving size")
	f.String("unit", "", "ml, oz or cl")
	f.Float64("abv", 0, "alcohol by volume in percent")
	f.Float64("calories", 0, "labelled calories per serving")
	f.Int("count", 1, "number of servings")

	f = cipherCmd.Flags()
	f.String("method", string(domain.CipherCaesar), "caesar, rot13, atbash, base64 or reverse")
	f.Int("shift", 3, "caesar shift")
	f.Bool("decrypt", false, "decrypt instead of encrypt")
	f.Bool("case-sensitive", false, "preserve letter case")
	f.Bool("include-spaces", false, "keep spaces and punctuation")

	calcCmd.AddCommand(idealWeightCmd, simpleInterestCmd, caseCmd, inflationCmd,
		breakEvenCmd, alcoholCmd, cipherCmd, currencyCmd)
}
