package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/DougieWougie/TaxCalculator/internal/calculation"
	"github.com/DougieWougie/TaxCalculator/internal/config"
	"github.com/DougieWougie/TaxCalculator/internal/domain"
	"github.com/DougieWougie/TaxCalculator/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxcalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "taxcalc",
	Short: "UK take-home pay calculator",
	Long:  "Calculates UK income tax, National Insurance and net pay for a tax year, including tax codes, pension income and salary sacrifice",
}

// newEngine builds the engine, applying a rules file and debug logging
// from the shared flags. The shared flags live on the root command's
// persistent set and are read from there: cobra only merges them into a
// subcommand's Flags() during parsing, so a Flags() lookup outside
// Execute would silently miss them.
func newEngine(cmd *cobra.Command) (*calculation.Engine, error) {
	shared := cmd.Root().PersistentFlags()

	rules := domain.DefaultTaxYearRules()
	rulesFile, err := shared.GetString("rules")
	if err != nil {
		return nil, err
	}
	if rulesFile != "" {
		parser := config.NewInputParser()
		loaded, err := parser.LoadRules(rulesFile)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}

	engine := calculation.NewEngineWithRules(rules)
	debugMode, err := shared.GetBool("debug")
	if err != nil {
		return nil, err
	}
	if debugMode {
		engine.SetLogger(simpleCLILogger{})
		engine.Debug = true
	}
	return engine, nil
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Calculate take-home pay from an input file or flags",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var input *domain.CalculationInput
		parser := config.NewInputParser()

		if len(args) == 1 {
			loaded, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			input = loaded
		} else {
			flagInput, err := inputFromFlags(cmd)
			if err != nil {
				return err
			}
			if err := parser.ValidateInput(flagInput); err != nil {
				return err
			}
			input = flagInput
		}

		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}
		result := engine.Calculate(*input)

		format, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(format)
		if formatter == nil {
			return fmt.Errorf("unsupported format: %s", format)
		}
		data, err := formatter.Format(&result)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

// inputFromFlags assembles a CalculationInput from the calculate
// command's flags, for quick one-off runs without an input file.
func inputFromFlags(cmd *cobra.Command) (*domain.CalculationInput, error) {
	salary, _ := cmd.Flags().GetString("salary")
	if salary == "" {
		return nil, fmt.Errorf("either an input file or --salary is required")
	}

	input := &domain.CalculationInput{}
	fields := map[string]*decimal.Decimal{
		"salary":        &input.GrossSalary,
		"sacrifice":     &input.SalarySacrifice,
		"pension":       &input.PensionContribution,
		"second-income": &input.SecondIncome,
	}
	for flag, dst := range fields {
		raw, _ := cmd.Flags().GetString(flag)
		if raw == "" {
			continue
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s value %q: %w", flag, raw, err)
		}
		*dst = value
	}

	region, _ := cmd.Flags().GetString("region")
	input.Region = domain.TaxRegion(region)
	input.TaxCode, _ = cmd.Flags().GetString("tax-code")
	input.SecondTaxCode, _ = cmd.Flags().GetString("second-tax-code")
	return input, nil
}

var parseCodeCmd = &cobra.Command{
	Use:   "parse-code [tax-code]",
	Short: "Parse and validate a tax code",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		info := calculation.ParseTaxCode(args[0])
		if !info.IsValid {
			fmt.Printf("%s: invalid tax code (standard rules would apply)\n", args[0])
			return
		}
		fmt.Printf("Code:               %s\n", info.Raw)
		fmt.Printf("Type:               %s\n", info.Type)
		fmt.Printf("Personal Allowance: %s\n", output.FormatCurrency(info.PersonalAllowance))
		if info.Type == domain.TaxCodeK {
			fmt.Printf("K Adjustment:       %s\n", output.FormatCurrency(info.KAdjustment))
		}
		fmt.Printf("Scottish:           %t\n", info.IsScottish)
	},
}

var bandsCmd = &cobra.Command{
	Use:   "bands",
	Short: "Print the effective tax bands for a region",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}

		region := domain.TaxRegion(mustString(cmd, "region"))
		if region == "" {
			region = domain.RegionEngland
		}
		if !region.IsValid() {
			return fmt.Errorf("unknown region %q", region)
		}

		allowance := engine.Rules.PersonalAllowance
		if incomeStr := mustString(cmd, "income"); incomeStr != "" {
			income, err := decimal.NewFromString(incomeStr)
			if err != nil {
				return fmt.Errorf("invalid --income value %q: %w", incomeStr, err)
			}
			allowance = engine.Allowance.Allowance(income)
		}

		bands := calculation.AdjustBandsForAllowance(engine.Rules.BandsForRegion(region), allowance, engine.Rules.PersonalAllowance)
		fmt.Printf("Income tax bands - %s (%s)\n", region.DisplayName(), engine.Rules.Metadata.TaxYear)
		for _, band := range bands {
			upper := "and above"
			if !band.Unbounded {
				upper = "to " + output.FormatCurrency(band.Upper)
			}
			fmt.Printf("  %-20s above %12s %-18s @ %s\n",
				band.Name, output.FormatCurrency(band.Lower), upper, output.FormatPercentage(band.Rate))
		}
		return nil
	},
}

func mustString(cmd *cobra.Command, name string) string {
	value, _ := cmd.Flags().GetString(name)
	return value
}

func init() {
	rootCmd.PersistentFlags().String("rules", "", "Tax rules YAML file overriding the built-in tables")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	calculateCmd.Flags().String("format", "console", "Output format: console, json, csv")
	calculateCmd.Flags().String("salary", "", "Annual gross salary")
	calculateCmd.Flags().String("sacrifice", "", "Annual salary sacrifice")
	calculateCmd.Flags().String("pension", "", "Annual employee pension contribution")
	calculateCmd.Flags().String("second-income", "", "Annual second income (e.g. a pension in payment)")
	calculateCmd.Flags().String("region", "england", "Tax region: england, scotland, wales, northern_ireland")
	calculateCmd.Flags().String("tax-code", "", "Employment tax code")
	calculateCmd.Flags().String("second-tax-code", "", "Second income tax code")

	bandsCmd.Flags().String("region", "england", "Tax region")
	bandsCmd.Flags().String("income", "", "Income used to taper the personal allowance")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(parseCodeCmd)
	rootCmd.AddCommand(bandsCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
