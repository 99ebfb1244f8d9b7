package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DougieWougie/TaxCalculator/internal/domain"
)

func TestInputFromFlags(t *testing.T) {
	cmd := calculateCmd
	require.NoError(t, cmd.Flags().Set("salary", "45000"))
	require.NoError(t, cmd.Flags().Set("pension", "2250"))
	require.NoError(t, cmd.Flags().Set("second-income", "8000"))
	require.NoError(t, cmd.Flags().Set("region", "scotland"))
	require.NoError(t, cmd.Flags().Set("tax-code", "S1257L"))
	defer resetCalculateFlags(t)

	input, err := inputFromFlags(cmd)
	require.NoError(t, err)

	assert.True(t, input.GrossSalary.Equal(decimal.NewFromInt(45000)))
	assert.True(t, input.PensionContribution.Equal(decimal.NewFromInt(2250)))
	assert.True(t, input.SecondIncome.Equal(decimal.NewFromInt(8000)))
	assert.True(t, input.SalarySacrifice.IsZero(), "Unset amounts stay zero")
	assert.Equal(t, domain.RegionScotland, input.Region)
	assert.Equal(t, "S1257L", input.TaxCode)
}

func TestInputFromFlags_RequiresSalary(t *testing.T) {
	_, err := inputFromFlags(calculateCmd)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--salary is required")
}

func TestInputFromFlags_RejectsBadNumber(t *testing.T) {
	cmd := calculateCmd
	require.NoError(t, cmd.Flags().Set("salary", "lots"))
	defer resetCalculateFlags(t)

	_, err := inputFromFlags(cmd)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --salary")
}

func TestNewEngine_Defaults(t *testing.T) {
	engine, err := newEngine(rootCmd)
	require.NoError(t, err)
	assert.Equal(t, "2024/25", engine.Rules.Metadata.TaxYear)
	assert.False(t, engine.Debug)
}

func TestNewEngine_RulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("personal_allowance: 13000\n"), 0o644))

	require.NoError(t, rootCmd.PersistentFlags().Set("rules", path))
	defer func() {
		require.NoError(t, rootCmd.PersistentFlags().Set("rules", ""))
	}()

	engine, err := newEngine(rootCmd)
	require.NoError(t, err)
	assert.True(t, engine.Rules.PersonalAllowance.Equal(decimal.NewFromInt(13000)))
}

func TestNewEngine_SharedFlagsFromSubcommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("personal_allowance: 13000\n"), 0o644))

	require.NoError(t, rootCmd.PersistentFlags().Set("rules", path))
	require.NoError(t, rootCmd.PersistentFlags().Set("debug", "true"))
	defer func() {
		require.NoError(t, rootCmd.PersistentFlags().Set("rules", ""))
		require.NoError(t, rootCmd.PersistentFlags().Set("debug", "false"))
	}()

	// The shared flags live on the root command; they must be found even
	// when the engine is built for a subcommand outside Execute.
	engine, err := newEngine(calculateCmd)
	require.NoError(t, err)
	assert.True(t, engine.Rules.PersonalAllowance.Equal(decimal.NewFromInt(13000)),
		"Rules file set on the root must reach a subcommand's engine")
	assert.True(t, engine.Debug, "Debug flag set on the root must reach a subcommand's engine")
}

func TestNewEngine_BadRulesFile(t *testing.T) {
	require.NoError(t, rootCmd.PersistentFlags().Set("rules", "/nonexistent/rules.yaml"))
	defer func() {
		require.NoError(t, rootCmd.PersistentFlags().Set("rules", ""))
	}()

	_, err := newEngine(rootCmd)
	assert.Error(t, err)
}

func TestCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, expected := range []string{"calculate", "parse-code", "bands", "version"} {
		assert.True(t, names[expected], "Command %q should be registered", expected)
	}
}

func resetCalculateFlags(t *testing.T) {
	t.Helper()
	for _, name := range []string{"salary", "sacrifice", "pension", "second-income", "tax-code", "second-tax-code"} {
		require.NoError(t, calculateCmd.Flags().Set(name, ""))
	}
	require.NoError(t, calculateCmd.Flags().Set("region", "england"))
	require.NoError(t, calculateCmd.Flags().Set("format", "console"))
}
