package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-scheduler/config"
	customerrors "meeting-scheduler/errors"
	"meeting-scheduler/logger"
	"meeting-scheduler/models"
	"meeting-scheduler/printer"
)

func capturePrinter(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	prevOut, prevErr, prevNoColor := printer.Out, printer.ErrOut, color.NoColor
	var out, errOut bytes.Buffer
	printer.Out, printer.ErrOut = &out, &errOut
	color.NoColor = true
	t.Cleanup(func() {
		printer.Out, printer.ErrOut, color.NoColor = prevOut, prevErr, prevNoColor
	})
	return &out, &errOut
}

func testInput() config.InputConfig {
	return config.InputConfig{
		Reps:        "testdata/reps.csv",
		Suppliers:   "testdata/suppliers.csv",
		Preferences: "testdata/preferences.csv",
	}
}

func TestLoadInput(t *testing.T) {
	input, unknown, err := loadInput(testInput())
	require.NoError(t, err)

	assert.Len(t, input.Reps, 5)
	require.Len(t, input.Suppliers, 3)
	assert.Equal(t, []string{"Alice", "Gloves", "Tools"}, input.Suppliers[0].Requests)
	assert.Equal(t, models.SupplierAccelerating, input.Suppliers[1].Type)
	assert.Equal(t, []string{"Ghost"}, unknown)
}

func TestLoadInput_Errors(t *testing.T) {
	tests := map[string]struct {
		mutate   func(*config.InputConfig)
		wantErr  error
		contains string
	}{
		"MissingPreferencesPath": {
			mutate:   func(c *config.InputConfig) { c.Preferences = "" },
			contains: "no preferences file",
		},
		"FileNotFound": {
			mutate:   func(c *config.InputConfig) { c.Suppliers = "testdata/absent.csv" },
			contains: "error opening file",
		},
		"BadRank": {
			mutate:  func(c *config.InputConfig) { c.Reps = "testdata/bad_reps.csv" },
			wantErr: customerrors.ErrInvalidRank,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			in := testInput()
			tt.mutate(&in)
			_, _, err := loadInput(in)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

func TestValidateInput(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Input = testInput()

	report, err := validateInput(cfg)
	require.NoError(t, err)

	assert.Equal(t, 5, report.Reps)
	assert.Equal(t, 3, report.Suppliers)
	assert.Equal(t, 38, report.OpenSlots)
	assert.Equal(t, 2, report.ByTier[models.TierExactRep])
	assert.Equal(t, 1, report.ByTier[models.TierSubcategory])
	assert.Equal(t, 2, report.ByTier[models.TierCategory])
	assert.Equal(t, 1, report.ByTier[models.TierUnresolved])
	assert.Equal(t, []UnresolvedRequest{{Supplier: "Zen", Request: "Nobody"}}, report.Unresolved)
	assert.Equal(t, 2, report.Warnings())
}

func TestRunSchedule(t *testing.T) {
	_, errOut := capturePrinter(t)
	cfg, err := config.Load("testdata/config.yaml")
	require.NoError(t, err)

	var out bytes.Buffer
	schedule, err := runSchedule(context.Background(), cfg, &out, logger.NopLogger{})
	require.NoError(t, err)

	assert.NotEmpty(t, schedule.RunID)
	assert.Len(t, schedule.SeedUnfulfilled, 4)
	assert.Equal(t, 1, schedule.Unfulfilled)
	assert.Len(t, schedule.SupplierRows, 5)
	assert.Len(t, schedule.RepRows, 5)
	assert.Empty(t, schedule.MissingSuppliers)
	assert.Equal(t, []string{"Ghost"}, schedule.UnknownSuppliers)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Supplier,Booth,Day,Slot,Rep,Category", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Acme,101,"))
	assert.Contains(t, errOut.String(), `unknown supplier "Ghost"`)
}

func TestRunSchedule_Cancelled(t *testing.T) {
	capturePrinter(t)
	cfg, err := config.Load("testdata/config.yaml")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	_, err = runSchedule(ctx, cfg, &out, logger.NopLogger{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestApplyFlags(t *testing.T) {
	var f scheduleFlags
	c := &cobra.Command{Use: "test"}
	f.register(c)
	require.NoError(t, c.Flags().Parse([]string{"--rep-cap", "4", "--view", "rep", "--reps", "r.csv", "--base-seed", "9"}))

	cfg, err := config.Load("")
	require.NoError(t, err)
	applyFlags(c, cfg, &f)

	assert.Equal(t, 4, cfg.Scheduler.RepCap)
	assert.Equal(t, int64(9), cfg.Scheduler.BaseSeed)
	assert.Equal(t, "rep", cfg.Output.View)
	assert.Equal(t, "r.csv", cfg.Input.Reps)
	// unset flags leave config values alone
	assert.Equal(t, 6, cfg.Scheduler.PeakCap)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestValidateCommand(t *testing.T) {
	out, errOut := capturePrinter(t)

	rootCmd.SetArgs([]string{"validate", "--config", "testdata/config.yaml"})
	require.NoError(t, Execute())
	assert.Contains(t, out.String(), "5 reps, 3 suppliers, 38 open slots per rep")
	assert.Contains(t, out.String(), "✓ inputs are valid")
	assert.Contains(t, errOut.String(), `Zen: request "Nobody" matches no rep`)

	rootCmd.SetArgs([]string{"validate", "--config", "testdata/config.yaml", "--strict"})
	err := Execute()
	require.Error(t, err)
	assert.Equal(t, "Validation failed", err.Error())
}
