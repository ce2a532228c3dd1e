package cmd

import (
	"github.com/spf13/cobra"

	"meeting-scheduler/config"
	"meeting-scheduler/models"
	"meeting-scheduler/printer"
	"meeting-scheduler/scheduler"
)

var strictValidate bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the inputs and report requests that match no rep",
	RunE:  runValidateCmd,
}

func init() {
	schedFlags.inputFlags.register(validateCmd)
	validateCmd.Flags().BoolVar(&strictValidate, "strict", false, "fail when any warning is reported")
	rootCmd.AddCommand(validateCmd)
}

// Report summarises how supplier requests resolve against the rep list.
type Report struct {
	Reps      int
	Suppliers int
	OpenSlots int
	// ByTier counts request entries per resolution tier.
	ByTier map[models.Tier]int
	// Unresolved lists requests that match nothing, in supplier order.
	Unresolved       []UnresolvedRequest
	UnknownSuppliers []string
}

type UnresolvedRequest struct {
	Supplier string
	Request  string
}

// Warnings is the number of issues a strict run fails on.
func (r Report) Warnings() int {
	return len(r.UnknownSuppliers) + len(r.Unresolved)
}

func runValidateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return printer.Error("Invalid configuration", err.Error(), nil)
	}
	report, err := validateInput(cfg)
	if err != nil {
		return printer.Error("Invalid input", err.Error(), []string{
			"Check the CSV layout: lines starting with # are comments.",
		})
	}

	printer.Printf("%d reps, %d suppliers, %d open slots per rep\n", report.Reps, report.Suppliers, report.OpenSlots)
	for _, tier := range []models.Tier{models.TierExactRep, models.TierSubcategory, models.TierCategory, models.TierUnresolved} {
		printer.Printf("  %-12s %d\n", tier.String()+":", report.ByTier[tier])
	}
	for _, name := range report.UnknownSuppliers {
		printer.Warning("preferences name unknown supplier %q\n", name)
	}
	for _, u := range report.Unresolved {
		printer.Warning("%s: request %q matches no rep, subcategory or category\n", u.Supplier, u.Request)
	}

	if report.Warnings() > 0 && strictValidate {
		return printer.Error("Validation failed", "inputs produced warnings and --strict is set", nil)
	}
	printer.Success("inputs are valid\n")
	return nil
}

func validateInput(cfg *config.Config) (*Report, error) {
	input, unknown, err := loadInput(cfg.Input)
	if err != nil {
		return nil, err
	}
	report := &Report{
		Reps:             len(input.Reps),
		Suppliers:        len(input.Suppliers),
		OpenSlots:        cfg.Calendar.OpenCount(),
		ByTier:           make(map[models.Tier]int),
		UnknownSuppliers: unknown,
	}
	resolver := scheduler.NewResolver(input.Reps)
	for _, s := range input.Suppliers {
		for _, req := range s.Requests {
			tier := resolver.Resolve(req).Tier
			report.ByTier[tier]++
			if tier == models.TierUnresolved {
				report.Unresolved = append(report.Unresolved, UnresolvedRequest{Supplier: s.Name, Request: req})
			}
		}
	}
	return report, nil
}
