package cmd

import (
	"github.com/spf13/cobra"

	"meeting-scheduler/config"
)

// inputFlags are shared by every command that reads the CSV inputs.
type inputFlags struct {
	reps        string
	suppliers   string
	preferences string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.reps, "reps", "", "rep list CSV")
	cmd.Flags().StringVar(&f.suppliers, "suppliers", "", "supplier list CSV")
	cmd.Flags().StringVar(&f.preferences, "preferences", "", "supplier preferences CSV")
}

// scheduleFlags mirror the scheduler, output and metrics config sections.
type scheduleFlags struct {
	inputFlags
	repCap          int
	peakCap         int
	acceleratingCap int
	seeds           int
	baseSeed        int64
	workers         int
	format          string
	view            string
	output          string
	metricsAddr     string
	pushURL         string
	wait            bool
	summary         bool
}

func (f *scheduleFlags) register(cmd *cobra.Command) {
	f.inputFlags.register(cmd)
	cmd.Flags().IntVar(&f.repCap, "rep-cap", 0, "maximum meetings per rep")
	cmd.Flags().IntVar(&f.peakCap, "peak-cap", 0, "maximum meetings per Peak supplier")
	cmd.Flags().IntVar(&f.acceleratingCap, "accelerating-cap", 0, "maximum meetings per Accelerating supplier")
	cmd.Flags().IntVar(&f.seeds, "seeds", 0, "number of seeded passes to try")
	cmd.Flags().Int64Var(&f.baseSeed, "base-seed", 0, "seed of the first pass")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "concurrent passes (0 = GOMAXPROCS)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: text|json|csv")
	cmd.Flags().StringVar(&f.view, "view", "", "table to render: supplier|rep")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write the schedule to this file instead of stdout")
	cmd.Flags().StringVar(&f.metricsAddr, "metrics-addr", "", "address to expose Prometheus metrics (e.g. :9090)")
	cmd.Flags().StringVar(&f.pushURL, "push-url", "", "Pushgateway URL to push metrics to")
	cmd.Flags().BoolVar(&f.wait, "wait", false, "keep running after completion to allow metric scraping")
	cmd.Flags().BoolVar(&f.summary, "summary-csv", false, "with --format csv, render the per-supplier summary instead of a meeting table")
}

var schedFlags scheduleFlags

// applyFlags copies the flags the user actually set over the loaded config.
func applyFlags(cmd *cobra.Command, cfg *config.Config, f *scheduleFlags) {
	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}
	if changed("reps") {
		cfg.Input.Reps = f.reps
	}
	if changed("suppliers") {
		cfg.Input.Suppliers = f.suppliers
	}
	if changed("preferences") {
		cfg.Input.Preferences = f.preferences
	}
	if changed("rep-cap") {
		cfg.Scheduler.RepCap = f.repCap
	}
	if changed("peak-cap") {
		cfg.Scheduler.PeakCap = f.peakCap
	}
	if changed("accelerating-cap") {
		cfg.Scheduler.AcceleratingCap = f.acceleratingCap
	}
	if changed("seeds") {
		cfg.Scheduler.Seeds = f.seeds
	}
	if changed("base-seed") {
		cfg.Scheduler.BaseSeed = f.baseSeed
	}
	if changed("workers") {
		cfg.Scheduler.Workers = f.workers
	}
	if changed("format") {
		cfg.Output.Format = f.format
	}
	if changed("view") {
		cfg.Output.View = f.view
	}
	if changed("output") {
		cfg.Output.Path = f.output
	}
	if changed("metrics-addr") {
		cfg.Metrics.Listen = f.metricsAddr
	}
	if changed("push-url") {
		cfg.Metrics.PushGateway = f.pushURL
	}
}
