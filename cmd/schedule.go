package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/spf13/cobra"

	"meeting-scheduler/config"
	"meeting-scheduler/formatter"
	"meeting-scheduler/logger"
	"meeting-scheduler/metrics"
	"meeting-scheduler/models"
	"meeting-scheduler/printer"
	"meeting-scheduler/scheduler"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Build the meeting schedule from rep, supplier and preference CSVs",
	Example: `  meeting-scheduler schedule --reps reps.csv --suppliers suppliers.csv --preferences prefs.csv
  meeting-scheduler schedule -c forum.yaml --view rep --format csv -o reps.csv`,
	RunE: runScheduleCmd,
}

func init() {
	schedFlags.register(scheduleCmd)
	rootCmd.AddCommand(scheduleCmd)
}

func runScheduleCmd(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return printer.Error("Invalid configuration", err.Error(), []string{
			"Check the config file and flags; caps and seeds must be positive.",
		})
	}

	if cfg.Metrics.Listen != "" {
		srv := serveMetrics(cfg.Metrics.Listen, logger.New("metrics"))
		defer srv.Close()
	}

	out := printer.Out
	if cfg.Output.Path != "" {
		f, err := os.Create(cfg.Output.Path)
		if err != nil {
			return printer.Error("Cannot write output", err.Error(), nil)
		}
		defer f.Close()
		out = f
	}

	schedule, err := runSchedule(ctx, cfg, out, logger.New("schedule"))
	if err != nil {
		return printer.Error("Scheduling failed", err.Error(), nil)
	}
	if cfg.Output.Path != "" {
		printer.Success("wrote %d meetings to %s\n", len(schedule.SupplierRows), cfg.Output.Path)
	}

	if cfg.Metrics.PushGateway != "" {
		if err := push.New(cfg.Metrics.PushGateway, cfg.Metrics.Job).Gatherer(metrics.Registry).Push(); err != nil {
			printer.Warning("error pushing to Pushgateway: %v\n", err)
		} else {
			printer.Success("metrics pushed to Pushgateway\n")
		}
	}
	if schedFlags.wait && cfg.Metrics.Listen != "" {
		printer.Printf("Process kept alive for metric scraping. Press Ctrl+C to exit.\n")
		<-ctx.Done()
	}
	return nil
}

// runSchedule loads the inputs, runs every seed and renders the selected
// schedule to out. Validation warnings go through printer.Warning.
func runSchedule(ctx context.Context, cfg *config.Config, out io.Writer, log logger.Logger) (*models.Schedule, error) {
	metrics.ResetSchedulerGauges()

	input, unknown, err := loadInput(cfg.Input)
	if err != nil {
		return nil, err
	}
	log.Infof("loaded %d reps and %d suppliers", len(input.Reps), len(input.Suppliers))
	for _, name := range unknown {
		printer.Warning("preferences name unknown supplier %q; its requests are ignored\n", name)
	}

	opt, err := scheduler.NewOptimizer(input, cfg.Calendar, cfg.Scheduler, log)
	if err != nil {
		return nil, err
	}
	res, err := opt.Run(ctx)
	if err != nil {
		return nil, err
	}
	if err := scheduler.Verify(res.Best, input, cfg.Calendar, cfg.Scheduler); err != nil {
		return nil, fmt.Errorf("selected schedule failed verification: %w", err)
	}

	schedule := scheduler.BuildSchedule(res, input.Suppliers)
	schedule.UnknownSuppliers = unknown
	recordSchedule(schedule)

	for _, name := range schedule.MissingSuppliers {
		printer.Warning("supplier %q is missing from the schedule summary\n", name)
	}

	rendered, err := render(schedule, cfg.Output)
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(out, rendered); err != nil {
		return nil, fmt.Errorf("error writing schedule: %w", err)
	}
	return schedule, nil
}

func render(schedule *models.Schedule, out config.OutputConfig) (string, error) {
	view, err := formatter.ParseView(out.View)
	if err != nil {
		return "", err
	}
	if schedFlags.summary && out.Format == "csv" {
		return formatter.FormatSummaryCSV(schedule), nil
	}
	return formatter.Format(schedule, out.Format, view)
}

func recordSchedule(s *models.Schedule) {
	metrics.MeetingsScheduled.Set(float64(len(s.SupplierRows)))
	metrics.RequestsUnfulfilled.Set(float64(s.Unfulfilled))
	metrics.MissingSuppliers.Set(float64(len(s.MissingSuppliers)))
	for _, sum := range s.Summaries {
		for _, o := range sum.Outcomes {
			metrics.RequestsByOutcome.WithLabelValues(string(o)).Inc()
		}
	}
}

func serveMetrics(addr string, log logger.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Infof("metrics server listening on %s/metrics", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("metrics server: %v", err)
		}
	}()
	return srv
}
