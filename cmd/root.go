package cmd

import (
	"github.com/spf13/cobra"

	"meeting-scheduler/config"
	"meeting-scheduler/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "meeting-scheduler",
	Short: "Schedule one-on-one supplier and rep meetings",
	Long: `meeting-scheduler assigns supplier/rep meeting slots across a fixed
event calendar. Requests name a rep, a subcategory or a category; caps
limit meetings per rep and per supplier type. Several seeded passes run
and the one with the fewest unfulfilled requests is kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
}

// Execute runs the CLI. Errors are printed by the printer package, so cobra's
// own error and usage output is silenced.
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// loadConfig reads the config file, then lets explicitly set flags win.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg, &schedFlags)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return nil, err
	}
	return cfg, nil
}
