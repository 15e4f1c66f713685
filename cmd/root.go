package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/jsphweid/theorybox/config"
	"github.com/jsphweid/theorybox/constants"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool
	cfg        = config.Default()
	logger     = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "theorybox",
	Short: "Music theory on a fretboard",
	Long:  `Scales, chords, roman numeral progressions and intervals, projected onto a guitar neck.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initLogger(debug)
		if err := godotenv.Load(); err != nil {
			logger.Debug("no .env file, using environment")
		}
		if configPath == "" {
			configPath = constants.GetConfigPath()
		}
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debug("config loaded", "path", configPath, "frets", cfg.Frets, "highlight", cfg.Highlight)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $THEORYBOX_CONFIG or ./theorybox.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")
}

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
