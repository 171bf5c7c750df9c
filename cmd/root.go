package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tristendillon/nbstub/core/config"
	"github.com/tristendillon/nbstub/core/generator"
	"github.com/tristendillon/nbstub/core/logger"
	"github.com/tristendillon/nbstub/core/models"
	"github.com/tristendillon/nbstub/core/ui"
)

// errReported marks a failure that has already been printed.
var errReported = errors.New("stub generation failed")

var rootCmd = &cobra.Command{
	Use:   "nbstub <notebook.ipynb>",
	Short: "Generate a .pyi stub from a notebook's functions.",
	Long: `nbstub scans the code cells of a Jupyter notebook for top-level
function definitions and writes their signatures to a .pyi stub file
beside the notebook, so editors and type checkers can see them.`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		logger.SetVerbose(verbose)
		logger.DisableColor(noColor)
		if logfile != "" {
			f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer f.Close()
			logger.AddWriterForAll(f)
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if outputDir != "" {
			cfg.OutputDir = outputDir
		}

		res := run(cmd, cfg, args[0])
		if !res.OK() {
			logger.Error("Failed on %s: %v", res.NotebookPath, res.Err)
			return errReported
		}
		if toStdout {
			logger.Info("%d signatures from %s rendered to stdout", res.Signatures, res.NotebookPath)
		} else {
			logger.Info("%d signatures from %s written to %s", res.Signatures, res.NotebookPath, res.Path)
		}
		return nil
	},
}

func run(cmd *cobra.Command, cfg *config.Config, notebookPath string) models.Result {
	sg := generator.NewStubGenerator(cfg)

	if toStdout {
		reporter := ui.NewReporter(cmd.ErrOrStderr(), noColor)
		reporter.Processing(notebookPath)
		res := sg.Preview(notebookPath, cmd.OutOrStdout())
		if !res.OK() {
			reporter.Result(res)
		}
		return res
	}

	reporter := ui.NewReporter(cmd.OutOrStdout(), noColor)
	reporter.Processing(notebookPath)
	res := sg.Process(notebookPath)
	reporter.Result(res)
	return res
}

var (
	logfile    string
	verbose    bool
	noColor    bool
	configPath string
	outputDir  string
	toStdout   bool
)

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file (default ./"+config.FileName+")")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory to write the stub to (default: the notebook's directory)")
	rootCmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the stub instead of writing it")
}
