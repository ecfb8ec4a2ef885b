package main

import (
	"github.com/spf13/cobra"
)

var version = "dev"

// globalFlags override the matching config file values when set
type globalFlags struct {
	configPath  string
	input       string
	output      string
	transcripts string
	docx        string
	provider    string
	cachePath   string
	metricsFile string
	logLevel    string
	logFormat   string
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "weaver",
		Short: "Truth Weaver - credibility analysis of recorded interviews",
		Long: `Truth Weaver transcribes a directory of interview recordings, groups them
per subject, asks a language model where each subject's claims contradict
each other and writes a JSON report with batch-wide insights.

Recordings are named <subject>_<year>_<index>.<ext>.`,
		Version:      version,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", defaultConfigPath, "Path to the YAML config file")
	pf.StringVarP(&flags.input, "input", "i", "", "Directory with the audio recordings")
	pf.StringVarP(&flags.output, "output", "o", "", "Path of the JSON report")
	pf.StringVar(&flags.transcripts, "transcripts", "", "Also dump raw transcripts to this file")
	pf.StringVar(&flags.docx, "docx", "", "Also export the report as a Word document")
	pf.StringVar(&flags.provider, "provider", "", "Analysis provider: gemini or openai")
	pf.StringVar(&flags.cachePath, "cache", "", "SQLite transcript cache path")
	pf.StringVar(&flags.metricsFile, "metrics-file", "", "Write Prometheus textfile metrics here")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format: text or json")

	cmd.AddCommand(newRunCommand(flags))
	cmd.AddCommand(newWatchCommand(flags))

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
