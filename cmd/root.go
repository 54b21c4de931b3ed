// Package cmd is for command line interactions with the chipseq-tools application
package cmd

import (
	"log"
	"os"

	"github.com/lipingzengGitHub/ChIP-seq/config"
	"github.com/lipingzengGitHub/ChIP-seq/internal/tss"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)

	// profiler is running when --profile is set
	profiler interface{ Stop() }
)

// rootCmd converts a GTF into a BED of TSSs when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "chipseq-tools",
	Short: "Make a BED file of transcription start sites from a GTF annotation",
	Long: `Make a BED file of transcription start sites from a GTF annotation

Each "transcript" row of the GTF gives one TSS: its start on the + strand and
its end on any other strand. Sites are written as zero length BED4 intervals
named by gene_name (or gene_id, or NA). A site with the same chromosome,
position and name as one already written is dropped.

Comment lines, other feature types and lines with fewer than nine tab
separated columns are skipped.`,
	Example:           "  chipseq-tools -g gencode.v44.annotation.gtf -o TSS.bed",
	Version:           "0.1.0",
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              tssExec,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := run(); err != nil {
		stderr.Fatalf("%v", err)
	}
}

// run executes the command tree and flushes the profiler whether or not
// the command failed.
func run() error {
	err := rootCmd.Execute()
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
	return err
}

// setup reads the settings file and starts the profiler for any command.
func setup(cmd *cobra.Command, args []string) error {
	settings, err := cmd.Flags().GetString("settings")
	if err != nil {
		return err
	}
	if err = config.Setup(viper.GetViper(), settings); err != nil {
		return err
	}

	if dir, _ := cmd.Flags().GetString("profile"); dir != "" {
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet)
	}
	return nil
}

// tssExec is the root of the TSS functionality.
func tssExec(cmd *cobra.Command, args []string) error {
	gtfPath, err := cmd.Flags().GetString("gtf")
	if err != nil {
		return err
	}

	conf, err := config.New(viper.GetViper())
	if err != nil {
		return err
	}

	sum, err := tss.ConvertFile(gtfPath, conf.Output)
	if err != nil {
		return err
	}

	if conf.Verbose {
		stderr.Printf(
			"%s: %d lines, %d transcripts, %d sites written, %d duplicates dropped, %d lines skipped",
			gtfPath, sum.Lines, sum.Transcripts, sum.Written, sum.Duplicates, sum.Skipped+sum.Comments,
		)
	}
	return nil
}

// set flags
func init() {
	rootCmd.Flags().StringP("gtf", "g", "", "Input GTF annotation file")
	rootCmd.Flags().StringP("output", "o", config.DefaultOutput, "Output BED file (\"-\" for stdout)")
	rootCmd.MarkFlagRequired("gtf")

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log a summary of the run to stderr")
	rootCmd.PersistentFlags().StringP("settings", "s", "", "YAML settings file")
	rootCmd.PersistentFlags().String("profile", "", "Write a CPU profile to this directory")
	rootCmd.PersistentFlags().MarkHidden("profile")

	// Bind the parameters to viper
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}
