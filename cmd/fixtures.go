package cmd

import (
	"github.com/lipingzengGitHub/ChIP-seq/config"
	"github.com/lipingzengGitHub/ChIP-seq/internal/fixtures"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// fixturesCmd is for writing a tiny ChIP and input sample set to test the pipeline with.
var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Write test FASTQ files and a samplesheet",
	Long: `Write test FASTQ files and a samplesheet for the ChIP-seq pipeline

Creates <dir>/test_data/chip_R1.fastq.gz and <dir>/test_data/input_R1.fastq.gz,
each holding one read, and <dir>/samplesheet.csv listing them with the columns
sample, condition and fastq. Existing fixtures are overwritten.`,
	Example:                    "  chipseq-tools fixtures -d chipseq-pipeline",
	Args:                       cobra.NoArgs,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"testdata"},
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.New(viper.GetViper())
		if err != nil {
			return err
		}

		if err = fixtures.Generate(conf.FixturesDir); err != nil {
			return err
		}
		if conf.Verbose {
			stderr.Printf("wrote %d samples to %s", len(fixtures.DefaultSamples), conf.FixturesDir)
		}
		return nil
	},
}

// set flags
func init() {
	fixturesCmd.Flags().StringP("dir", "d", config.DefaultFixturesDir, "Directory to write the samplesheet and test_data to")
	viper.BindPFlag("fixtures-dir", fixturesCmd.Flags().Lookup("dir"))

	rootCmd.AddCommand(fixturesCmd)
}
