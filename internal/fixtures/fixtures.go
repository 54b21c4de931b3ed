// Package fixtures writes the small FASTQ files and samplesheet used to
// smoke test the ChIP-seq pipeline
package fixtures

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	// DataDir is the fixture FASTQ directory, relative to the pipeline dir
	DataDir = "test_data"

	// Samplesheet is the name of the CSV written to the pipeline dir
	Samplesheet = "samplesheet.csv"
)

// MockRead is the single FASTQ record in each fixture
const MockRead = "@SEQ_ID\nGATCTGGTCTTAAAGGGT\n+\nIIIIIIIIIIIIIIIIII\n"

// Sample is one row of the samplesheet.
type Sample struct {
	// Name is the sample column, ex: "chip"
	Name string

	// Condition is ChIP or Input
	Condition string

	// FASTQ is the read file path relative to the samplesheet
	FASTQ string
}

// DefaultSamples is a ChIP sample and its input control.
var DefaultSamples = []Sample{
	{Name: "chip", Condition: "ChIP", FASTQ: DataDir + "/chip_R1.fastq.gz"},
	{Name: "input", Condition: "Input", FASTQ: DataDir + "/input_R1.fastq.gz"},
}

// Generate creates dir (if needed) and writes a gzipped FASTQ for each of
// the DefaultSamples along with the samplesheet that lists them.
func Generate(dir string) error {
	if err := os.MkdirAll(filepath.Join(dir, DataDir), 0755); err != nil {
		return fmt.Errorf("failed to create fixture dir: %w", err)
	}

	for _, s := range DefaultSamples {
		if err := writeFASTQ(filepath.Join(dir, filepath.FromSlash(s.FASTQ))); err != nil {
			return err
		}
	}

	f, err := os.Create(filepath.Join(dir, Samplesheet))
	if err != nil {
		return fmt.Errorf("failed to create samplesheet: %w", err)
	}
	if err = WriteSamplesheet(f, DefaultSamples); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteSamplesheet writes the sample,condition,fastq header and one row per sample.
func WriteSamplesheet(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"sample", "condition", "fastq"}); err != nil {
		return err
	}
	for _, s := range samples {
		if err := cw.Write([]string{s.Name, s.Condition, s.FASTQ}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeFASTQ writes MockRead to a gzip file at path.
func writeFASTQ(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create FASTQ fixture: %w", err)
	}

	zw := gzip.NewWriter(f)
	if _, err = io.WriteString(zw, MockRead); err != nil {
		f.Close()
		return err
	}
	if err = zw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
