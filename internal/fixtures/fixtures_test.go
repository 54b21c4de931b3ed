package fixtures

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wantSamplesheet = `sample,condition,fastq
chip,ChIP,test_data/chip_R1.fastq.gz
input,Input,test_data/input_R1.fastq.gz
`

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "chipseq-pipeline")

	require.NoError(t, Generate(dir))

	sheet, err := os.ReadFile(filepath.Join(dir, Samplesheet))
	require.NoError(t, err)
	assert.Equal(t, wantSamplesheet, string(sheet))

	for _, name := range []string{"chip_R1.fastq.gz", "input_R1.fastq.gz"} {
		t.Run(name, func(t *testing.T) {
			f, err := os.Open(filepath.Join(dir, DataDir, name))
			require.NoError(t, err)
			defer f.Close()

			zr, err := gzip.NewReader(f)
			require.NoError(t, err)
			got, err := io.ReadAll(zr)
			require.NoError(t, err)
			assert.Equal(t, MockRead, string(got))
		})
	}
}

func TestGenerate_existingDir(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Generate(dir))
	require.NoError(t, Generate(dir), "rerunning into the same dir should overwrite")

	entries, err := os.ReadDir(filepath.Join(dir, DataDir))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestGenerate_dirIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "pipeline")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	assert.Error(t, Generate(blocker))
}

func TestWriteSamplesheet(t *testing.T) {
	tests := []struct {
		name    string
		samples []Sample
		want    string
	}{
		{"default samples", DefaultSamples, wantSamplesheet},
		{"header only", nil, "sample,condition,fastq\n"},
		{
			"comma in a field is quoted",
			[]Sample{{Name: "chip,rep1", Condition: "ChIP", FASTQ: "a.fastq.gz"}},
			"sample,condition,fastq\n\"chip,rep1\",ChIP,a.fastq.gz\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteSamplesheet(&buf, tt.samples))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
