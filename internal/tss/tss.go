// Package tss is for converting GTF transcript annotations into a BED file
// of transcription start sites
package tss

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lipingzengGitHub/ChIP-seq/internal/gtf"
)

// Site is a zero length TSS interval in BED coordinates (0-based, half-open).
// A Site is also the dedup key: one BED row is written per distinct Site.
type Site struct {
	Chrom string
	Start int
	End   int
	Name  string
}

// String formats the site as a BED4 row, without the newline.
func (s Site) String() string {
	return fmt.Sprintf("%s\t%d\t%d\t%s", s.Chrom, s.Start, s.End, s.Name)
}

// Summary counts what happened to the lines of one conversion.
type Summary struct {
	// Lines is every line read, comments included
	Lines int

	// Comments is the number of '#' lines
	Comments int

	// Skipped is lines that were not transcript records
	Skipped int

	// Transcripts is the number of transcript records read
	Transcripts int

	// Written is the number of BED rows written
	Written int

	// Duplicates is transcript records whose Site was already written
	Duplicates int
}

// FromRecord computes the TSS of a transcript record. The TSS is the start
// coordinate on the + strand and the end coordinate otherwise, shifted from
// 1-based to 0-based and clamped at zero.
func FromRecord(r gtf.Record) (Site, error) {
	coord := r.End
	if r.Forward() {
		coord = r.Start
	}

	pos, err := strconv.Atoi(strings.TrimSpace(coord))
	if err != nil {
		return Site{}, fmt.Errorf("bad TSS coordinate %q: %w", coord, err)
	}

	start := pos - 1
	if start < 0 {
		start = 0
	}

	return Site{
		Chrom: r.Chrom,
		Start: start,
		End:   start + 1,
		Name:  r.ParsedAttributes().Label(),
	}, nil
}

// Convert reads a GTF from r and writes a BED row to w for each unique
// transcription start site, in the order they're first seen.
func Convert(r io.Reader, w io.Writer) (Summary, error) {
	var sum Summary
	seen := make(map[Site]bool)

	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return sum, fmt.Errorf("failed to read GTF: %w", readErr)
		}
		if line == "" && readErr == io.EOF {
			break
		}
		sum.Lines++

		if err := convertLine(line, &sum, seen, bw); err != nil {
			return sum, err
		}
		if readErr == io.EOF {
			break
		}
	}

	return sum, bw.Flush()
}

// convertLine writes the TSS of one GTF line to bw unless it's filtered or
// already in seen.
func convertLine(line string, sum *Summary, seen map[Site]bool, bw *bufio.Writer) error {
	if gtf.IsComment(line) {
		sum.Comments++
		return nil
	}

	rec, ok := gtf.Split(line)
	if !ok {
		sum.Skipped++
		return nil
	}
	sum.Transcripts++

	site, err := FromRecord(rec)
	if err != nil {
		return fmt.Errorf("line %d: %w", sum.Lines, err)
	}

	if seen[site] {
		sum.Duplicates++
		return nil
	}
	seen[site] = true

	if _, err := fmt.Fprintln(bw, site); err != nil {
		return err
	}
	sum.Written++
	return nil
}
