// Package gtf is for reading the transcript rows of a GTF annotation file
package gtf

import (
	"strings"
)

const (
	// columns is the number of tab separated fields in a GTF feature line
	columns = 9

	// transcript is the only feature type the TSS converter consumes
	transcript = "transcript"

	// missingLabel is used when a record has neither a gene_name nor a gene_id
	missingLabel = "NA"
)

// Record is a single feature line of a GTF file. Coordinates are kept as
// they were read (1-based, closed) and are parsed by the caller.
type Record struct {
	Chrom      string
	Source     string
	Feature    string
	Start      string
	End        string
	Score      string
	Strand     string
	Frame      string
	Attributes string
}

// Forward reports whether the record is on the + strand. Any other value,
// including malformed ones, counts as reverse.
func (r Record) Forward() bool {
	return r.Strand == "+"
}

// IsComment reports whether the line is a GTF comment or header line.
func IsComment(line string) bool {
	return strings.HasPrefix(line, "#")
}

// Split turns a line into a Record. ok is false for lines with fewer than
// nine columns and for any feature other than "transcript": those lines are
// filtered input, not errors. Columns past the ninth are ignored.
func Split(line string) (r Record, ok bool) {
	fields := strings.Split(strings.TrimSpace(line), "\t")
	if len(fields) < columns || fields[2] != transcript {
		return Record{}, false
	}

	return Record{
		Chrom:      fields[0],
		Source:     fields[1],
		Feature:    fields[2],
		Start:      fields[3],
		End:        fields[4],
		Score:      fields[5],
		Strand:     fields[6],
		Frame:      fields[7],
		Attributes: fields[8],
	}, true
}

// Attributes maps a GTF attribute key (gene_id, gene_name, ...) to its value
// with the surrounding quotes removed.
type Attributes map[string]string

// ParseAttributes reads a `key "value"; key "value";` list. Tokens without
// a space between key and value are dropped. If a key repeats, the last
// value wins.
func ParseAttributes(s string) Attributes {
	attrs := make(Attributes)
	for _, item := range strings.Split(strings.Trim(s, ";"), "; ") {
		key, value, found := strings.Cut(item, " ")
		if !found {
			continue
		}
		attrs[strings.TrimSpace(key)] = strings.Trim(strings.TrimSpace(value), `"`)
	}
	return attrs
}

// Label is the name written to the BED file for a record: gene_name, then
// gene_id, then "NA".
//
// An empty gene_name falls through to gene_id, but a present and empty
// gene_id is used as is.
func (a Attributes) Label() string {
	if name := a["gene_name"]; name != "" {
		return name
	}
	if id, ok := a["gene_id"]; ok {
		return id
	}
	return missingLabel
}

// ParsedAttributes parses the record's ninth column.
func (r Record) ParsedAttributes() Attributes {
	return ParseAttributes(r.Attributes)
}
