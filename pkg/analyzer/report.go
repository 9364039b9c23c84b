package analyzer

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/navigatorx-junction/pkg/validation"
)

type IssueReport struct {
	Kind  string   `json:"kind"`
	Type  string   `json:"type"`
	Way   int64    `json:"way,omitempty"`
	Node  int64    `json:"node,omitempty"`
	Fixes []string `json:"fixes"`
}

func NewIssueReport(issue validation.Issue) IssueReport {
	fixes := make([]string, 0, len(issue.Fixes))
	for _, f := range issue.Fixes {
		fixes = append(fixes, string(f.Type))
	}
	return IssueReport{
		Kind:  "issue",
		Type:  string(issue.Type),
		Way:   int64(issue.Way),
		Node:  int64(issue.Node),
		Fixes: fixes,
	}
}

// WriteReport. one json object per line, junctions first then issues
func WriteReport(w io.Writer, junctions []JunctionReport, issues []validation.Issue) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, j := range junctions {
		if err := enc.Encode(j); err != nil {
			return err
		}
	}
	for _, issue := range issues {
		if err := enc.Encode(NewIssueReport(issue)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteReportFile. bzip2 compressed WriteReport
func WriteReportFile(filename string, junctions []JunctionReport, issues []validation.Issue) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}

	if err := WriteReport(bz, junctions, issues); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}

// ReadReportFile. raw json lines of a report written by WriteReportFile
func ReadReportFile(filename string) ([]json.RawMessage, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	lines := make([]json.RawMessage, 0)
	dec := json.NewDecoder(bz)
	for {
		var line json.RawMessage
		if err := dec.Decode(&line); err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
