package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/step"
)

var (
	ErrUnknownFormat = errors.New("export: unknown format")
	ErrMalformedRun  = errors.New("export: malformed run")
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: %q (want json or csv)", ErrUnknownFormat, s)
}

// Document is the JSON form of an exported run.
type Document struct {
	*algorithms.Run
	StepCount int                `json:"step_count"`
	Metrics   map[string]float64 `json:"metrics"`
}

func NewDocument(run *algorithms.Run) Document {
	return Document{
		Run:       run,
		StepCount: len(run.Steps),
		Metrics:   metrics.Collect(run.Steps),
	}
}

// Write encodes run to w in the given format.
func Write(w io.Writer, format Format, run *algorithms.Run) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, run)
	case FormatCSV:
		return WriteCSV(w, run)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// WriteFile creates path and writes run to it.
func WriteFile(path string, format Format, run *algorithms.Run) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(file, format, run); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func WriteJSON(w io.Writer, run *algorithms.Run) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewDocument(run))
}

// ReadJSON decodes a document written by WriteJSON.
func ReadJSON(r io.Reader) (*algorithms.Run, error) {
	doc := Document{Run: &algorithms.Run{}}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("export: decode run: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("%w: run %q has no steps", ErrMalformedRun, doc.ID)
	}
	if err := checkSteps(doc.Steps); err != nil {
		return nil, err
	}
	if doc.Kind == "" {
		doc.Kind = doc.Steps[0].Data.Kind()
	}
	return doc.Run, nil
}

// checkSteps requires every step to carry a snapshot of one kind and an id
// equal to its position.
func checkSteps(seq step.Sequence) error {
	for i, s := range seq {
		if s.Data == nil {
			return fmt.Errorf("%w: step %d has no snapshot", ErrMalformedRun, i)
		}
		if s.ID != i {
			return fmt.Errorf("%w: step %d has id %d", ErrMalformedRun, i, s.ID)
		}
		if k := s.Data.Kind(); k != seq[0].Data.Kind() {
			return fmt.Errorf("%w: step %d is a %s step in a %s run", ErrMalformedRun, i, k, seq[0].Data.Kind())
		}
	}
	return nil
}

func ReadFile(path string) (*algorithms.Run, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadJSON(file)
}

var csvHeader = []string{
	"id", "action", "description", "array",
	"comparing", "swapping", "sorted",
	"left", "right", "mid", "found",
}

// WriteCSV writes one row per step. Index lists are space separated; absent
// fields are empty.
func WriteCSV(w io.Writer, run *algorithms.Run) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range run.Steps {
		if err := cw.Write(row(s)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func row(s step.Step) []string {
	r := make([]string, len(csvHeader))
	r[0] = strconv.Itoa(s.ID)
	r[1] = string(s.Action)
	r[2] = s.Description

	switch d := s.Data.(type) {
	case step.SortSnapshot:
		r[3] = ints(d.Values)
		if d.Comparing != nil {
			r[4] = ints(d.Comparing[:])
		}
		if d.Swapping != nil {
			r[5] = ints(d.Swapping[:])
		}
		r[6] = ints(d.Sorted)
	case step.SearchSnapshot:
		r[3] = ints(d.Values)
		r[7] = optInt(d.Left)
		r[8] = optInt(d.Right)
		r[9] = optInt(d.Mid)
		if d.Found != nil {
			r[10] = strconv.FormatBool(*d.Found)
		}
	}
	return r
}

func ints(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func optInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}
