package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/algolab/internal/frame"
)

var framesHeader = []string{"step", "kind", "values", "tags", "status"}

// WriteFramesCSV writes one row per frame. Values and tags are space
// separated so that a row has a fixed number of columns.
func WriteFramesCSV(w io.Writer, frames []frame.Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(framesHeader); err != nil {
		return err
	}

	for _, f := range frames {
		values := make([]string, len(f.Values))
		for i, v := range f.Values {
			values[i] = strconv.Itoa(v)
		}
		tags := make([]string, len(f.Tags))
		for i, t := range f.Tags {
			tags[i] = t.String()
		}
		row := []string{
			strconv.Itoa(f.Step),
			f.Kind.String(),
			strings.Join(values, " "),
			strings.Join(tags, " "),
			f.Status,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

type ExportFrame struct {
	Step   int      `json:"step"`
	Kind   string   `json:"kind"`
	Values []int    `json:"values"`
	Tags   []string `json:"tags"`
	Status string   `json:"status"`
}

type ExportData struct {
	Run    RunMetadata   `json:"run"`
	Frames []ExportFrame `json:"frames"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, frames []frame.Frame) error {
	data := ExportData{
		Run:    *meta,
		Frames: make([]ExportFrame, len(frames)),
	}

	for i, f := range frames {
		tags := make([]string, len(f.Tags))
		for j, t := range f.Tags {
			tags[j] = t.String()
		}
		data.Frames[i] = ExportFrame{
			Step:   f.Step,
			Kind:   f.Kind.String(),
			Values: f.Values,
			Tags:   tags,
			Status: f.Status,
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportRun writes a stored run as JSON.
func (s *Store) ExportRun(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	frames, err := s.LoadFrames(runID)
	if err != nil {
		return err
	}
	return ExportJSON(w, meta, frames)
}
