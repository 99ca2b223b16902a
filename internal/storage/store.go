package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/algolab/internal/engine"
	"github.com/san-kum/algolab/internal/frame"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

var (
	ErrRunNotFound = errors.New("storage: run not found")
	ErrBadRecord   = errors.New("storage: malformed frame record")
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

// RunInfo describes how a run was configured.
type RunInfo struct {
	Algorithm string
	Category  string
	Seed      int64
	Speed     int
	Target    *int
	User      string
	Initial   frame.Dataset
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Algorithm  string             `json:"algorithm"`
	Category   string             `json:"category"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed"`
	Size       int                `json:"size"`
	Speed      int                `json:"speed"`
	Target     *int               `json:"target,omitempty"`
	User       string             `json:"user,omitempty"`
	Initial    []int              `json:"initial"`
	Final      []int              `json:"final"`
	Outcome    string             `json:"outcome"`
	FoundIndex int                `json:"found_index"`
	Steps      int                `json:"steps"`
	Metrics    map[string]float64 `json:"metrics"`
}

func newRunID(algorithm string, now time.Time) string {
	return fmt.Sprintf("%s_%d_%s", algorithm, now.Unix(), uuid.NewString()[:8])
}

func (s *Store) Save(info RunInfo, result *engine.Result) (string, error) {
	now := time.Now()
	runID := newRunID(info.Algorithm, now)
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Algorithm:  info.Algorithm,
		Category:   info.Category,
		Timestamp:  now,
		Seed:       info.Seed,
		Size:       len(info.Initial),
		Speed:      info.Speed,
		Target:     info.Target,
		User:       info.User,
		Initial:    info.Initial,
		Final:      result.Data,
		Outcome:    result.Outcome.Status.String(),
		FoundIndex: result.Outcome.Index,
		Steps:      result.Steps,
		Metrics:    result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, framesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteFramesCSV(csvFile, result.Frames); err != nil {
		return "", err
	}
	return runID, nil
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadFrames(runID string) ([]frame.Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 5

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []frame.Frame{}, nil
	}

	frames := make([]frame.Frame, 0, len(records)-1)
	for i, record := range records[1:] {
		f, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", framesFile, i+2, err)
		}
		frames = append(frames, f)
	}
	return frames, nil
}

func parseRecord(record []string) (frame.Frame, error) {
	step, err := strconv.Atoi(record[0])
	if err != nil {
		return frame.Frame{}, fmt.Errorf("%w: step %q", ErrBadRecord, record[0])
	}
	kind, err := frame.ParseKind(record[1])
	if err != nil {
		return frame.Frame{}, err
	}

	fields := strings.Fields(record[2])
	values := make(frame.Dataset, len(fields))
	for i, f := range fields {
		if values[i], err = strconv.Atoi(f); err != nil {
			return frame.Frame{}, fmt.Errorf("%w: value %q", ErrBadRecord, f)
		}
	}

	names := strings.Fields(record[3])
	if len(names) != len(values) {
		return frame.Frame{}, fmt.Errorf("%w: %d tags for %d values", ErrBadRecord, len(names), len(values))
	}
	tags := make(frame.Highlight, len(names))
	for i, n := range names {
		if tags[i], err = frame.ParseTag(n); err != nil {
			return frame.Frame{}, err
		}
	}

	f := frame.New(kind, values, tags, record[4])
	f.Step = step
	return f, nil
}
