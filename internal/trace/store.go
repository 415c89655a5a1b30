package trace

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/teardown/internal/parts"
	"github.com/san-kum/teardown/internal/scene"
)

var ErrRunNotFound = errors.New("trace: run not found")

type Store struct {
	baseDir string
}

func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Script    []string  `json:"script"`
	Ticks     int       `json:"ticks"`
	SettledAt int       `json:"settled_at"`
	Alpha     float64   `json:"alpha"`
	CameraEnd float64   `json:"camera_end"`
}

// Save writes metadata.json and samples.csv under a fresh run directory.
func (s *Store) Save(res *Result, pacing scene.Pacing) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("trace_%d", now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: now,
		Script:    res.Script,
		Ticks:     len(res.Samples),
		SettledAt: res.SettledAt,
		Alpha:     pacing.Alpha,
		CameraEnd: res.Final.CameraDistance,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(header()); err != nil {
		return "", err
	}
	for _, smp := range res.Samples {
		if err := w.Write(encodeSample(smp)); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode %s metadata: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadSamples(runID string) ([]Sample, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	samples := make([]Sample, 0, len(records)-1)
	for i, rec := range records[1:] {
		smp, err := decodeSample(rec)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", runID, i+2, err)
		}
		samples = append(samples, smp)
	}
	return samples, nil
}

// List returns saved runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

const fixedCols = 5

func header() []string {
	row := []string{"frame", "camera", "exploded", "hovered", "selected"}
	for _, name := range parts.Names() {
		row = append(row, name+"_z")
	}
	for _, name := range parts.Names() {
		row = append(row, name+"_scale")
	}
	return row
}

func encodeSample(s Sample) []string {
	row := make([]string, 0, fixedCols+2*parts.Count)
	row = append(row,
		strconv.Itoa(s.Frame),
		strconv.FormatFloat(s.Camera, 'g', -1, 64),
		strconv.FormatBool(s.Exploded),
		s.Hovered.String(),
		s.Selected.String(),
	)
	for _, z := range s.Z {
		row = append(row, strconv.FormatFloat(z, 'g', -1, 64))
	}
	for _, sc := range s.Scale {
		row = append(row, strconv.FormatFloat(sc, 'g', -1, 64))
	}
	return row
}

func decodeSample(rec []string) (Sample, error) {
	var s Sample
	if len(rec) != fixedCols+2*parts.Count {
		return s, fmt.Errorf("expected %d columns, got %d", fixedCols+2*parts.Count, len(rec))
	}
	var err error
	if s.Frame, err = strconv.Atoi(rec[0]); err != nil {
		return s, err
	}
	if s.Camera, err = strconv.ParseFloat(rec[1], 64); err != nil {
		return s, err
	}
	if s.Exploded, err = strconv.ParseBool(rec[2]); err != nil {
		return s, err
	}
	s.Hovered, _ = parts.Lookup(rec[3])
	s.Selected, _ = parts.Lookup(rec[4])
	for i := 0; i < parts.Count; i++ {
		if s.Z[i], err = strconv.ParseFloat(rec[fixedCols+i], 64); err != nil {
			return s, err
		}
		if s.Scale[i], err = strconv.ParseFloat(rec[fixedCols+parts.Count+i], 64); err != nil {
			return s, err
		}
	}
	return s, nil
}
