package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/mechkit/internal/particle"
	"github.com/san-kum/mechkit/internal/vector"
)

var (
	// ErrCorrupt indicates a snapshot whose particle rows cannot be read back.
	ErrCorrupt = errors.New("storage: corrupt snapshot")
	// ErrInvalidID indicates a snapshot name or id that is not a single
	// path element.
	ErrInvalidID = errors.New("storage: invalid snapshot id")
)

// writeRows is replaced in tests to simulate a failing disk.
var writeRows = WriteCSV

var csvHeader = []string{"name", "x", "y", "z", "vx", "vy", "vz", "mass", "charge"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SnapshotMetadata struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Timestamp     time.Time     `json:"timestamp"`
	Count         int           `json:"count"`
	TotalMass     Float         `json:"total_mass"`
	TotalCharge   Float         `json:"total_charge"`
	KineticEnergy Float         `json:"kinetic_energy"`
	Momentum      vector.Vector `json:"momentum"`
}

// validID rejects anything that would resolve outside the store.
func validID(id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// Save writes set under a new snapshot directory holding metadata.json and
// particles.csv, and returns the snapshot id. A failed save leaves nothing
// behind.
func (s *Store) Save(name string, set particle.Set) (id string, err error) {
	if err := validID(name); err != nil {
		return "", err
	}

	now := time.Now()
	id = fmt.Sprintf("%s_%d", name, now.UnixNano())
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(dir)
		}
	}()

	meta := SnapshotMetadata{
		ID:            id,
		Name:          name,
		Timestamp:     now,
		Count:         len(set),
		TotalMass:     Float(set.TotalMass()),
		TotalCharge:   Float(set.TotalCharge()),
		KineticEnergy: Float(set.KineticEnergy()),
		Momentum:      set.Momentum(),
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, "particles.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := writeRows(csvFile, set); err != nil {
		return "", err
	}

	return id, nil
}

// List returns the metadata of every readable snapshot, oldest first.
func (s *Store) List() ([]SnapshotMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SnapshotMetadata{}, nil
		}
		return nil, err
	}

	snaps := make([]SnapshotMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		snaps = append(snaps, *meta)
	}

	slices.SortStableFunc(snaps, func(a, b SnapshotMetadata) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return snaps, nil
}

func (s *Store) Load(id string) (*SnapshotMetadata, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta SnapshotMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadParticles reads the particles of snapshot id in their saved order.
func (s *Store) LoadParticles(id string) (particle.Set, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	file, err := os.Open(filepath.Join(s.baseDir, id, "particles.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(csvHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if len(records) == 0 {
		return particle.Set{}, nil
	}

	set := make(particle.Set, 0, len(records)-1)
	for i, record := range records[1:] {
		var f [8]float64
		for j := range f {
			f[j], err = strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, column %s: %v", ErrCorrupt, i+1, csvHeader[j+1], err)
			}
		}
		set = append(set, particle.New(record[0],
			vector.New(f[0], f[1], f[2]),
			vector.New(f[3], f[4], f[5]),
			f[6], f[7],
		))
	}

	return set, nil
}

// Delete removes snapshot id.
func (s *Store) Delete(id string) error {
	if err := validID(id); err != nil {
		return err
	}
	dir := filepath.Join(s.baseDir, id)
	if _, err := os.Stat(dir); err != nil {
		return err
	}
	return os.RemoveAll(dir)
}
