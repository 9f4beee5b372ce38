package descriptor

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/roomgen/internal/world"
)

// Manifest is a YAML summary of a whole run.
type Manifest struct {
	RunID     string         `yaml:"run_id"`
	Seed      int64          `yaml:"seed"`
	Directory string         `yaml:"directory"`
	Edges     int            `yaml:"edges"`
	Rooms     []ManifestRoom `yaml:"rooms"`
}

// ManifestRoom is one room entry in a Manifest.
type ManifestRoom struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	File        string   `yaml:"file"`
	Connections []string `yaml:"connections"`
}

// NewManifest summarizes a generated layout.
func NewManifest(runID string, seed int64, dir string, layout *world.Layout) Manifest {
	m := Manifest{
		RunID:     runID,
		Seed:      seed,
		Directory: dir,
		Edges:     layout.Stats().Edges,
		Rooms:     make([]ManifestRoom, 0, len(layout.Rooms)),
	}
	for _, room := range layout.Rooms {
		m.Rooms = append(m.Rooms, ManifestRoom{
			Name:        room.Name(),
			Type:        room.Label(),
			File:        FileName(room.Name()),
			Connections: room.ConnectionNames(),
		})
	}
	return m
}

// Export encodes the manifest as YAML.
func (m Manifest) Export(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(&m); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return nil
}

// WriteManifest exports the manifest to a file at path.
func WriteManifest(path string, m Manifest) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("open manifest: %w", err)
	}
	if err := m.Export(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ParseManifest decodes a manifest previously written by Export.
func ParseManifest(r io.Reader) (Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return m, nil
}
