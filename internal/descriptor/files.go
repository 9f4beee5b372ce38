package descriptor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomgen/internal/telemetry"
	"github.com/samdwyer/roomgen/internal/world"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// RunDirName returns the output directory name for a process: <prefix>.rooms.<pid>.
func RunDirName(prefix string, pid int) string {
	return fmt.Sprintf("%s.rooms.%d", prefix, pid)
}

// CreateRunDir creates a fresh directory under parent named for this process.
// It fails if the directory already exists.
func CreateRunDir(parent, prefix string) (string, error) {
	dir := filepath.Join(parent, RunDirName(prefix, os.Getpid()))
	if err := os.Mkdir(dir, dirPerm); err != nil {
		return "", fmt.Errorf("create run directory: %w", err)
	}
	return dir, nil
}

// WriteRoom writes one room's descriptor into dir and returns the file path.
func WriteRoom(dir string, room Room) (string, error) {
	path := filepath.Join(dir, FileName(room.Name()))
	if err := os.WriteFile(path, []byte(Render(room)), filePerm); err != nil {
		return "", fmt.Errorf("write room %s: %w", room.Name(), err)
	}
	return path, nil
}

// WriteLayout writes a descriptor for every room in layout order and returns
// the paths written. It stops at the first failure.
func WriteLayout(ctx context.Context, dir string, layout *world.Layout) ([]string, error) {
	_, span := telemetry.Tracer("descriptor").Start(ctx, "descriptor.write")
	defer span.End()

	paths := make([]string, 0, len(layout.Rooms))
	for _, room := range layout.Rooms {
		path, err := WriteRoom(dir, room)
		if err != nil {
			span.RecordError(err)
			return paths, err
		}
		paths = append(paths, path)
	}

	span.SetAttributes(
		attribute.String("descriptor.dir", dir),
		attribute.Int("descriptor.files", len(paths)),
	)
	return paths, nil
}
