package renderer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// File is one generated site file, named relative to the output directory.
type File struct {
	Name string
	Data []byte
}

// WriteSite writes files into outDir, creating it as needed, and returns
// the written paths. Names must stay inside outDir.
func WriteSite(outDir string, files ...File) (paths []string, err error) {
	err = os.MkdirAll(outDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outDir)
		return paths, err
	}

	for _, f := range files {
		name := filepath.Clean(f.Name)
		if filepath.IsAbs(name) || name == "." || strings.HasPrefix(name, "..") {
			err = errors.Errorf("invalid site file name: %s", f.Name)
			return paths, err
		}

		path := filepath.Join(outDir, name)
		err = os.MkdirAll(filepath.Dir(path), 0750)
		if err != nil {
			err = errors.Wrapf(err, "failed to create directory for %s", path)
			return paths, err
		}

		//nolint:gosec // Site files are served publicly
		err = os.WriteFile(path, f.Data, 0644)
		if err != nil {
			err = errors.Wrapf(err, "failed to write site file: %s", path)
			return paths, err
		}

		paths = append(paths, path)
	}

	return paths, err
}
