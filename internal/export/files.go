package export

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gorewood/quill/internal/journal"
	"github.com/gorewood/quill/internal/logger"
	"github.com/gorewood/quill/internal/output"
)

// File extensions per export format.
const (
	ExtJSON     = ".json"
	ExtMarkdown = ".md"
	ExtDocument = ".doc.json"
)

// WriteOptions controls how export files are written.
type WriteOptions struct {
	// Force overwrites existing files instead of failing with a conflict.
	Force bool
}

// encodeFunc produces the file content for one entry.
type encodeFunc func(entry *journal.Entry) ([]byte, error)

// writeEntryFiles writes one file per entry into dir, creating dir if needed.
// Returns the written paths in entry order.
func writeEntryFiles(entries []*journal.Entry, dir, ext string, opts WriteOptions, encode encodeFunc) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to create output directory "+dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		data, err := encode(entry)
		if err != nil {
			return paths, output.NewSystemErrorWithCause("failed to encode entry "+entry.Date.String(), err)
		}

		path := filepath.Join(dir, entry.FileName(ext))
		if err := writeFile(path, data, opts.Force); err != nil {
			return paths, err
		}
		logger.Debug("exported entry", "date", entry.Date.String(), "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}

// writeFile writes data with mode 0600. Without force an existing file is a
// conflict error.
func writeFile(path string, data []byte, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	file, err := os.OpenFile(path, flags, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return output.NewConflictError(fmt.Sprintf("%s already exists (use --force to overwrite)", path))
		}
		return output.NewSystemErrorWithCause("failed to create file "+path, err)
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return output.NewSystemErrorWithCause("failed to write file "+path, err)
	}
	if err := file.Close(); err != nil {
		return output.NewSystemErrorWithCause("failed to close file "+path, err)
	}
	return nil
}
