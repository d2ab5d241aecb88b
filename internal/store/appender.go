package store

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// FileMode is used when an output file does not exist yet
const FileMode os.FileMode = 0644

// Appender appends payloads to files on an afero filesystem
type Appender struct {
	fs afero.Fs
}

// NewAppender creates an appender backed by fs
func NewAppender(fs afero.Fs) *Appender {
	return &Appender{fs: fs}
}

// Append opens name in append-create mode, writes payload as-is and closes the file.
// Nothing already written is rolled back on failure.
func (a *Appender) Append(name, payload string) (err error) {
	f, err := a.fs.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, FileMode)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", name, cerr)
		}
	}()

	if _, err := f.WriteString(payload); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	return nil
}
