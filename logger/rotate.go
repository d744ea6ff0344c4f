package logger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// MaxBackups is the number of rotated files kept next to the active log.
const MaxBackups = 5

// BackupName returns the n-th backup for path: "log.txt" -> "log.<n>.txt".
func BackupName(path string, n int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s.%d%s", strings.TrimSuffix(path, ext), n, ext)
}

// Rotate shifts the backup chain and moves the active log file to ".1",
// regardless of its size.
func (l *Logger) Rotate() error {
	path, err := l.logPath()
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return rotateFile(path)
}

// logPath resolves the configured log file, defaulting an empty value and
// expanding a leading "~".
func (l *Logger) logPath() (string, error) {
	path := l.cfg.LogFile
	if path == "" {
		path = DefaultLogFile
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", &FilesystemError{Op: "expand", Path: path, Err: err}
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Clean(path), nil
}

// appendLine rotates when due and then appends line. Callers hold l.mu.
func (l *Logger) appendLine(line string) error {
	path, err := l.logPath()
	if err != nil {
		return err
	}
	if l.cfg.LogRotation {
		size, err := fileSize(path)
		if err != nil {
			return err
		}
		if size >= l.cfg.LogRotationSize {
			if err := rotateFile(path); err != nil {
				return err
			}
		}
	}
	return appendFile(path, line)
}

// fileSize returns 0 for a missing file.
func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, &FilesystemError{Op: "stat", Path: path, Err: err}
	}
	return info.Size(), nil
}

// rotateFile drops ".5", shifts ".4".."1" up by one and renames the active
// file to ".1". A missing active file is left alone.
func rotateFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &FilesystemError{Op: "stat", Path: path, Err: err}
	}

	oldest := BackupName(path, MaxBackups)
	if err := os.Remove(oldest); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &FilesystemError{Op: "remove", Path: oldest, Err: err}
	}
	for i := MaxBackups - 1; i >= 1; i-- {
		src := BackupName(path, i)
		if err := os.Rename(src, BackupName(path, i+1)); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return &FilesystemError{Op: "rotate", Path: src, Err: err}
		}
	}
	if err := os.Rename(path, BackupName(path, 1)); err != nil {
		return &FilesystemError{Op: "rotate", Path: path, Err: err}
	}
	return nil
}

// appendFile opens path for append, writes line and a newline, and always
// closes the handle.
func appendFile(path, line string) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &FilesystemError{Op: "mkdir", Path: dir, Err: err}
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return &FilesystemError{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, &FilesystemError{Op: "close", Path: path, Err: cerr})
		}
	}()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return &FilesystemError{Op: "write", Path: path, Err: err}
	}
	return nil
}
