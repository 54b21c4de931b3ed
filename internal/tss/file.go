package tss

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
)

// Stdout is the output path that sends BED rows to os.Stdout
const Stdout = "-"

// ConvertFile converts the GTF at in to a BED file at out.
//
// The input is opened before anything is created, so a missing GTF leaves
// no output behind. Rows are written to a temporary file next to out that
// replaces out only once the whole GTF has been read. If out is a symlink
// the file it points to is replaced, and an existing file keeps its mode.
func ConvertFile(in, out string) (Summary, error) {
	gtfFile, err := os.Open(in)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to open GTF: %w", err)
	}
	defer gtfFile.Close()

	if out == Stdout {
		sum, err := Convert(gtfFile, os.Stdout)
		if isBrokenPipe(err) {
			return sum, nil // downstream (head, less) stopped reading
		}
		return sum, err
	}

	out, err = resolveLinks(out)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to resolve BED output: %w", err)
	}

	tmpPath := filepath.Join(filepath.Dir(out), fmt.Sprintf(".%s.%s.tmp", filepath.Base(out), uuid.New()))
	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create BED output: %w", err)
	}
	if info, statErr := os.Stat(out); statErr == nil {
		if err = tmp.Chmod(info.Mode().Perm()); err != nil {
			tmp.Close()
			os.Remove(tmpPath)
			return Summary{}, fmt.Errorf("failed to create BED output: %w", err)
		}
	}

	sum, err := Convert(gtfFile, tmp)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return sum, err
	}

	if err = os.Rename(tmpPath, out); err != nil {
		os.Remove(tmpPath)
		return sum, fmt.Errorf("failed to write BED output: %w", err)
	}
	return sum, nil
}

// maxLinks bounds symlink chains, as the kernel's ELOOP limit does
const maxLinks = 40

// resolveLinks follows symlinks at path to the file they name, which need
// not exist yet.
func resolveLinks(path string) (string, error) {
	for i := 0; i < maxLinks; i++ {
		info, err := os.Lstat(path)
		if errors.Is(err, fs.ErrNotExist) || (err == nil && info.Mode()&os.ModeSymlink == 0) {
			return path, nil
		}
		if err != nil {
			return "", err
		}

		target, err := os.Readlink(path)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
		path = target
	}
	return "", &os.PathError{Op: "readlink", Path: path, Err: syscall.ELOOP}
}

// isBrokenPipe reports whether err came from writing to a closed pipe.
func isBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
