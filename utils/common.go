// Common package contains functions shared by several tools.
// Exporting these functions from the Common package reduces redundant code
package common

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// gzipReadCloser closes both the gzip stream and the underlying file.
type gzipReadCloser struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipReadCloser) Close() error {
	gzErr := g.Reader.Close()
	if err := g.file.Close(); err != nil {
		return err
	}
	return gzErr
}

// OpenMaybeGzip opens a plain or gzip-compressed file. Compression is detected
// from the 0x1F 0x8B magic bytes rather than the file extension.
// The caller owns the returned ReadCloser.
func OpenMaybeGzip(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	buf := make([]byte, 2)
	n, _ := io.ReadFull(f, buf)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rewind %s: %w", path, err)
	}
	if n == 2 && buf[0] == 0x1F && buf[1] == 0x8B {
		gr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		return &gzipReadCloser{Reader: gr, file: f}, nil
	}
	return f, nil
}

// FastaHandler is called once per FASTA record.
type FastaHandler func(id string, seq string) error

// StreamFasta is a memory-efficient reader for protein FASTA files of any size.
// It automatically detects and decompresses Gzipped files and calls handler
// for each record. Sequence lines are concatenated with surrounding whitespace
// removed; the residues themselves are passed through untouched.
// Records without residues are skipped.
func StreamFasta(file string, handler FastaHandler) error {
	rc, err := OpenMaybeGzip(file)
	if err != nil {
		return err
	}
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024) // long single-line sequences

	var currentID string
	var buffer []byte

	flush := func() error {
		if currentID == "" || len(buffer) == 0 {
			return nil
		}
		if err := handler(currentID, string(buffer)); err != nil {
			return fmt.Errorf("handler error (%s): %w", currentID, err)
		}
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return err
			}
			fields := strings.Fields(strings.TrimPrefix(line, ">"))
			if len(fields) > 0 {
				currentID = fields[0]
			} else {
				currentID = "unnamed"
			}
			buffer = buffer[:0]
		} else {
			buffer = append(buffer, line...)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return flush()
}
