package expense

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// EncodeRecord writes a single record to w, followed by a newline.
func EncodeRecord(w io.Writer, r Record) error {
	if _, err := io.WriteString(w, r.Encode()+"\n"); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// EncodeLedger writes all the records of the ledger to w, one per line, in
// ledger order. The savings target is not persisted.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, r := range l.records {
		if err := EncodeRecord(w, r); err != nil {
			return err
		}
	}
	return nil
}

// DecodeRecords reads records from r, one per line. Blank lines are skipped.
//
// The first line that cannot be decoded stops the decoding and is reported
// as a *FormatError.
func DecodeRecords(r io.Reader, mode DateMode) ([]Record, error) {
	records := make([]Record, 0)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue // Skip empty lines
		}
		rec, err := DecodeRecord(text, mode)
		if err != nil {
			var ferr *FormatError
			if errors.As(err, &ferr) {
				ferr.Line = line
			}
			return nil, err
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return records, nil
}

// SaveFile writes the ledger to path, replacing any previous content.
//
// On failure the file may be partially written; the ledger is never changed.
func SaveFile(path string, l *Ledger) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return ioError("open", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioError("close", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := EncodeLedger(w, l); err != nil {
		return ioError("write", path, err)
	}
	if err := w.Flush(); err != nil {
		return ioError("write", path, err)
	}
	return nil
}

// ReadFile decodes all the records stored in path.
func ReadFile(path string, mode DateMode) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("open", path, err)
	}
	defer f.Close()

	records, err := DecodeRecords(f, mode)
	if err != nil {
		var ferr *FormatError
		if errors.As(err, &ferr) {
			return nil, err
		}
		return nil, ioError("read", path, err)
	}
	return records, nil
}

// LoadFile replaces the records of the ledger with the ones stored in path,
// and returns them.
//
// The file is fully decoded before the ledger is touched: on any error the
// ledger keeps its previous records.
func (l *Ledger) LoadFile(path string, mode DateMode) ([]Record, error) {
	records, err := ReadFile(path, mode)
	if err != nil {
		return nil, err
	}
	l.Replace(records)
	return records, nil
}

// AppendFile appends records at the end of the file in path, creating it if
// it does not exist.
//
// A last line with no line break, as left by some editors, is terminated
// first so that it is not merged with the first appended record.
func AppendFile(path string, records ...Record) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return ioError("open", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioError("close", path, cerr)
		}
	}()

	unterminated, err := missingFinalNewline(f)
	if err != nil {
		return ioError("read", path, err)
	}
	if unterminated {
		if _, err := io.WriteString(f, "\n"); err != nil {
			return ioError("write", path, err)
		}
	}

	for _, r := range records {
		if err := EncodeRecord(f, r); err != nil {
			return ioError("write", path, err)
		}
	}
	return nil
}

// missingFinalNewline reports whether f is not empty and does not end with a
// line break.
func missingFinalNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] != '\n', nil
}

// ioError builds an *IOError, dropping the *fs.PathError wrapper as the
// path is already known.
func ioError(op, path string, err error) *IOError {
	var perr *fs.PathError
	if errors.As(err, &perr) {
		err = perr.Err
	}
	return &IOError{Op: op, Path: path, Err: err}
}
