package recordio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/davidvella/skipheap/task"
)

var (
	Uint64Size = int64(binary.Size(uint64(0)))
	Int64Size  = int64(binary.Size(int64(0)))
	// MagicBytes identify valid task record streams (TSK).
	MagicBytes           = []byte{0x54, 0x53, 0x4B}
	ErrInvalidMagicBytes = errors.New("recordio: invalid magic bytes - not a valid task record stream")
	ErrUnknownOp         = errors.New("recordio: unknown record op")
)

// Op identifies what a record does to the task it names.
type Op int64

const (
	// OpSet stores or replaces the named task.
	OpSet Op = iota + 1
	// OpDelete removes the named task. Only the task name is meaningful.
	OpDelete
)

// Record is a single entry in a task record stream.
type Record struct {
	Op   Op
	Task task.Task
}

// BinaryWriter handles writing binary fields with error handling.
type BinaryWriter struct {
	w io.Writer
}

func NewBinaryWriter(w io.Writer) BinaryWriter {
	return BinaryWriter{w: w}
}

func (bw BinaryWriter) WriteString(s string) (int64, error) {
	if err := binary.Write(bw.w, binary.LittleEndian, uint64(len(s))); err != nil {
		return 0, fmt.Errorf("error writing string length: %w", err)
	}

	n, err := bw.w.Write([]byte(s))
	if err != nil {
		return Uint64Size, fmt.Errorf("error writing string content: %w", err)
	}

	return Uint64Size + int64(n), nil
}

func (bw BinaryWriter) WriteInt64(i int64) (int64, error) {
	err := binary.Write(bw.w, binary.LittleEndian, i)
	if err != nil {
		return 0, err
	}
	return Int64Size, nil
}

// BinaryReader handles reading binary fields with error handling.
type BinaryReader struct {
	r io.Reader
}

func NewBinaryReader(r io.Reader) BinaryReader {
	return BinaryReader{r: r}
}

func (br BinaryReader) ReadString() (string, error) {
	var length uint64
	if err := binary.Read(br.r, binary.LittleEndian, &length); err != nil {
		return "", fmt.Errorf("error reading string length: %w", err)
	}

	b := make([]byte, length)
	if _, err := io.ReadFull(br.r, b); err != nil {
		return "", fmt.Errorf("error reading string content: %w", err)
	}
	return string(b), nil
}

func (br BinaryReader) ReadInt64() (int64, error) {
	var value int64
	err := binary.Read(br.r, binary.LittleEndian, &value)
	return value, err
}

// Write writes a single record to the writer.
func Write(w io.Writer, rec Record) (int64, error) {
	var (
		totalBytes int64
		n          int64
	)

	mn, err := w.Write(MagicBytes)
	if err != nil {
		return int64(mn), fmt.Errorf("failed to write magic bytes: %w", err)
	}
	totalBytes += int64(mn)

	bw := NewBinaryWriter(w)

	n, err = bw.WriteInt64(int64(rec.Op))
	if err != nil {
		return totalBytes, fmt.Errorf("error writing op: %w", err)
	}
	totalBytes += n

	n, err = bw.WriteString(rec.Task.Name)
	if err != nil {
		return totalBytes, fmt.Errorf("error writing name: %w", err)
	}
	totalBytes += n

	n, err = bw.WriteInt64(int64(rec.Task.Priority))
	if err != nil {
		return totalBytes, fmt.Errorf("error writing priority: %w", err)
	}
	totalBytes += n

	n, err = bw.WriteInt64(rec.Task.Due.UnixNano())
	if err != nil {
		return totalBytes, fmt.Errorf("error writing due date: %w", err)
	}
	totalBytes += n

	n, err = bw.WriteString(rec.Task.Due.Location().String())
	if err != nil {
		return totalBytes, fmt.Errorf("error writing timezone: %w", err)
	}
	totalBytes += n

	n, err = bw.WriteString(string(rec.Task.Status))
	if err != nil {
		return totalBytes, fmt.Errorf("error writing status: %w", err)
	}
	totalBytes += n

	return totalBytes, nil
}

// ReadRecord reads a single record from the reader.
func ReadRecord(r io.Reader) (Record, error) {
	magicBytes := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(r, magicBytes); err != nil {
		return Record{}, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if !bytes.Equal(magicBytes, MagicBytes) {
		return Record{}, ErrInvalidMagicBytes
	}

	br := NewBinaryReader(r)

	op, err := br.ReadInt64()
	if err != nil {
		return Record{}, fmt.Errorf("error reading op: %w", err)
	}
	if Op(op) != OpSet && Op(op) != OpDelete {
		return Record{}, ErrUnknownOp
	}

	name, err := br.ReadString()
	if err != nil {
		return Record{}, fmt.Errorf("error reading name: %w", err)
	}

	priority, err := br.ReadInt64()
	if err != nil {
		return Record{}, fmt.Errorf("error reading priority: %w", err)
	}

	unixNano, err := br.ReadInt64()
	if err != nil {
		return Record{}, fmt.Errorf("error reading due date: %w", err)
	}

	timezone, err := br.ReadString()
	if err != nil {
		return Record{}, fmt.Errorf("error reading timezone: %w", err)
	}

	//nolint:errcheck // Can't set an invalid timezone
	loc, _ := time.LoadLocation(timezone)

	status, err := br.ReadString()
	if err != nil {
		return Record{}, fmt.Errorf("error reading status: %w", err)
	}

	return Record{
		Op: Op(op),
		Task: task.Task{
			Name:     name,
			Priority: int(priority),
			Due:      time.Unix(0, unixNano).In(loc),
			Status:   task.Status(status),
		},
	}, nil
}

// Seq creates an iterator over records. Iteration stops at the first read
// error, including a clean EOF.
func Seq(r io.Reader) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for {
			rec, err := ReadRecord(r)
			if err != nil {
				return
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// ReadRecords reads all records into a slice.
func ReadRecords(r io.Reader) []Record {
	records := make([]Record, 0, 1)
	for rec := range Seq(r) {
		records = append(records, rec)
	}
	return records
}

// Size calculates the total size in bytes that a record will occupy when
// written, including magic bytes and length prefixes.
func Size(rec Record) int64 {
	var totalSize int64

	totalSize += int64(len(MagicBytes))

	// Op: int64
	totalSize += Int64Size

	// Name field: length prefix + content
	totalSize += Uint64Size + int64(len(rec.Task.Name))

	// Priority: int64
	totalSize += Int64Size

	// Due date: int64 for UnixNano
	totalSize += Int64Size

	// Timezone: length prefix + content
	timezone := rec.Task.Due.Location().String()
	totalSize += Uint64Size + int64(len(timezone))

	// Status field: length prefix + content
	totalSize += Uint64Size + int64(len(rec.Task.Status))

	return totalSize
}
