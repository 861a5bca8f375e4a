package tasklog

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/davidvella/skipheap/recordio"
	"github.com/google/btree"
)

var (
	ErrInvalidMaxRecords = errors.New("maxRecords must be greater than 0")
	ErrLogClosed         = errors.New("task log is closed")
)

// Writer appends task records to a segmented log. Records accumulate in an
// in-memory segment ordered by task name, so a segment holds at most one
// record per name; the segment is flushed as one length-prefixed block once
// it reaches maxRecords, or on Flush/Close.
type Writer struct {
	writer         recordio.BinaryWriter
	currentOffset  atomic.Int64
	currentSegment atomic.Pointer[segment]
	maxRecords     int
	closed         atomic.Bool
	wc             io.WriteCloser
	mu             sync.Mutex
}

type segment struct {
	records *btree.BTreeG[recordio.Record]
	offset  int64
	length  int64
	flushed bool
}

func byName(a, b recordio.Record) bool {
	return a.Task.Name < b.Task.Name
}

func NewWriter(wc io.WriteCloser, maxRecords int) (*Writer, error) {
	if maxRecords <= 0 {
		return nil, ErrInvalidMaxRecords
	}

	w := &Writer{
		writer:     recordio.NewBinaryWriter(wc),
		maxRecords: maxRecords,
		wc:         wc,
	}

	w.newSegment()

	return w, nil
}

func (w *Writer) newSegment() {
	seg := &segment{
		records: btree.NewG[recordio.Record](2, byName),
	}
	w.currentSegment.Store(seg)
}

// Append adds a record to the current segment. A record for a name already
// present in the segment replaces the earlier one.
func (w *Writer) Append(rec recordio.Record) error {
	if w.closed.Load() {
		return ErrLogClosed
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	seg := w.currentSegment.Load()
	seg.records.ReplaceOrInsert(rec)

	if seg.records.Len() >= w.maxRecords {
		if err := w.flushSegment(seg.records); err != nil {
			return err
		}
		w.newSegment()
	}

	return nil
}

// Flush writes out the current segment even if it is below maxRecords.
func (w *Writer) Flush() error {
	if w.closed.Load() {
		return ErrLogClosed
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	seg := w.currentSegment.Load()
	if seg.records.Len() == 0 {
		return nil
	}

	if err := w.flushSegment(seg.records); err != nil {
		return err
	}
	w.newSegment()

	return nil
}

func (w *Writer) flushSegment(s *btree.BTreeG[recordio.Record]) error {
	var totalSize = recordio.Int64Size

	s.Ascend(func(rec recordio.Record) bool {
		totalSize += recordio.Size(rec)
		return true
	})

	if _, err := w.writer.WriteInt64(totalSize); err != nil {
		return err
	}

	var writeErr error
	s.Ascend(func(rec recordio.Record) bool {
		if _, err := recordio.Write(w.wc, rec); err != nil {
			writeErr = err
			return false
		}
		return true
	})

	if writeErr != nil {
		return writeErr
	}

	w.currentOffset.Add(totalSize)
	return nil
}

func (w *Writer) Close() error {
	if w.closed.Swap(true) {
		return ErrLogClosed
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	seg := w.currentSegment.Load()
	if seg.records.Len() > 0 {
		if err := w.flushSegment(seg.records); err != nil {
			return err
		}
	}

	return w.wc.Close()
}
