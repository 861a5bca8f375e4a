package tasklog

import (
	"errors"
	"io"
	"iter"

	"github.com/davidvella/skipheap/recordio"
	"github.com/google/btree"
)

// Reader replays a segmented task log. Segments are applied in file order,
// so a record for a name seen in a later segment wins over any earlier one,
// and a delete record drops the name entirely.
type Reader struct {
	r        io.ReaderAt
	segments []*segment
}

func NewReader(r io.ReaderAt) *Reader {
	return &Reader{
		r: r,
	}
}

// All returns the records that survive replaying every segment, in ascending
// task name order. Delete records are consumed during replay and never
// yielded.
func (r *Reader) All() iter.Seq[recordio.Record] {
	err := r.readExistingSegments()
	if err != nil {
		return func(func(recordio.Record) bool) {}
	}

	live := btree.NewG[recordio.Record](2, byName)

	for _, seg := range r.segments {
		records := io.NewSectionReader(r.r, seg.offset+recordio.Int64Size, seg.length-recordio.Int64Size)
		for rec := range recordio.Seq(records) {
			switch rec.Op {
			case recordio.OpSet:
				live.ReplaceOrInsert(rec)
			case recordio.OpDelete:
				live.Delete(rec)
			}
		}
	}

	return func(yield func(recordio.Record) bool) {
		live.Ascend(func(rec recordio.Record) bool {
			return yield(rec)
		})
	}
}

func (r *Reader) readExistingSegments() error {
	r.segments = nil
	offset := int64(0)
	for {
		header := io.NewSectionReader(r.r, offset, recordio.Int64Size)
		seg, err := readSegment(header, offset)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		r.segments = append(r.segments, seg)
		offset += seg.length
	}
	return nil
}

func readSegment(r io.Reader, offset int64) (*segment, error) {
	br := recordio.NewBinaryReader(r)
	l, err := br.ReadInt64()
	if err != nil {
		return nil, err
	}

	return &segment{
		offset:  offset,
		length:  l,
		flushed: true,
	}, nil
}
