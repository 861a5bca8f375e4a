package recordio_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/davidvella/skipheap/recordio"
	"github.com/davidvella/skipheap/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRead(t *testing.T) {
	tests := []struct {
		name string
		rec  recordio.Record
	}{
		{
			name: "set record",
			rec: recordio.Record{
				Op: recordio.OpSet,
				Task: task.Task{
					Name:     "file taxes",
					Priority: 2,
					Due:      time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
					Status:   task.StatusIncomplete,
				},
			},
		},
		{
			name: "delete record carries only the name",
			rec: recordio.Record{
				Op:   recordio.OpDelete,
				Task: task.Task{Name: "stale", Due: time.Unix(0, 0).UTC()},
			},
		},
		{
			name: "empty fields",
			rec: recordio.Record{
				Op:   recordio.OpSet,
				Task: task.Task{Due: time.Unix(0, 0).UTC()},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			n, err := recordio.Write(&buf, tt.rec)
			require.NoError(t, err)
			assert.Equal(t, recordio.Size(tt.rec), n, "Size must match bytes written")
			assert.Equal(t, int64(buf.Len()), n)

			got, err := recordio.ReadRecord(&buf)
			require.NoError(t, err)
			assert.Equal(t, tt.rec.Op, got.Op)
			assert.Equal(t, tt.rec.Task.Name, got.Task.Name)
			assert.Equal(t, tt.rec.Task.Priority, got.Task.Priority)
			assert.Equal(t, tt.rec.Task.Status, got.Task.Status)
			assert.True(t, tt.rec.Task.Due.Equal(got.Task.Due))
		})
	}
}

func TestReadRecord_InvalidMagic(t *testing.T) {
	buf := bytes.NewBufferString("not a record stream")

	_, err := recordio.ReadRecord(buf)
	assert.ErrorIs(t, err, recordio.ErrInvalidMagicBytes)
}

func TestReadRecord_UnknownOp(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(recordio.MagicBytes)
	bw := recordio.NewBinaryWriter(&buf)
	_, err := bw.WriteInt64(99)
	require.NoError(t, err)

	_, err = recordio.ReadRecord(&buf)
	assert.ErrorIs(t, err, recordio.ErrUnknownOp)
}

func TestSeq(t *testing.T) {
	var buf bytes.Buffer
	want := []string{"a", "b", "c"}
	for i, name := range want {
		_, err := recordio.Write(&buf, recordio.Record{
			Op:   recordio.OpSet,
			Task: task.Task{Name: name, Priority: i, Due: time.Unix(0, 0).UTC()},
		})
		require.NoError(t, err)
	}

	var got []string
	for rec := range recordio.Seq(&buf) {
		got = append(got, rec.Task.Name)
	}
	assert.Equal(t, want, got)
}

func TestSeq_StopsOnCorruptTail(t *testing.T) {
	var buf bytes.Buffer
	_, err := recordio.Write(&buf, recordio.Record{
		Op:   recordio.OpSet,
		Task: task.Task{Name: "good", Due: time.Unix(0, 0).UTC()},
	})
	require.NoError(t, err)
	buf.WriteString("garbage")

	records := recordio.ReadRecords(&buf)
	require.Len(t, records, 1)
	assert.Equal(t, "good", records[0].Task.Name)
}
