// Package tasklog implements a segmented append-only log for task records.
//
// The log records every mutation to a task set as a set or delete record.
// Records accumulate in an in-memory segment held in a btree ordered by task
// name, so a segment carries at most one record per name; when the segment
// reaches its configured maximum it is flushed to the underlying writer as a
// single length-prefixed block. Replaying the segments in file order
// reconstructs the final task set: the last record for a name wins, and a
// delete record drops the name.
//
// Basic usage:
//
//	file, err := os.Create("tasks.log")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create a writer with segments of up to 1000 records
//	writer, err := tasklog.NewWriter(file, 1000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = writer.Append(recordio.Record{Op: recordio.OpSet, Task: myTask})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = writer.Close()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Replay the surviving records
//	file, err = os.Open("tasks.log")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reader := tasklog.NewReader(file)
//	for rec := range reader.All() {
//	    // Process rec.Task
//	}
//
// File format:
// Each segment consists of:
//   - Segment header: total size of the segment (8 bytes)
//   - Records: series of variable-length recordio records
package tasklog
