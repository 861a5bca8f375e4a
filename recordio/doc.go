// Package recordio implements a binary record format for storing and
// retrieving task-log records. Each record carries an op code (set or
// delete) and the task it names, serialized with magic bytes for format
// validation and length-prefixed fields for reliable parsing.
//
// Basic usage:
//
//	rec := recordio.Record{
//	    Op: recordio.OpSet,
//	    Task: task.Task{
//	        Name:     "file taxes",
//	        Priority: 2,
//	        Due:      time.Now(),
//	        Status:   task.StatusIncomplete,
//	    },
//	}
//
//	var buf bytes.Buffer
//	n, err := recordio.Write(&buf, rec)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Reading records back
//	for rec := range recordio.Seq(&buf) {
//	    fmt.Printf("Read record: %s\n", rec.Task.Name)
//	}
//
//	// Calculate record size
//	size := recordio.Size(rec)
package recordio
