package report

import (
	"context"
	"encoding/json"

	"gopkg.in/natefinch/lumberjack.v2"
)

// JSONWriter appends run reports to a file in JSON format. Output files
// are compressed and rotated by size, so a report file can stay
// configured on a build machine indefinitely.
type JSONWriter struct {
	ctx context.Context
	lw  *lumberjack.Logger
}

func NewJSONWriter(ctx context.Context, fname string) (*JSONWriter, error) {
	jw := &JSONWriter{
		ctx: ctx,
		lw:  &lumberjack.Logger{Filename: fname, Compress: true},
	}
	go jw.watchCtx()
	return jw, nil
}

func (jw *JSONWriter) Write(report RunReport) error {
	if jw.ctx.Err() != nil {
		return jw.ctx.Err()
	}
	return json.NewEncoder(jw.lw).Encode(report)
}

func (jw *JSONWriter) watchCtx() {
	<-jw.ctx.Done()
	jw.lw.Close()
}
