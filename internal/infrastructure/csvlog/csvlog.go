package csvlog

import (
	"context"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"quotelog/internal/application"
	"quotelog/internal/domain"
)

// Ensure Log implements application.RecordSink.
var _ application.RecordSink = (*Log)(nil)

// Log appends records to a CSV file, writing the header first when the file
// is new or empty. The file is opened and closed on every append so no
// handle stays open across the sleep between cycles.
type Log struct {
	Path string
}

func New(path string) *Log { return &Log{Path: path} }

func (l *Log) Append(_ context.Context, rec domain.Record) error {
	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("csvlog: open %s: %w", l.Path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("csvlog: stat %s: %w", l.Path, err)
	}

	rows := []domain.Record{rec}
	if info.Size() == 0 {
		err = gocsv.Marshal(&rows, f)
	} else {
		err = gocsv.MarshalWithoutHeaders(&rows, f)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("csvlog: write %s: %w", l.Path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("csvlog: close %s: %w", l.Path, err)
	}
	return nil
}
