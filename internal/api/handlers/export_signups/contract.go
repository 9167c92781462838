package export_signups

import (
	"context"
	"time"
)

type SignupsService interface {
	ExportCSV(ctx context.Context, start, end *time.Time) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
