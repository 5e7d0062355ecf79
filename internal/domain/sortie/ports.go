package sortie

import "context"

// LogRepository persists sortie launch records
type LogRepository interface {
	Add(ctx context.Context, l *Log) error
}
