package logging

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// New builds a logrus FieldLogger writing to out at the given level, with
// the supplied fields attached to every entry.
func New(out io.Writer, levelStr string, fields log.Fields) (log.FieldLogger, error) {
	level, err := log.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelStr, err)
	}

	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "01-02-2006 15:04:05",
	})
	return logger.WithFields(fields), nil
}
