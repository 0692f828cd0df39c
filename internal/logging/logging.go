package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-board/internal/config"
)

// New builds the logger shared by the commands. Output always goes to
// stderr; stdout is reserved for rendered boards.
func New() (*logrus.Logger, error) {
	return NewWithOutput(os.Stderr)
}

func NewWithOutput(w io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(w)

	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if path, ok := config.LogFile(); ok {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to open log file %s: %w", path, err)
		}
		log.AddHook(hook)
	}

	return log, nil
}
