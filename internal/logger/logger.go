package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"roomcrawl/internal/config"

	"github.com/sirupsen/logrus"
)

// New builds a logger from cfg. LOG_LEVEL and LOG_FORMAT override the
// configured values. Output goes to cfg.File when set, otherwise to out.
// The returned closer releases the log file and is never nil.
func New(cfg config.LogConfig, out io.Writer) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()

	levelName := cfg.Level
	if env, ok := os.LookupEnv("LOG_LEVEL"); ok {
		levelName = env
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	format := cfg.Format
	if env, ok := os.LookupEnv("LOG_FORMAT"); ok {
		format = env
	}
	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}
	if out == nil {
		out = io.Discard
	}
	log.SetOutput(out)
	return log, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
