package logging

import (
	"io"
	"os"
	"path/filepath"

	"marketplace/config"

	"github.com/sirupsen/logrus"
)

var logger = logrus.StandardLogger()

// Setup cria o logger do processo: JSON, nível vindo da config e saída em
// stdout + arquivo em log_path.
func Setup(conf config.Configuration) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	out := io.Writer(os.Stdout)
	if conf.LogPath != "" {
		if err := os.MkdirAll(filepath.Dir(conf.LogPath), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(conf.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		out = io.MultiWriter(os.Stdout, f)
	}
	l.SetOutput(out)

	logger = l
	return l, nil
}

// Set troca o logger do processo (útil em testes).
func Set(l *logrus.Logger) {
	if l != nil {
		logger = l
	}
}

func Logger() *logrus.Logger {
	return logger
}
