package main

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
)

// newSessionLogger opens ~/.picol/messages.log, mints a session ID, and
// writes a startup record, mirroring the teacher's setupLogging /
// logSysInfo in main.go but through logrus's structured fields instead
// of the standard log package (SPEC_FULL §2.2). The returned closer
// flushes and closes the log file; callers must defer it.
func newSessionLogger(verbose bool) (*logrus.Entry, func(), error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, err
	}
	dir := filepath.Join(home, ".picol")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, err
	}
	logname := filepath.Join(dir, "messages.log")
	logfile, err := os.OpenFile(logname, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return nil, nil, err
	}

	logger := logrus.New()
	logger.SetOutput(logfile)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	sessionID, err := uuid.NewV4()
	if err != nil {
		logfile.Close()
		return nil, nil, err
	}
	entry := logger.WithField("session", sessionID.String())

	logSysInfo(entry)

	closer := func() {
		logfile.Sync()
		logfile.Close()
	}
	return entry, closer, nil
}

// logSysInfo records the same system details the teacher's main.go
// captured (Go version, working directory, home directory), useful for
// debugging a shared log file after the fact.
func logSysInfo(log *logrus.Entry) {
	pwd, err := os.Getwd()
	if err != nil {
		pwd = "?"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "?"
	}
	log.WithFields(logrus.Fields{
		"go_version": runtime.Version(),
		"pwd":        pwd,
		"home":       home,
	}).Info("picol session starting")
}
