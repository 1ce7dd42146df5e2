// Command qlogdemo emits one message per level through every kind of
// call-site context, using the engine described by the QLOG_*
// environment variables or qlog.yaml.
//
//	QLOG_ENGINE=zerolog QLOG_LEVEL=trace go run ./cmd/qlogdemo
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/philipp01105/qlog/config"
	"github.com/philipp01105/qlog/engine"
	"github.com/philipp01105/qlog/logger"
)

type server struct {
	addr string
}

func (s *server) start() {
	logger.Type(s).Infof("listening on %s", s.addr)
	logger.TypeFunc(s).Debugf("accept loop ready")
}

func (s *server) shutdown(grace time.Duration) {
	logger.TypeFunc(s).WithSite().Warnf("draining for %s", grace)
}

func loadFixtures() {
	logger.Func().Tracef("reading %d fixtures", 3)
	logger.Func().Errorf("fixture %q is corrupt", "users.json")
}

// installEngine makes e the process-wide engine and closes the one it replaces
func installEngine(e engine.Engine) error {
	return logger.SetEngine(e).Close()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "qlogdemo: %v\n", err)
		os.Exit(2)
	}

	e, err := config.Build(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "qlogdemo: %v\n", err)
		os.Exit(2)
	}
	counting := engine.NewCountingEngine(e)
	if err := installEngine(counting); err != nil {
		fmt.Fprintf(os.Stderr, "qlogdemo: closing previous engine: %v\n", err)
	}
	logger.SetLevel(cfg.LogLevel())

	logger.Infof("qlogdemo using %s engine at level %s", cfg.Engine, logger.GetLevel())

	s := &server{addr: ":8080"}
	s.start()
	loadFixtures()
	s.shutdown(5 * time.Second)

	logger.Get().Logf(logger.CriticalLevel, "dynamic level %v", logger.CriticalLevel)
	if logger.Enabled {
		snap := counting.Stats()
		logger.Get().Infof("emitted %d message(s), %d at warn or above", snap.Total,
			snap.Emitted[logger.WarnLevel]+snap.Emitted[logger.ErrorLevel]+snap.Emitted[logger.CriticalLevel])
	}

	if err := logger.Get().Engine().Close(); err != nil {
		fmt.Fprintf(os.Stderr, "qlogdemo: %v\n", err)
	}
}
