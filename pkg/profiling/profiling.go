// Package profiling writes pprof profiles of a host process.
package profiling

import (
	"io"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
)

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofStopCPUProfile   = pprof.StopCPUProfile
	pprofWriteHeapProfile = func(w io.Writer) error { return pprof.WriteHeapProfile(w) }
)

// DoCPUProfiling starts CPU profiling into path and returns the function
// that stops it. Failures are logged and profiling is skipped.
func DoCPUProfiling(path string, log logrus.FieldLogger) (stop func()) {
	log = log.WithField("path", path)
	f, err := osCreate(path)
	if err != nil {
		log.WithError(err).Error("could not create CPU profile")
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		log.WithError(err).Error("could not start CPU profile")
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		if err := f.Close(); err != nil {
			log.WithError(err).Error("could not close CPU profile")
		}
	}
}

// DoMemProfiling returns a function that writes a heap profile into path,
// typically deferred until the host exits.
func DoMemProfiling(path string, log logrus.FieldLogger) (write func()) {
	log = log.WithField("path", path)
	return func() {
		f, err := osCreate(path)
		if err != nil {
			log.WithError(err).Error("could not create memory profile")
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err = pprofWriteHeapProfile(f); err != nil {
			log.WithError(err).Error("could not write memory profile")
		}
	}
}
