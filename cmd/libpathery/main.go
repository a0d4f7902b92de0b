// Command libpathery builds the shared library loaded by the Python
// environment:
//
//	go build -buildmode=c-shared -o libpathery.so ./cmd/libpathery
//
// It exports getShortestPath with the signature the environment expects.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"os"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathery/boundary"
	"github.com/katalvlaran/pathery/internal/config"
	"github.com/katalvlaran/pathery/internal/logger"
	"github.com/katalvlaran/pathery/pathfinder"
)

var log = newLogger()

func newLogger() *logrus.Logger {
	cfg, err := config.Load()
	if err != nil {
		l := logrus.New()
		l.WithError(err).Warn("falling back to default log configuration")
		return l
	}
	// stdout belongs to the host process.
	return logger.NewWithOutput(cfg.Log, os.Stderr)
}

//export getShortestPath
func getShortestPath(grid *C.int32_t, height, width, checkpointCount, teleporterCount C.int32_t, output *C.int32_t, outputBufferSize C.int32_t) {
	cells := unsafe.Slice((*int32)(unsafe.Pointer(grid)), int(height)*int(width))
	out := unsafe.Slice((*int32)(unsafe.Pointer(output)), int(outputBufferSize))

	err := boundary.ComputeInto(cells, int32(height), int32(width), int32(checkpointCount), int32(teleporterCount), out,
		pathfinder.WithLogger(log))
	if err != nil {
		// A short buffer is a caller bug; never hand back a truncated path.
		log.WithError(err).WithFields(logrus.Fields{
			"height": int(height),
			"width":  int(width),
			"buffer": int(outputBufferSize),
		}).Fatal("getShortestPath failed")
	}
}

func main() {}
