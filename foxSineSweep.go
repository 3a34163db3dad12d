package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Foxenfurter/foxSineSweep/foxLog"
	"github.com/Foxenfurter/foxSineSweep/foxWavGen"
)

func main() {
	const functionName = "Main"
	startTime := time.Now()

	logger, err := foxLog.NewLogger("", "", false)
	if err != nil {
		panic(err)
	}
	defer logger.Close()

	sweep := foxWavGen.DefaultSweep(logger)
	written, err := sweep.Run(context.Background())
	if err != nil {
		logger.FatalError(functionName + ": sweep failed: " + err.Error())
	}

	logger.Info(fmt.Sprintf("%s: wrote %d files to %s in %v", functionName, len(written), sweep.OutputDir, time.Since(startTime)))
}
