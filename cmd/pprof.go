package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"
)

// CPUProfile profiles until the returned cleanup runs. An interrupt stops
// the profile, flushes it and exits.
func CPUProfile(output string) (func(), *Error) {
	f, err := os.Create(output)
	if err != nil {
		return nil, Err(-2, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, Err(-2, err)
	}
	stop := func() {
		pprof.StopCPUProfile()
		f.Close()
	}
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig, ok := <-sigs
		if !ok {
			return
		}
		stop()
		fmt.Fprintf(os.Stderr, "caught signal: %v\n", sig)
		os.Exit(130)
	}()
	cleanup := func() {
		signal.Stop(sigs)
		close(sigs)
		stop()
	}
	return cleanup, nil
}
