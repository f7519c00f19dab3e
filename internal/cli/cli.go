package cli

import (
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
)

type profileOpts struct {
	cpuProfile    string
	memProfileDir string
}

// RootCommand builds the pdfapi command tree.
func RootCommand() *cobra.Command {
	opts := profileOpts{}
	prof := &profiling{}

	rootCmd := &cobra.Command{
		Use:          "pdfapi",
		Short:        "Merge files into PDF documents and split PDF documents into pages",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			prof.start(opts)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&opts.memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(ServeAppCommand(), MergeCommand(), SplitCommand())
	for _, cmd := range rootCmd.Commands() {
		stopProfilingAfter(cmd, prof)
	}
	return rootCmd
}

// stopProfilingAfter flushes the profiles when the command returns, with or
// without an error.
func stopProfilingAfter(cmd *cobra.Command, prof *profiling) {
	runE := cmd.RunE
	if runE == nil {
		return
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		defer prof.stop()
		return runE(cmd, args)
	}
}

// profiling runs the profiler teardowns once, on command completion or on
// a termination signal, whichever comes first.
type profiling struct {
	once      sync.Once
	teardowns []func()
	signals   chan os.Signal
}

func (p *profiling) start(o profileOpts) {
	if o.cpuProfile != "" {
		p.teardowns = append(p.teardowns, setupCPUProfilingAndReturnTeardown(o.cpuProfile))
	}
	if o.memProfileDir != "" {
		p.teardowns = append(p.teardowns, setupMemProfilingAndReturnTeardown(o.memProfileDir))
	}
	if len(p.teardowns) == 0 {
		return
	}

	p.signals = make(chan os.Signal, 2)
	signal.Notify(p.signals, os.Interrupt, syscall.SIGTERM) // subscribe to system signals
	go func(signals <-chan os.Signal) {
		if _, received := <-signals; !received {
			return
		}
		p.stop()
		os.Exit(0)
	}(p.signals)
}

func (p *profiling) stop() {
	p.once.Do(func() {
		if p.signals != nil {
			signal.Stop(p.signals)
			close(p.signals)
		}
		for _, teardown := range p.teardowns {
			teardown()
		}
	})
}

func setupCPUProfilingAndReturnTeardown(cpuProfile string) (deferredTeardown func()) {
	cpuProfileFile, err := os.Create(cpuProfile)
	if err != nil {
		log.Fatal(err)
	}
	StartCPUProfiler(cpuProfileFile)

	return func() {
		StopCPUProfiler()
		cpuProfileFile.Close()
	}
}

func setupMemProfilingAndReturnTeardown(memProfileDir string) (deferredTeardown func()) {
	StartMemoryProfiler(memProfileDir)
	return func() {
		StopMemoryProfiler()
	}
}
