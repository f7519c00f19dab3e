package cli

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"
)

var (
	// MemorySampleRate How often to dump the heap profile in HZ. Values of less than 1 are recommended to avoid
	// having to sort through too many dump files
	MemorySampleRate = 0.5

	memProfilerMu sync.Mutex
	memProfiler   *memoryProfiler
)

type memoryProfiler struct {
	mu        sync.Mutex
	dumpPath  string
	heapDumps [][]byte
	stop      chan struct{}
	done      chan struct{}
}

func StartCPUProfiler(profileOutput io.Writer) {
	runtime.SetCPUProfileRate(500)
	if err := pprof.StartCPUProfile(profileOutput); err != nil {
		log.Fatalln("Error starting CPU profiler", err)
	}
}

func StopCPUProfiler() {
	pprof.StopCPUProfile()
}

func StartMemoryProfiler(profileDumpPath string) {
	if MemorySampleRate <= 0 {
		return
	}

	memProfilerMu.Lock()
	defer memProfilerMu.Unlock()
	if memProfiler != nil {
		return
	}
	memProfiler = &memoryProfiler{dumpPath: profileDumpPath, stop: make(chan struct{}), done: make(chan struct{})}
	go func(p *memoryProfiler) {
		defer close(p.done)
		ticker := time.NewTicker(time.Duration((1/MemorySampleRate)*1000) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				p.dump()
			}
		}
	}(memProfiler)
}

func (p *memoryProfiler) dump() {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err != nil {
		log.Println("Error dumping heap profile", err)
		return
	}
	p.mu.Lock()
	p.heapDumps = append(p.heapDumps, w.Bytes())
	p.mu.Unlock()
}

// StopMemoryProfiler takes a last heap dump and writes every dump to disk.
// It is safe to call more than once.
func StopMemoryProfiler() {
	memProfilerMu.Lock()
	p := memProfiler
	memProfiler = nil
	memProfilerMu.Unlock()
	if p == nil {
		return
	}

	close(p.stop)
	<-p.done
	p.dump()

	if err := os.MkdirAll(p.dumpPath, 0775); err != nil {
		log.Println("Error creating memory profile directory", err)
		return
	}
	for dIdx, dump := range p.heapDumps {
		err := os.WriteFile(filepath.Join(p.dumpPath, fmt.Sprintf("mem-%d.mprof", dIdx)), dump, 0664)
		if err != nil {
			log.Println("Error writing memory profile to disk", err)
		}
	}
}
