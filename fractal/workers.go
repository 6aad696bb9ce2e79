package fractal

import (
	"runtime"
	"sync"
)

// parallelThreshold is the minimum row count to use the worker pool.
// Below this, single-threaded is faster due to goroutine overhead.
const parallelThreshold = 32

// rowChunk represents a range of rows [start, end) for a worker to rasterize.
type rowChunk struct {
	start, end int
}

// rowPool is a persistent set of rasterization workers.
type rowPool struct {
	numWorkers int

	// job is set before chunks are sent; the channel send orders the write
	job func(start, end int)

	workChan chan rowChunk  // sends work to workers
	doneChan chan struct{}  // workers signal completion
	stopChan chan struct{}  // signals workers to exit
	wg       sync.WaitGroup // tracks active workers
	running  bool
}

func newRowPool(numWorkers int) *rowPool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	return &rowPool{numWorkers: numWorkers}
}

// start launches persistent worker goroutines.
func (p *rowPool) start() {
	if p.running {
		return
	}

	p.workChan = make(chan rowChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// stop signals all workers to exit and waits for them.
func (p *rowPool) stop() {
	if !p.running {
		return
	}

	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

func (p *rowPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			p.job(chunk.start, chunk.end)
			p.doneChan <- struct{}{}
		}
	}
}

// run calls job over [0, rows) split into one contiguous chunk per worker,
// and returns once every chunk is done.
func (p *rowPool) run(rows int, job func(start, end int)) {
	if p.numWorkers <= 1 || rows < parallelThreshold {
		job(0, rows)
		return
	}

	p.start()
	p.job = job

	chunkSize := (rows + p.numWorkers - 1) / p.numWorkers
	sent := 0
	for start := 0; start < rows; start += chunkSize {
		end := start + chunkSize
		if end > rows {
			end = rows
		}
		p.workChan <- rowChunk{start: start, end: end}
		sent++
	}

	for i := 0; i < sent; i++ {
		<-p.doneChan
	}
}
