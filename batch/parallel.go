package batch

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/signalnine/townscore/engine"
)

// Run scores jobs on numWorkers goroutines (0 = one per CPU). Results come
// back in the order of jobs regardless of completion order.
func Run(jobs []Job, scorer *engine.Scorer, numWorkers int) []Result {
	if len(jobs) == 0 {
		return nil
	}
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	tasks := make(chan indexedJob, len(jobs))
	results := make(chan indexedResult, len(jobs))

	var wg sync.WaitGroup

	// Start workers
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go worker(&wg, tasks, results, scorer)
	}

	for i, job := range jobs {
		tasks <- indexedJob{pos: i, job: job}
	}
	close(tasks)

	// Wait for all workers to complete, then close results
	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]Result, len(jobs))
	for r := range results {
		out[r.pos] = r.result
	}
	return out
}

// RunSerial scores jobs one after another.
func RunSerial(jobs []Job, scorer *engine.Scorer) []Result {
	out := make([]Result, len(jobs))
	for i, job := range jobs {
		out[i] = ScoreOne(scorer, job)
	}
	return out
}

// indexedJob remembers where a job sits in the input slice; Job.Index is
// caller data and need not be dense.
type indexedJob struct {
	pos int
	job Job
}

type indexedResult struct {
	pos    int
	result Result
}

// worker processes scoring jobs from the tasks channel
func worker(wg *sync.WaitGroup, tasks <-chan indexedJob, results chan<- indexedResult, scorer *engine.Scorer) {
	defer wg.Done()

	for t := range tasks {
		results <- indexedResult{pos: t.pos, result: ScoreOne(scorer, t.job)}
	}
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("scoring failed: %w", err)
	}
	return fmt.Errorf("scoring failed: %v", r)
}
