package feed

import (
	"sync"

	"github.com/signalnine/townscore/board"
)

// Candidates streams candidate fed sets in a fixed order. The order decides
// ties: the first of several equally good candidates wins.
type Candidates interface {
	Next() (board.IndexSet, bool)
}

type pickCandidates struct {
	combos *Combinations
	pick   func(combo []int) board.IndexSet
}

func (p *pickCandidates) Next() (board.IndexSet, bool) {
	combo, ok := p.combos.Next()
	if !ok {
		return nil, false
	}
	return p.pick(combo), true
}

// Best scores every candidate and keeps the one with the strictly highest
// score, starting from the empty set at 0. Parallel and serial runs return
// the same set.
func Best(cands Candidates, objective Objective, opts Options) Result {
	if opts.Workers > 1 {
		return bestParallel(cands, objective, opts.Workers)
	}
	return bestSerial(cands, objective)
}

func bestSerial(cands Candidates, objective Objective) Result {
	res := Result{Fed: board.IndexSet{}}
	for {
		set, ok := cands.Next()
		if !ok {
			break
		}
		res.Candidates++
		if score := objective(set); score > res.Score {
			res.Fed, res.Score = set, score
		}
	}
	return res
}

// candidateJob tags a candidate with its position in the stream.
type candidateJob struct {
	Seq int
	Set board.IndexSet
}

// candidateResult is a worker's best candidate. Seq is -1 when the worker
// never beat the empty baseline.
type candidateResult struct {
	Seq       int
	Score     int
	Set       board.IndexSet
	Evaluated int
}

func bestParallel(cands Candidates, objective Objective, numWorkers int) Result {
	jobs := make(chan candidateJob, numWorkers*4)
	results := make(chan candidateResult, numWorkers)

	var wg sync.WaitGroup

	// Start workers
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go searchWorker(&wg, jobs, results, objective)
	}

	// Stream candidates in enumeration order
	seq := 0
	for {
		set, ok := cands.Next()
		if !ok {
			break
		}
		jobs <- candidateJob{Seq: seq, Set: set}
		seq++
	}
	close(jobs)

	// Wait for all workers to complete, then close results
	go func() {
		wg.Wait()
		close(results)
	}()

	return mergeResults(results)
}

// searchWorker keeps the first highest-scoring candidate it sees. A single
// producer feeds the channel, so each worker sees ascending sequence numbers.
func searchWorker(wg *sync.WaitGroup, jobs <-chan candidateJob, results chan<- candidateResult, objective Objective) {
	defer wg.Done()

	best := candidateResult{Seq: -1}
	for job := range jobs {
		best.Evaluated++
		if score := objective(job.Set); score > best.Score {
			best.Seq, best.Score, best.Set = job.Seq, score, job.Set
		}
	}
	results <- best
}

// mergeResults picks the highest score, breaking ties by sequence number.
func mergeResults(results <-chan candidateResult) Result {
	res := Result{Fed: board.IndexSet{}}
	bestSeq := -1
	for r := range results {
		res.Candidates += r.Evaluated
		if r.Seq < 0 {
			continue
		}
		if r.Score > res.Score || (r.Score == res.Score && r.Seq < bestSeq) {
			res.Fed, res.Score, bestSeq = r.Set, r.Score, r.Seq
		}
	}
	return res
}
