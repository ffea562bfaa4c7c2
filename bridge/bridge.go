// Package bridge serves batch scoring over the flatbuffers protocol in
// bindings/townscore. It is the only entry point the cgo library exposes.
package bridge

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/google/uuid"
	"github.com/signalnine/townscore/batch"
	"github.com/signalnine/townscore/bindings/townscore"
	"github.com/signalnine/townscore/engine"
)

// Options configures HandleBatch. A request's own workers field wins over
// Workers when set.
type Options struct {
	Scoring *engine.ScoringContext // nil = DefaultScoringContext
	Workers int                    // 0 = one per CPU
	Logger  *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// HandleBatch decodes a BatchRequest, scores every town and returns the
// encoded BatchResponse. Towns that fail to decode or score get a result
// carrying only an error; the rest of the batch is unaffected.
func HandleBatch(request []byte, opts Options) (resp []byte, err error) {
	if len(request) < flatbuffers.SizeUOffsetT {
		return nil, errors.New("batch request too short")
	}
	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = fmt.Errorf("malformed batch request: %v", r)
		}
	}()

	start := time.Now()
	requestID := uuid.NewString()
	log := opts.logger().With("request_id", requestID)

	batchRequest := townscore.GetRootAsBatchRequest(request, 0)
	count := batchRequest.RequestsLength()

	ctx := engine.DefaultScoringContext()
	if opts.Scoring != nil {
		ctx = *opts.Scoring
	}
	scorer := engine.NewScorer(ctx)
	scorer.Logger = log

	jobs := make([]batch.Job, 0, count)
	cellCounts := make([]int, count)
	decodeErrs := make([]error, count)
	for i := 0; i < count; i++ {
		req := new(townscore.ScoreRequest)
		if !batchRequest.Requests(req, i) {
			continue
		}
		job, err := decodeJob(req, i)
		if err != nil {
			decodeErrs[i] = err
			continue
		}
		cellCounts[i] = job.Town.Len()
		jobs = append(jobs, job)
	}

	workers := opts.Workers
	if w := int(batchRequest.Workers()); w > 0 {
		workers = w
	}
	results := batch.Run(jobs, scorer, workers)

	byIndex := make([]*batch.Result, count)
	for i := range results {
		byIndex[results[i].Index] = &results[i]
	}

	builder := flatbuffers.NewBuilder(1024)
	resultOffsets := make([]flatbuffers.UOffsetT, count)
	for i := 0; i < count; i++ {
		switch res := byIndex[i]; {
		case decodeErrs[i] != nil:
			resultOffsets[i] = encodeCard(builder, 0, nil, 0, decodeErrs[i].Error())
		case res == nil:
			resultOffsets[i] = encodeCard(builder, 0, nil, 0, "missing request")
		case res.Err != nil:
			resultOffsets[i] = encodeCard(builder, 0, nil, res.DurationNs, res.Err.Error())
		default:
			resultOffsets[i] = encodeCard(builder, cellCounts[i], res.Card, res.DurationNs, "")
		}
	}

	townscore.BatchResponseStartResultsVector(builder, count)
	for i := count - 1; i >= 0; i-- {
		builder.PrependUOffsetT(resultOffsets[i])
	}
	resultsVec := builder.EndVector(count)
	idOffset := builder.CreateString(requestID)

	townscore.BatchResponseStart(builder)
	townscore.BatchResponseAddBatchId(builder, batchRequest.BatchId())
	townscore.BatchResponseAddRequestId(builder, idOffset)
	townscore.BatchResponseAddResults(builder, resultsVec)
	builder.Finish(townscore.BatchResponseEnd(builder))

	stats := batch.Aggregate(results)
	failed := int(stats.Errors)
	for _, err := range decodeErrs {
		if err != nil {
			failed++
		}
	}
	log.Info("batch scored",
		"batch_id", batchRequest.BatchId(),
		"towns", count,
		"errors", failed,
		"best_index", stats.BestIndex,
		"duration", time.Since(start))

	return builder.FinishedBytes(), nil
}

func decodeJob(req *townscore.ScoreRequest, index int) (batch.Job, error) {
	town := req.Town(nil)
	if town == nil {
		return batch.Job{}, errors.New("request has no town")
	}
	g, err := DecodeTown(town)
	if err != nil {
		return batch.Job{}, err
	}

	job := batch.Job{Index: index, Town: g}
	if opp := req.Opponent(nil); opp != nil {
		if job.Other, err = DecodeTown(opp); err != nil {
			return batch.Job{}, fmt.Errorf("opponent: %w", err)
		}
	}
	if job.Config, err = decodeBuildings(req); err != nil {
		return batch.Job{}, err
	}
	return job, nil
}
