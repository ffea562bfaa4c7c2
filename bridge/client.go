package bridge

import (
	"math"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/signalnine/townscore/bindings/townscore"
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
)

// Request is one town to send in a batch.
type Request struct {
	Name     string
	Town     *board.Grid
	Opponent *board.Grid // optional
	Config   building.Config
}

// Response is a decoded ScoreResponse. Categories holds the eight colors in
// color order followed by unused.
type Response struct {
	Total      int
	Categories []int
	CellPoints []int
	Fed        []int
	Candidates int
	DurationNs uint64
	Err        string
}

// BatchResponse is a decoded BatchResponse.
type BatchResponse struct {
	BatchID   uint64
	RequestID string
	Results   []Response
}

// BuildBatchRequest encodes reqs as a BatchRequest. workers is capped at
// 255; EncodeTown's limits apply to every town.
func BuildBatchRequest(batchID uint64, workers int, reqs []Request) []byte {
	workers = min(max(workers, 0), math.MaxUint8)
	builder := flatbuffers.NewBuilder(1024)

	offsets := make([]flatbuffers.UOffsetT, len(reqs))
	for i, r := range reqs {
		town := EncodeTown(builder, r.Name, r.Town)
		var opponent flatbuffers.UOffsetT
		if r.Opponent != nil {
			opponent = EncodeTown(builder, r.Name+"/opponent", r.Opponent)
		}
		buildings := encodeBuildings(builder, r.Config)

		townscore.ScoreRequestStart(builder)
		townscore.ScoreRequestAddTown(builder, town)
		if opponent > 0 {
			townscore.ScoreRequestAddOpponent(builder, opponent)
		}
		townscore.ScoreRequestAddBuildings(builder, buildings)
		offsets[i] = townscore.ScoreRequestEnd(builder)
	}

	townscore.BatchRequestStartRequestsVector(builder, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(offsets[i])
	}
	requests := builder.EndVector(len(offsets))

	townscore.BatchRequestStart(builder)
	townscore.BatchRequestAddBatchId(builder, batchID)
	townscore.BatchRequestAddRequests(builder, requests)
	townscore.BatchRequestAddWorkers(builder, byte(workers))
	builder.Finish(townscore.BatchRequestEnd(builder))
	return builder.FinishedBytes()
}

// ParseBatchResponse decodes the output of HandleBatch.
func ParseBatchResponse(buf []byte) BatchResponse {
	resp := townscore.GetRootAsBatchResponse(buf, 0)
	out := BatchResponse{
		BatchID:   resp.BatchId(),
		RequestID: string(resp.RequestId()),
		Results:   make([]Response, resp.ResultsLength()),
	}

	r := new(townscore.ScoreResponse)
	for i := range out.Results {
		resp.Results(r, i)
		res := Response{
			Total:      int(r.Total()),
			Categories: make([]int, r.CategoriesLength()),
			CellPoints: make([]int, r.CellPointsLength()),
			Fed:        make([]int, r.FedLength()),
			Candidates: int(r.Candidates()),
			DurationNs: r.DurationNs(),
			Err:        string(r.Error()),
		}
		for j := range res.Categories {
			res.Categories[j] = int(r.Categories(j))
		}
		for j := range res.CellPoints {
			res.CellPoints[j] = int(r.CellPoints(j))
		}
		for j := range res.Fed {
			res.Fed[j] = int(r.Fed(j))
		}
		out.Results[i] = res
	}
	return out
}
