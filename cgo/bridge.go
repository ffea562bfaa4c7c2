package main

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"
import (
	"log/slog"
	"unsafe"

	"github.com/signalnine/townscore/bridge"
)

//export ScoreBatch
func ScoreBatch(requestPtr unsafe.Pointer, requestLen C.int, responseLen *C.int) unsafe.Pointer {
	// Parse Flatbuffers request
	requestBytes := C.GoBytes(requestPtr, requestLen)

	// Serial unless the request sets workers; hosts parallelize across processes.
	responseBytes, err := bridge.HandleBatch(requestBytes, bridge.Options{Workers: 1})
	if err != nil || len(responseBytes) == 0 {
		slog.Error("score batch failed", "error", err)
		*responseLen = 0
		return nil
	}

	*responseLen = C.int(len(responseBytes))

	// Allocate C memory for response (caller must free)
	cBytes := C.malloc(C.size_t(len(responseBytes)))
	if cBytes == nil {
		*responseLen = 0
		return nil
	}

	// Copy Go bytes to C memory
	C.memcpy(cBytes, unsafe.Pointer(&responseBytes[0]), C.size_t(len(responseBytes)))

	return cBytes
}

//export FreeResponse
func FreeResponse(ptr unsafe.Pointer) {
	C.free(ptr)
}

func main() {} // Required for CGo
