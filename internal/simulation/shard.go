package simulation

import "runtime"

// defaultWorkers is used when the host cannot report its CPU count.
const defaultWorkers = 4

// DefaultWorkerCount returns one worker per available CPU.
func DefaultWorkerCount() int {
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return defaultWorkers
}

// PartitionTrials splits trialCount into workers contiguous shards. Every
// shard gets floor(trialCount/workers) trials and the remainder goes to the
// last one, so the sizes always sum to trialCount. Shards are empty only when
// trialCount < workers.
func PartitionTrials(trialCount, workers int) []int {
	if workers < 1 {
		workers = 1
	}
	if trialCount < 0 {
		trialCount = 0
	}
	per := trialCount / workers
	shards := make([]int, workers)
	for i := range shards {
		shards[i] = per
	}
	shards[workers-1] += trialCount % workers
	return shards
}
