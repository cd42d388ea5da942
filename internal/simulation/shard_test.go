package simulation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionTrials(t *testing.T) {
	tests := []struct {
		trials  int
		workers int
		want    []int
	}{
		{10, 1, []int{10}},
		{10, 3, []int{3, 3, 4}},
		{12, 4, []int{3, 3, 3, 3}},
		{3, 8, []int{0, 0, 0, 0, 0, 0, 0, 3}},
		{0, 2, []int{0, 0}},
		{7, 0, []int{7}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.trials, tt.workers), func(t *testing.T) {
			assert.Equal(t, tt.want, PartitionTrials(tt.trials, tt.workers))
		})
	}
}

func TestPartitionTrialsSumsAndNonEmpty(t *testing.T) {
	for trials := 0; trials <= 200; trials += 7 {
		for workers := 1; workers <= 16; workers++ {
			shards := PartitionTrials(trials, workers)
			assert.Len(t, shards, workers)

			sum := 0
			for _, n := range shards {
				sum += n
				if trials >= workers {
					assert.Positive(t, n, "trials=%d workers=%d", trials, workers)
				}
			}
			assert.Equal(t, trials, sum, "trials=%d workers=%d", trials, workers)
		}
	}
}

func TestDefaultWorkerCount(t *testing.T) {
	assert.GreaterOrEqual(t, DefaultWorkerCount(), 1)
}
