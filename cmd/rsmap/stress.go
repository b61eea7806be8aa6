package main

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/siuubhamm/reversed_kvstore/ctxlog"
	"github.com/siuubhamm/reversed_kvstore/kvstore"
)

type stressResult struct {
	Ops      int
	Entries  int
	Duration time.Duration
}

// runStress hammers one shared container from several goroutines and then
// checks that every entry still satisfies the reversal relation.
// UppercaseKeys is left out of the mix since it rewrites keys on purpose.
func runStress(ctx context.Context, m *kvstore.Locked, workers, opsPerWorker int) (stressResult, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Info("starting stress run", "workers", workers, "ops_per_worker", opsPerWorker)

	var wg sync.WaitGroup
	startTime := time.Now()

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go runWorker(ctx, m, i, opsPerWorker, &wg)
	}
	wg.Wait()

	res := stressResult{
		Ops:      workers * opsPerWorker,
		Entries:  m.Len(),
		Duration: time.Since(startTime),
	}
	logger.Info("all workers finished", "entries", res.Entries, "duration", res.Duration)

	for k, v := range m.Snapshot() {
		if kvstore.Reverse(v) != k {
			return res, errors.Errorf("entry %q holds %q, not its reversal", k, v)
		}
	}
	return res, nil
}

func runWorker(ctx context.Context, m *kvstore.Locked, workerID, numOps int, wg *sync.WaitGroup) {
	defer wg.Done()

	logger := ctxlog.FromContext(ctx).With("worker", workerID)
	rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(workerID)))

	for i := 0; i < numOps; i++ {
		if ctx.Err() != nil {
			logger.Warn("stopped early", "completed", i, "err", ctx.Err())
			return
		}

		value := fmt.Sprintf("value-%d-%d", workerID, rng.Intn(numOps))
		switch rng.Intn(6) {
		case 0, 1:
			m.Insert(value)
		case 2:
			m.RemoveKey(kvstore.Reverse(value))
		case 3:
			m.RemoveValue(value)
		case 4:
			m.KeysSortedDesc()
			m.FirstKey()
			m.LastKey()
		case 5:
			m.ValuesSorted()
			m.DistinctValues()
			m.ContainsAllKeys(kvstore.Reverse(value))
		}
	}
	logger.Debug("worker done", "ops", numOps)
}
