package zonotope

import "sync"

// task splits data in workersCount contiguous chunks and runs fn on each element, one
// goroutine per chunk. fn must only write state owned by its element.
func task[T any](workersCount int, data []T, fn func(data T)) {
	workersCount = max(1, min(workersCount, len(data)))
	if workersCount == 1 {
		for _, d := range data {
			fn(d)
		}
		return
	}

	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(data[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()
}
