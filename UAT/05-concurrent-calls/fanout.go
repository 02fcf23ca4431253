// Package fanout demonstrates sharing one double across goroutines:
// stubbing, calls, and verification are safe to interleave.
package fanout

import "sync"

//go:generate go run ../../doublegen/main.go Worker

// Worker processes one task at a time.
type Worker interface {
	Process(task int) int
}

// RunAll hands every task to the worker from its own goroutine and returns
// the results indexed by task.
func RunAll(worker Worker, tasks int) []int {
	var wg sync.WaitGroup

	results := make([]int, tasks)

	wg.Add(tasks)

	for task := range tasks {
		go func() {
			defer wg.Done()

			results[task] = worker.Process(task)
		}()
	}

	wg.Wait()

	return results
}
