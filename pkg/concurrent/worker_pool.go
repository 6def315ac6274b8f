package concurrent

import (
	"sync"
)

type JobFunc[T any, G any] func(job T) G

type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup
}

// NewWorkerPool creates a pool. jobQueueSize must be at least the number of jobs if results
// are only collected after Wait.
func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- jobFunc(job)
	}
}

func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobQueue <- job
}

func (wp *WorkerPool[T, G]) CollectResults() chan G {
	return wp.results
}

func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

type indexedJob[T any] struct {
	pos int
	job T
}

type indexedResult[G any] struct {
	pos int
	res G
}

// MapOrdered runs jobFunc over jobs on numWorkers goroutines and returns the results in job order.
func MapOrdered[T any, G any](numWorkers int, jobs []T, jobFunc JobFunc[T, G]) []G {
	out := make([]G, len(jobs))
	if len(jobs) == 0 {
		return out
	}

	wp := NewWorkerPool[indexedJob[T], indexedResult[G]](numWorkers, len(jobs))
	wp.Start(func(j indexedJob[T]) indexedResult[G] {
		return indexedResult[G]{pos: j.pos, res: jobFunc(j.job)}
	})

	for i, job := range jobs {
		wp.AddJob(indexedJob[T]{pos: i, job: job})
	}
	wp.Close()
	wp.Wait()

	for r := range wp.CollectResults() {
		out[r.pos] = r.res
	}
	return out
}
