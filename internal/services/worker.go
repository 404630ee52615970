package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"
)

var ErrWorkerStopped = errors.New("worker stopped")

type Worker interface {
	Start(ctx context.Context)
	Stop()
	// Submit queues job and blocks until a worker has finished it.
	Submit(ctx context.Context, job AnalysisJob) (*Analysis, error)
}

type AnalysisJob struct {
	RequestID      uuid.UUID
	Document       []byte
	JobDescription string
}

type jobResult struct {
	analysis *Analysis
	err      error
}

type queuedJob struct {
	ctx  context.Context
	job  AnalysisJob
	done chan jobResult
}

type worker struct {
	analyzer    AnalyzerService
	jobQueue    chan queuedJob
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
	stopOnce    sync.Once
}

func NewWorker(analyzer AnalyzerService, concurrency, queueSize int) Worker {
	if concurrency <= 0 {
		concurrency = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	return &worker{
		analyzer:    analyzer,
		jobQueue:    make(chan queuedJob, queueSize),
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}
}

// Stop implements Worker.
func (w *worker) Stop() {
	w.stopOnce.Do(func() {
		log.Println("🛑 Stopping worker...")
		close(w.stopChan)
		w.wg.Wait()
		log.Println("✅ Worker stopped")
	})
}

// Submit implements Worker.
func (w *worker) Submit(ctx context.Context, job AnalysisJob) (*Analysis, error) {
	queued := queuedJob{
		ctx:  ctx,
		job:  job,
		done: make(chan jobResult, 1),
	}

	select {
	case <-w.stopChan:
		return nil, ErrWorkerStopped
	default:
	}

	select {
	case w.jobQueue <- queued:
		log.Printf("📥 Job %s enqueued\n", job.RequestID)
	case <-w.stopChan:
		return nil, ErrWorkerStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-queued.done:
		return res.analysis, res.err
	case <-w.stopChan:
		return nil, ErrWorkerStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case <-ctx.Done():
			log.Printf("👷 Worker #%d stopped: %v\n", workerID, ctx.Err())
			return
		case queued := <-w.jobQueue:
			job := queued.job
			if err := queued.ctx.Err(); err != nil {
				queued.done <- jobResult{err: err}
				continue
			}

			log.Printf("👷 Worker #%d processing job %s\n", workerID, job.RequestID)
			analysis, err := w.analyzer.AnalyzeDocument(queued.ctx, job.RequestID, job.Document, job.JobDescription)
			if err != nil {
				log.Printf("❌ Worker #%d failed job %s: %v\n", workerID, job.RequestID, err)
			} else {
				log.Printf("✅ Worker #%d completed job %s (%s)\n", workerID, job.RequestID, analysis.Outcome)
			}
			queued.done <- jobResult{analysis: analysis, err: err}
		}
	}
}
