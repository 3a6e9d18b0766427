// Package pipeline fans the lex and parse work for many files across a
// fixed-size worker pool and collects the results into a corpus store.
package pipeline

import (
	"runtime"
	"sync"
)

// Pool is a fixed-size pool of workers draining a FIFO task queue.
// Tasks may submit follow-up tasks; Wait accounts for both queued and
// in-flight work, so a follow-up submitted by a running task is never
// missed by the barrier.
type Pool struct {
	mu       sync.Mutex
	workCond *sync.Cond
	doneCond *sync.Cond
	queue    []func()
	active   int
	closed   bool
	workers  sync.WaitGroup
}

// NewPool starts n workers. n <= 0 uses the host's CPU count.
func NewPool(n int) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p := &Pool{}
	p.workCond = sync.NewCond(&p.mu)
	p.doneCond = sync.NewCond(&p.mu)
	for range n {
		p.workers.Add(1)
		go p.worker()
	}
	return p
}

// Submit enqueues a task. Submitting after Close is a no-op.
func (p *Pool) Submit(task func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.queue = append(p.queue, task)
	p.workCond.Signal()
}

// Wait blocks until the queue is empty and no task is executing. The
// executing check matters: a task mid-flight may still submit its own
// follow-up, so an empty queue alone is not completion.
func (p *Pool) Wait() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for len(p.queue) > 0 || p.active > 0 {
		p.doneCond.Wait()
	}
}

// Close stops the workers after the current tasks finish and waits for
// them to exit. Queued but unstarted tasks are dropped.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.queue = nil
	p.workCond.Broadcast()
	p.doneCond.Broadcast()
	p.mu.Unlock()
	p.workers.Wait()
}

func (p *Pool) worker() {
	defer p.workers.Done()
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.workCond.Wait()
		}
		if p.closed {
			p.mu.Unlock()
			return
		}
		task := p.queue[0]
		p.queue = p.queue[1:]
		p.active++
		p.mu.Unlock()

		task()

		p.mu.Lock()
		p.active--
		if len(p.queue) == 0 && p.active == 0 {
			p.doneCond.Broadcast()
		}
		p.mu.Unlock()
	}
}
