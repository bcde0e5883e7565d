/*
 * MIT License
 *
 * Copyright (c) 2026 ProcTree Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package host is an in-process reference implementation of the host message
// service behind the mailbox package: goroutine-backed processes with
// selective message queues, links and per-process link death handling. It is
// meant for embedding the mailbox model into a single Go program and for
// testing code written against it; a production host (a scheduler-backed
// runtime) plugs in behind the same mailbox.Host interface.
package host

import (
	"sync"

	"github.com/google/uuid"

	"github.com/proctree/mailbox/log"
)

// Node owns a set of processes and their shared bookkeeping.
type Node struct {
	logger log.Logger

	mu    sync.Mutex
	procs map[uuid.UUID]*Process
	wg    sync.WaitGroup
}

// Option alters the default behavior of a Node.
type Option func(*Node)

// WithLogger sets the logger used by the node and its processes.
func WithLogger(logger log.Logger) Option {
	return func(n *Node) {
		n.logger = logger
	}
}

// NewNode creates a node ready to spawn processes onto.
func NewNode(opts ...Option) *Node {
	node := &Node{
		logger: log.DefaultLogger,
		procs:  make(map[uuid.UUID]*Process),
	}
	for _, opt := range opts {
		opt(node)
	}
	return node
}

// Spawn starts fn as a process on its own goroutine and returns its handle
// immediately. The process dies when fn returns or panics; linked processes
// are notified either way (see [Process.Link]).
func (n *Node) Spawn(fn func(*Process)) *Process {
	proc := n.newProcess()
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		proc.run(fn)
	}()
	return proc
}

// Run executes fn as a process on the calling goroutine and blocks until it
// finishes. It is meant for a program's root process.
func (n *Node) Run(fn func(*Process)) {
	proc := n.newProcess()
	n.wg.Add(1)
	defer n.wg.Done()
	proc.run(fn)
}

// Shutdown kills every live process and waits for their goroutines to
// finish. A process that is not blocked in a receive dies on its next
// receive, so processes doing unbounded non-receive work will stall the
// shutdown.
func (n *Node) Shutdown() {
	n.mu.Lock()
	live := make([]*Process, 0, len(n.procs))
	for _, proc := range n.procs {
		live = append(live, proc)
	}
	n.mu.Unlock()

	for _, proc := range live {
		proc.kill()
	}
	n.wg.Wait()
	n.logger.Debugf("node stopped, %d process(es) killed", len(live))
}

// Alive reports whether the given process is still registered on the node.
func (n *Node) Alive(proc *Process) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, ok := n.procs[proc.id]
	return ok
}

func (n *Node) newProcess() *Process {
	proc := &Process{
		id:     uuid.New(),
		node:   n,
		logger: n.logger,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		links:  make(map[*Process]int64),
	}
	n.mu.Lock()
	n.procs[proc.id] = proc
	n.mu.Unlock()
	n.logger.Debugf("spawned %s", proc)
	return proc
}
