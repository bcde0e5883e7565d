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

package host

import (
	"bytes"
	"errors"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/proctree/mailbox"
	"github.com/proctree/mailbox/log"
)

// ErrDead indicates that the target process is no longer alive.
var ErrDead = errors.New("process is not alive")

// processKilled is the panic payload used to unwind the goroutine of a
// process whose linked peer died while the process was not trapping link
// deaths. It never escapes [Process.run].
type processKilled struct{}

// envelope is one queued message: a payload snapshot plus its wire metadata.
type envelope struct {
	kind uint32
	tag  int64
	data []byte
}

// Process is one mailbox-owning unit of execution on a [Node]. It implements
// mailbox.Host for the single goroutine running it; the Host methods must
// only be called from that goroutine, while Send, Link and the introspection
// methods are safe from anywhere.
type Process struct {
	id     uuid.UUID
	node   *Node
	logger log.Logger

	// trap mirrors the process's link mode: true delivers linked peer deaths
	// as signal messages, false lets them kill this process.
	trap atomic.Bool

	mu     sync.Mutex
	queue  []envelope
	killed bool
	wake   chan struct{}

	// guarded by node.mu
	dead  bool
	links map[*Process]int64

	// owner goroutine only
	current  *envelope
	offset   int
	outgoing bytes.Buffer

	done chan struct{}
}

// enforce compilation error when the host contract changes
var _ mailbox.Host = (*Process)(nil)

// ID returns the process identifier.
func (p *Process) ID() uuid.UUID {
	return p.id
}

func (p *Process) String() string {
	return "process/" + p.id.String()
}

// Done returns a channel that is closed once the process has exited.
func (p *Process) Done() <-chan struct{} {
	return p.done
}

// Trapping reports whether the process currently traps linked process
// deaths. Intended for diagnostics and tests; the mailbox handles are the
// ones that flip the mode.
func (p *Process) Trapping() bool {
	return p.trap.Load()
}

// Send encodes value with the payload codec and delivers it to the target
// process carrying the given tag. A zero tag sends an untagged message that
// only wildcard receives will match.
func (p *Process) Send(target *Process, value any, tag mailbox.Tag) error {
	if err := cbor.NewEncoder(mailbox.NewPayloadStream(p)).Encode(value); err != nil {
		p.outgoing.Reset()
		return err
	}
	data := make([]byte, p.outgoing.Len())
	copy(data, p.outgoing.Bytes())
	p.outgoing.Reset()
	return target.deliver(envelope{kind: mailbox.NormalMessage, tag: int64(tag), data: data})
}

// Link links p and peer both ways. The tag identifies the link: it is
// carried by the death signal a trapping survivor receives when the other
// side dies. A non-trapping survivor is instead killed if the other side
// died abnormally; a plain return does not take linked processes down with
// it. Linking a process to itself is a no-op.
func (p *Process) Link(peer *Process, tag mailbox.Tag) error {
	if peer == p {
		return nil
	}
	n := p.node
	n.mu.Lock()
	defer n.mu.Unlock()
	if p.dead || peer.dead {
		return ErrDead
	}
	p.links[peer] = int64(tag)
	peer.links[p] = int64(tag)
	return nil
}

// Unlink removes the link between p and peer, if any.
func (p *Process) Unlink(peer *Process) {
	n := p.node
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(p.links, peer)
	delete(peer.links, p)
}

// Receive implements mailbox.Host. It scans the pending queue oldest first
// for an envelope matching tag and blocks, up to timeoutMillis milliseconds
// (0 = forever), until one arrives. Non-matching envelopes are left queued
// in arrival order.
func (p *Process) Receive(tag int64, timeoutMillis uint32) uint32 {
	var expired <-chan time.Time
	if timeoutMillis > 0 {
		timer := time.NewTimer(time.Duration(timeoutMillis) * time.Millisecond)
		defer timer.Stop()
		expired = timer.C
	}
	for {
		p.mu.Lock()
		if p.killed {
			p.mu.Unlock()
			panic(processKilled{})
		}
		if i := p.match(tag); i >= 0 {
			env := p.queue[i]
			p.queue = append(p.queue[:i], p.queue[i+1:]...)
			p.mu.Unlock()
			p.current = &env
			p.offset = 0
			return env.kind
		}
		p.mu.Unlock()

		select {
		case <-p.wake:
		case <-expired:
			return mailbox.ReceiveTimeout
		}
	}
}

// match returns the index of the oldest queued envelope matching tag, or -1.
// A death signal matches any filter: a correlation filter must not be able
// to mask a failure notice.
func (p *Process) match(tag int64) int {
	for i, env := range p.queue {
		if env.kind == mailbox.SignalMessage || tag == 0 || env.tag == tag {
			return i
		}
	}
	return -1
}

// MessageTag implements mailbox.Host.
func (p *Process) MessageTag() int64 {
	if p.current == nil {
		return 0
	}
	return p.current.tag
}

// ReadPayload implements mailbox.Host.
func (p *Process) ReadPayload(b []byte) int {
	if p.current == nil || p.offset >= len(p.current.data) {
		return 0
	}
	n := copy(b, p.current.data[p.offset:])
	p.offset += n
	return n
}

// WritePayload implements mailbox.Host.
func (p *Process) WritePayload(b []byte) int {
	n, _ := p.outgoing.Write(b)
	return n
}

// SetLinkMode implements mailbox.Host. Switching to TerminateOnLinkDeath
// applies terminate semantics to any death notice queued while trapping: the
// process dies on the spot instead of ever surfacing the signal to a
// non-trapping receive.
func (p *Process) SetLinkMode(mode mailbox.LinkMode) {
	p.trap.Store(mode == mailbox.TrapLinkDeath)
	if mode == mailbox.TrapLinkDeath {
		return
	}
	p.mu.Lock()
	pending := false
	kept := p.queue[:0]
	for _, env := range p.queue {
		if env.kind == mailbox.SignalMessage {
			pending = true
			continue
		}
		kept = append(kept, env)
	}
	p.queue = kept
	p.mu.Unlock()
	if pending {
		panic(processKilled{})
	}
}

// run executes the process body and settles its death: link notification,
// unregistration and closing of the done channel.
func (p *Process) run(fn func(*Process)) {
	defer func() {
		abnormal := false
		switch cause := recover().(type) {
		case nil:
			p.logger.Debugf("%s finished", p)
		case processKilled:
			abnormal = true
			p.logger.Debugf("%s killed by linked process death", p)
		default:
			abnormal = true
			p.logger.Errorf("%s crashed: %v", p, cause)
		}
		p.finish(abnormal)
		close(p.done)
	}()
	fn(p)
}

// finish marks the process dead, unregisters it and notifies its links.
func (p *Process) finish(abnormal bool) {
	n := p.node
	n.mu.Lock()
	p.dead = true
	delete(n.procs, p.id)
	links := p.links
	p.links = nil
	for peer := range links {
		delete(peer.links, p)
	}
	n.mu.Unlock()

	for peer, tag := range links {
		if peer.trap.Load() {
			_ = peer.deliver(envelope{kind: mailbox.SignalMessage, tag: tag})
		} else if abnormal {
			peer.kill()
		}
	}
}

// deliver enqueues env on p and wakes a blocked receive. A death signal
// aimed at a process that is no longer trapping kills it instead of being
// queued; the queue must never hold a signal a non-trapping receive could
// surface.
func (p *Process) deliver(env envelope) error {
	n := p.node
	n.mu.Lock()
	if p.dead {
		n.mu.Unlock()
		return ErrDead
	}
	p.mu.Lock()
	if env.kind == mailbox.SignalMessage && !p.trap.Load() {
		p.killed = true
	} else {
		p.queue = append(p.queue, env)
	}
	p.mu.Unlock()
	n.mu.Unlock()
	p.notify()
	return nil
}

// kill marks the process for termination; its current or next receive
// unwinds the process goroutine.
func (p *Process) kill() {
	p.mu.Lock()
	p.killed = true
	p.mu.Unlock()
	p.notify()
}

func (p *Process) notify() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}
