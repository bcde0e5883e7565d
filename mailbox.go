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

package mailbox

import "time"

// Mailbox is the inbox handle of a process that is either not linked to other
// processes, or linked and set to terminate when one of them dies. Death
// signals never surface through it.
//
// A Mailbox carries no state of its own beyond the host binding; copying it
// does not duplicate any queue.
type Mailbox[T any] struct {
	host Host
}

// enforce compilation error when the transformer contract changes
var _ Transformer[any] = Mailbox[any]{}

// New returns the mailbox handle of the process backed by h.
//
// It is not safe to mix different payload types against one process's
// mailbox: the caller guarantees that T is the only type received for the
// process's whole lifetime, and a violation surfaces as a [DecodeError] at
// receive time at the earliest. This constructor belongs in process bootstrap
// code and should never be called anywhere else.
func New[T any](h Host) Mailbox[T] {
	return Mailbox[T]{host: h}
}

// Receive returns the next message from the process's mailbox, blocking until
// one arrives.
func (m Mailbox[T]) Receive() (T, error) {
	return m.receive(nil, nil)
}

// ReceiveTimeout is [Mailbox.Receive] bounded to timeout. It returns
// [ErrTimeout] when no message arrived in time.
func (m Mailbox[T]) ReceiveTimeout(timeout time.Duration) (T, error) {
	return m.receive(nil, &timeout)
}

// ReceiveWithTag returns the next message from the process's mailbox together
// with the tag its sender attached, blocking until one arrives.
func (m Mailbox[T]) ReceiveWithTag() (T, Tag, error) {
	msg := receive[T](m.host, nil, nil, false)
	payload, err := msg.Normal()
	return payload, msg.tag, err
}

// TagReceive returns the next message carrying exactly tag, blocking until
// one arrives. Messages with other tags stay queued untouched.
func (m Mailbox[T]) TagReceive(tag Tag) (T, error) {
	return m.receive(&tag, nil)
}

// TagReceiveTimeout is [Mailbox.TagReceive] bounded to timeout.
func (m Mailbox[T]) TagReceiveTimeout(tag Tag, timeout time.Duration) (T, error) {
	return m.receive(&tag, &timeout)
}

func (m Mailbox[T]) receive(tag *Tag, timeout *time.Duration) (T, error) {
	return receive[T](m.host, tag, timeout, false).Normal()
}

// CatchLinkFailure switches the process to trap linked process deaths and
// consumes the handle, returning the trapping equivalent. From here on a dead
// link is delivered as a signal message instead of terminating the process.
func (m Mailbox[T]) CatchLinkFailure() LinkMailbox[T] {
	m.host.SetLinkMode(TrapLinkDeath)
	return LinkMailbox[T]{host: m.host}
}

// FailIfLinkFails returns the handle unchanged: the process already
// terminates when a linked process dies.
func (m Mailbox[T]) FailIfLinkFails() Mailbox[T] {
	return m
}
