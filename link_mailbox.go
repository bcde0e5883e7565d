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

// LinkMailbox is the inbox handle of a process that traps linked process
// deaths: every receive may surface either a normal message or a death
// signal, wrapped in a [Message].
//
// There is no constructor. The only way to obtain a LinkMailbox is
// [Mailbox.CatchLinkFailure], which flips the process's link mode at the same
// time; the two can never disagree.
type LinkMailbox[T any] struct {
	host Host
}

// enforce compilation error when the transformer contract changes
var _ Transformer[any] = LinkMailbox[any]{}

// Receive returns the next message from the process's mailbox, blocking until
// one arrives.
func (m LinkMailbox[T]) Receive() Message[T] {
	return receive[T](m.host, nil, nil, true)
}

// ReceiveTimeout is [LinkMailbox.Receive] bounded to timeout. On expiry the
// returned Message unwraps to [ErrTimeout].
func (m LinkMailbox[T]) ReceiveTimeout(timeout time.Duration) Message[T] {
	return receive[T](m.host, nil, &timeout, true)
}

// TagReceive returns the next message carrying exactly tag, blocking until
// one arrives. A pending death signal matches any tag filter.
func (m LinkMailbox[T]) TagReceive(tag Tag) Message[T] {
	return receive[T](m.host, &tag, nil, true)
}

// TagReceiveTimeout is [LinkMailbox.TagReceive] bounded to timeout.
func (m LinkMailbox[T]) TagReceiveTimeout(tag Tag, timeout time.Duration) Message[T] {
	return receive[T](m.host, &tag, &timeout, true)
}

// CatchLinkFailure returns the handle unchanged: the process already traps
// linked process deaths.
func (m LinkMailbox[T]) CatchLinkFailure() LinkMailbox[T] {
	return m
}

// FailIfLinkFails switches the process back to terminating when a linked
// process dies and consumes the handle, returning the non-trapping
// equivalent.
func (m LinkMailbox[T]) FailIfLinkFails() Mailbox[T] {
	m.host.SetLinkMode(TerminateOnLinkDeath)
	return Mailbox[T]{host: m.host}
}

// Transformer is the mode transformer implemented by both handle types. Each
// direction consumes the receiver and yields the handle of the requested
// mode; the identity direction returns an equivalent handle without touching
// the process's link mode.
type Transformer[T any] interface {
	CatchLinkFailure() LinkMailbox[T]
	FailIfLinkFails() Mailbox[T]
}
