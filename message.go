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

// Message is the outcome of a receive on a [LinkMailbox]: either a normal
// message, itself a payload or a receive error, or the death signal of a
// linked process.
type Message[T any] struct {
	payload T
	tag     Tag
	err     error
	signal  bool
}

// IsSignal reports whether the received message is a linked process's death
// signal.
func (m Message[T]) IsSignal() bool {
	return m.signal
}

// SignalTag returns the correlation tag identifying which link died. The
// second return value is false when the message is not a signal.
func (m Message[T]) SignalTag() (Tag, bool) {
	if !m.signal {
		return 0, false
	}
	return m.tag, true
}

// Normal returns the payload of a normal message, or the [ErrTimeout] or
// [DecodeError] that stands in for it. It panics when called on a death
// signal: callers use it only after structurally ruling out the signal case
// with [Message.IsSignal].
func (m Message[T]) Normal() (T, error) {
	if m.signal {
		panic("mailbox: message is a death signal")
	}
	return m.payload, m.err
}
