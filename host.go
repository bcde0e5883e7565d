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

// Discriminators returned by [Host.Receive]. These values are part of the
// host protocol and must not change.
const (
	// NormalMessage means a data message matched and is ready to be read
	// through [Host.ReadPayload].
	NormalMessage uint32 = 0
	// SignalMessage means a linked process died and its death notice is the
	// surfaced message. Only processes in [TrapLinkDeath] mode can observe it.
	SignalMessage uint32 = 1
	// ReceiveTimeout means the wait expired before any message matched. No
	// message was consumed.
	ReceiveTimeout uint32 = 9027
)

// LinkMode is the process-wide setting for how the death of a linked process
// is handled. It is owned by the host and mutated only through
// [Mailbox.CatchLinkFailure] and [LinkMailbox.FailIfLinkFails].
type LinkMode uint32

const (
	// TrapLinkDeath delivers a linked peer's death to the mailbox as a signal
	// message.
	TrapLinkDeath LinkMode = iota
	// TerminateOnLinkDeath ends the process immediately when a linked peer
	// dies, bypassing the mailbox entirely.
	TerminateOnLinkDeath
)

// Host is the boundary to the process's message service. Mailbox handles are
// thin typed views over it; all real state (the queue, the scratch buffers,
// the link mode flag) lives behind this interface.
//
// Every method is scoped to the single process the Host value represents and
// must only be called from that process.
type Host interface {
	// Receive surfaces the next queued message carrying tag, waiting at most
	// timeoutMillis milliseconds. A tag of 0 matches any message; a
	// timeoutMillis of 0 waits forever. Messages that do not match are left
	// queued untouched. The return value is one of NormalMessage,
	// SignalMessage or ReceiveTimeout.
	Receive(tag int64, timeoutMillis uint32) uint32

	// MessageTag returns the correlation tag of the message surfaced by the
	// last Receive call. It is only meaningful immediately after a
	// NormalMessage or SignalMessage result.
	MessageTag() int64

	// ReadPayload copies the next chunk of the current message's payload into
	// p and returns the number of bytes copied. A return of 0 means the
	// payload is exhausted.
	ReadPayload(p []byte) int

	// WritePayload appends p to the outgoing message buffer and returns the
	// number of bytes accepted. The send path, not this package, decides when
	// the buffered message is delivered.
	WritePayload(p []byte) int

	// SetLinkMode sets the process-wide link death handling mode.
	SetLinkMode(mode LinkMode)
}
