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

// Package mailbox gives a process a typed handle to its own inbound message
// queue. A handle supports blocking receive, tag-filtered selective receive
// and timeout-bounded waits. Processes that are linked to others can switch
// their handle into trapping mode, turning a linked peer's death into an
// ordinary receivable message instead of terminating the process.
//
// The queue itself, message delivery and process scheduling belong to a host
// message service behind the [Host] interface; this package only implements
// the typed, selective, failure-aware access pattern on top of it. Payloads
// cross the host boundary as self-describing CBOR streamed through the
// per-message scratch buffer.
//
// A handle represents "this process's inbox". It is exclusively owned by the
// process it was created for and must not be shared with or invoked from
// another goroutine.
package mailbox
