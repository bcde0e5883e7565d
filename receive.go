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

import (
	"fmt"
	"math"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// receive is the selective-receive engine shared by both handle types. It
// issues exactly one request to the host and classifies the outcome.
//
// A nil tag matches any message; note that it maps to the same wire value as
// the literal tag 0 (see [Tag]). A nil timeout blocks forever; a non-nil one
// waits at most its duration, with positive sub-millisecond values rounded up
// to one millisecond so a bounded wait is never collapsed into "block
// forever" on the wire. trapping reports whether the calling handle is
// allowed to observe death signals; the host guarantees a non-trapping
// process can never be handed one, so seeing it anyway is a broken invariant
// and panics.
func receive[T any](h Host, tag *Tag, timeout *time.Duration, trapping bool) Message[T] {
	var wireTag int64
	if tag != nil {
		wireTag = int64(*tag)
	}
	var timeoutMillis uint32
	if timeout != nil {
		millis := timeout.Milliseconds()
		if millis <= 0 {
			// 0 on the wire means block forever; the smallest bounded wait
			// is one millisecond.
			millis = 1
		} else if millis > math.MaxUint32 {
			// the wire cannot carry a longer bounded wait
			millis = math.MaxUint32
		}
		timeoutMillis = uint32(millis)
	}

	switch kind := h.Receive(wireTag, timeoutMillis); kind {
	case SignalMessage:
		if !trapping {
			panic("mailbox: received a death signal on a non-trapping mailbox")
		}
		return Message[T]{signal: true, tag: Tag(h.MessageTag())}
	case ReceiveTimeout:
		return Message[T]{err: ErrTimeout}
	case NormalMessage:
		// The message is consumed at this point; a decode failure advances
		// the queue past it but leaves the mailbox usable.
		msgTag := Tag(h.MessageTag())
		var payload T
		if err := cbor.NewDecoder(NewPayloadStream(h)).Decode(&payload); err != nil {
			return Message[T]{tag: msgTag, err: &DecodeError{Err: err}}
		}
		return Message[T]{tag: msgTag, payload: payload}
	default:
		panic(fmt.Sprintf("mailbox: unknown receive discriminator %d", kind))
	}
}
