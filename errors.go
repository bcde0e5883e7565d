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

import "errors"

// ErrTimeout is returned when no matching message arrived within the wait
// bound of a timeout-bounded receive. Nothing was consumed; a later receive
// can still succeed.
var ErrTimeout = errors.New("timed out while waiting for message")

// DecodeError reports that a received message did not decode into the
// declared payload type. The message was already removed from the queue when
// decoding started, so the queue has advanced past it; the mailbox itself
// remains fully usable.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "failed to decode message payload: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
