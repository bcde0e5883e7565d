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

import "io"

// payloadStream bridges the host's per-message scratch buffers to the
// streaming reader/writer expected by the payload codec. Reads drain the
// current inbound message; writes fill the outgoing message buffer. Every
// call is a direct pass-through, there is no buffering here.
type payloadStream struct {
	host Host
}

// NewPayloadStream returns an [io.ReadWriter] over h's message scratch
// buffers: Read pulls from the current inbound message until it is exhausted,
// Write appends to the outgoing message buffer. It is used internally to
// decode received payloads and by send paths to encode outgoing ones.
func NewPayloadStream(h Host) io.ReadWriter {
	return payloadStream{host: h}
}

func (s payloadStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n := s.host.ReadPayload(p)
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

func (s payloadStream) Write(p []byte) (int, error) {
	return s.host.WritePayload(p), nil
}
