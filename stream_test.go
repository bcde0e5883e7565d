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
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadStreamRead(t *testing.T) {
	h := &fakeHost{payload: []byte("streamed payload bytes")}
	stream := NewPayloadStream(h)

	// drain in small chunks; a zero return from the host is end of stream
	var drained []byte
	buf := make([]byte, 5)
	for {
		n, err := stream.Read(buf)
		drained = append(drained, buf[:n]...)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	assert.Equal(t, []byte("streamed payload bytes"), drained)

	// exhausted stream keeps reporting EOF
	n, err := stream.Read(buf)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestPayloadStreamReadEmptyBuffer(t *testing.T) {
	h := &fakeHost{payload: []byte("x")}
	stream := NewPayloadStream(h)

	n, err := stream.Read(nil)
	assert.Zero(t, n)
	assert.NoError(t, err)
}

func TestPayloadStreamWrite(t *testing.T) {
	h := &fakeHost{}
	stream := NewPayloadStream(h)

	n, err := stream.Write([]byte("outgoing"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, []byte("outgoing"), h.written.Bytes())
}
