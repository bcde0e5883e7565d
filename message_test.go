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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageNormal(t *testing.T) {
	msg := Message[string]{payload: "ok", tag: 5}

	assert.False(t, msg.IsSignal())
	_, ok := msg.SignalTag()
	assert.False(t, ok)

	payload, err := msg.Normal()
	require.NoError(t, err)
	assert.Equal(t, "ok", payload)
}

func TestMessageSignal(t *testing.T) {
	msg := Message[string]{signal: true, tag: 3}

	assert.True(t, msg.IsSignal())
	tag, ok := msg.SignalTag()
	require.True(t, ok)
	assert.Equal(t, Tag(3), tag)

	assert.Panics(t, func() {
		_, _ = msg.Normal()
	})
}

func TestMessageTimeoutError(t *testing.T) {
	msg := Message[string]{err: ErrTimeout}

	require.False(t, msg.IsSignal())
	_, err := msg.Normal()
	assert.ErrorIs(t, err, ErrTimeout)
}
