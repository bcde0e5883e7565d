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

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapWritesJSONEntries(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(DebugLevel, buffer)

	logger.Debugf("hello %s", "world")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &entry))
	assert.Equal(t, "hello world", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.Contains(t, entry, "timestamp")
}

func TestZapLevelFiltering(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(ErrorLevel, buffer)

	logger.Info("quiet")
	logger.Warnf("still %s", "quiet")
	assert.Zero(t, buffer.Len())

	logger.Error("loud")
	assert.NotZero(t, buffer.Len())
}

func TestZapAccessors(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(WarningLevel, buffer)

	assert.Equal(t, WarningLevel, logger.LogLevel())
	require.Len(t, logger.LogOutput(), 1)
	assert.Same(t, buffer, logger.LogOutput()[0])
	assert.NotNil(t, logger.StdLogger())
	assert.NoError(t, logger.Sync())
}
