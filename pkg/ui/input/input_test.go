package input_test

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/termsay/pkg/errors"
	"github.com/arthur-debert/termsay/pkg/ui/input"
)

func TestStreamReaderReadsLines(t *testing.T) {
	var out bytes.Buffer
	r := input.NewStreamReader(strings.NewReader("first\r\nsecond\nlast"), &out)

	line, err := r.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = r.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "second", line)

	line, err = r.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = r.ReadLine("> ")
	assert.ErrorIs(t, err, input.ErrInterrupted)

	assert.Equal(t, "> > > ", out.String())
}

func TestStreamReaderEmptyLine(t *testing.T) {
	r := input.NewStreamReader(strings.NewReader("\n"), nil)

	line, err := r.ReadLine("?")
	require.NoError(t, err)
	assert.Equal(t, "", line)
}

func TestStreamReaderEOFIsInterrupt(t *testing.T) {
	r := input.NewStreamReader(strings.NewReader(""), nil)

	_, err := r.ReadLine("")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInterrupted))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, stderrors.New("device gone") }

func TestStreamReaderReadError(t *testing.T) {
	r := input.NewStreamReader(failingReader{}, nil)

	_, err := r.ReadLine("")
	require.Error(t, err)
	assert.Equal(t, errors.ErrIO, errors.GetErrorCode(err))
}

func TestIsTerminalNil(t *testing.T) {
	assert.False(t, input.IsTerminal(nil))
}
