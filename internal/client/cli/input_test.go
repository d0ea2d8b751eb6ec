package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	text, err := GetSimpleText(readerFromLines("  hello  "), "Say hi", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Contains(t, out.String(), "Say hi")
}

func TestGetTextDefault(t *testing.T) {
	var out bytes.Buffer

	text, err := GetTextDefault(readerFromLines(""), "Title", "1984", &out)
	require.NoError(t, err)
	assert.Equal(t, "1984", text, "empty input keeps the default")

	text, err = GetTextDefault(readerFromLines("Animal Farm"), "Title", "1984", &out)
	require.NoError(t, err)
	assert.Equal(t, "Animal Farm", text)
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer

	n, err := GetInt(readerFromLines("42"), "Id", &out)
	require.NoError(t, err)
	assert.EqualValues(t, 42, n)

	_, err = GetInt(readerFromLines("forty-two"), "Id", &out)
	require.Error(t, err)
}

func TestGetIntDefault(t *testing.T) {
	var out bytes.Buffer

	n, err := GetIntDefault(readerFromLines(""), "Year", 1949, &out)
	require.NoError(t, err)
	assert.EqualValues(t, 1949, n)

	n, err = GetIntDefault(readerFromLines("2024"), "Year", 1949, &out)
	require.NoError(t, err)
	assert.EqualValues(t, 2024, n)
}

func TestGetConfirmation(t *testing.T) {
	var out bytes.Buffer

	assert.True(t, GetConfirmation(readerFromLines("y"), "Delete?", &out))
	assert.True(t, GetConfirmation(readerFromLines("YES"), "Delete?", &out))
	assert.False(t, GetConfirmation(readerFromLines("n"), "Delete?", &out))
	assert.False(t, GetConfirmation(readerFromLines(""), "Delete?", &out))
	assert.False(t, GetConfirmation(readerFromLines("sure"), "Delete?", &out))
}

func TestGetPasswordUsesSeam(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", string(pw))
	assert.Contains(t, out.String(), "Enter password")
}
