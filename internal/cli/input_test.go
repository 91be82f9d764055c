package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetFloats(t *testing.T) {
	var out bytes.Buffer
	got, err := GetFloats(rdr("0.5, 1.25,3\n"), "Values?", &out)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.25, 3}, got)
}

func TestGetFloats_Empty(t *testing.T) {
	var out bytes.Buffer
	got, err := GetFloats(rdr("\n"), "Values?", &out)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseFloats_Invalid(t *testing.T) {
	_, err := parseFloats("1, two, 3")
	require.Error(t, err)
}
