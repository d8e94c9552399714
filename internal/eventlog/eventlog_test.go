package eventlog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterAppendsOneJSONObjectPerLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	w, err := NewWriter(path, 16)
	require.NoError(t, err)

	w.Write(MinimaxIter{Kind: "minimaxIter", Depth: 2, Value: 0.5, StateHash: "abc"})
	w.Write(StateEvaluation{Kind: "stateEvaluation", Depth: 3, Value: -0.25, StateHash: "def"})
	w.Close()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.Len(t, lines, 2)

	var first MinimaxIter
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, 2, first.Depth)

	var second StateEvaluation
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, -0.25, second.Value)
}

func TestWriterDropsEventsPastBacklog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	w, err := NewWriter(path, 1)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		w.Write(MinimaxIter{Kind: "minimaxIter", Depth: i})
	}
	w.Close()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var count int
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		count++
	}
	assert.LessOrEqual(t, count, 100)
}

func TestNilWriterWriteAndCloseAreNoOps(t *testing.T) {
	var w *Writer
	assert.NotPanics(t, func() {
		w.Write(MinimaxIter{Kind: "minimaxIter"})
		w.Close()
	})
}
