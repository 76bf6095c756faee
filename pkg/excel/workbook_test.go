package excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vacio.xlsx")

	require.NoError(t, Create(path))

	sheets, err := Read(path)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	for _, rows := range sheets {
		assert.Empty(t, rows)
	}
}

func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	require.NoError(t, Write(path, " 1 ,2; 3,  4 "))

	sheets, err := Read(path)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	for _, rows := range sheets {
		assert.Equal(t, [][]string{{"1", "2"}, {"3", "4"}}, rows)
	}
}

func TestWriteOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	require.NoError(t, Write(path, "a,b;c,d;e,f"))
	require.NoError(t, Write(path, "1,2"))

	sheets, err := Read(path)
	require.NoError(t, err)
	for _, rows := range sheets {
		assert.Equal(t, [][]string{{"1", "2"}}, rows)
	}
}

func TestCreateOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.xlsx")

	require.NoError(t, Write(path, "1,2;3,4"))
	require.NoError(t, Create(path))

	sheets, err := Read(path)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	for _, rows := range sheets {
		assert.Empty(t, rows)
	}
}

func TestReadMissingFileReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-existe.xlsx")

	_, err := Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
