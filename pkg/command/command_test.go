package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReadFile(t *testing.T) {
	cmd, ok := Parse("leer_excel ventas.xlsx")
	require.True(t, ok)
	assert.Equal(t, ReadFile{Path: "ventas.xlsx"}, cmd)
}

func TestParseCreateFile(t *testing.T) {
	cmd, ok := Parse("crear_excel informe.xlsx")
	require.True(t, ok)
	assert.Equal(t, CreateFile{Path: "informe.xlsx"}, cmd)
}

func TestParseWriteDataRejoinsTokens(t *testing.T) {
	cmd, ok := Parse("escribir_excel out.xlsx 1,2;3,4   5,6")
	require.True(t, ok)
	assert.Equal(t, WriteData{Path: "out.xlsx", Data: "1,2;3,4 5,6"}, cmd)
}

func TestParseHandlesExtraWhitespace(t *testing.T) {
	cmd, ok := Parse("  leer_excel   ventas.xlsx  ")
	require.True(t, ok)
	assert.Equal(t, ReadFile{Path: "ventas.xlsx"}, cmd)
}

func TestParseNoMatch(t *testing.T) {
	cases := map[string]string{
		"free text":     "qué hoja tiene más filas?",
		"empty line":    "",
		"missing path":  "leer_excel",
		"missing data":  "escribir_excel out.xlsx",
		"uppercase":     "LEER_EXCEL ventas.xlsx",
		"unknown verb":  "borrar_excel ventas.xlsx",
		"crear no path": "crear_excel",
	}
	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			cmd, ok := Parse(line)
			assert.False(t, ok)
			assert.Nil(t, cmd)
		})
	}
}
