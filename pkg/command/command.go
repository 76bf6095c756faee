// Package command parses REPL input lines into spreadsheet commands.
package command

import "strings"

// Command is one recognized spreadsheet instruction. The concrete type
// carries the positional arguments of the matched verb.
type Command interface {
	command()
}

// ReadFile reads a workbook and summarizes it into conversation context.
type ReadFile struct {
	Path string
}

// CreateFile creates an empty workbook with one default sheet.
type CreateFile struct {
	Path string
}

// WriteData creates a workbook from an inline data blob. Data holds the
// tokens after the filename rejoined with single spaces; rows are separated
// by ';' and cells by ','.
type WriteData struct {
	Path string
	Data string
}

func (ReadFile) command()   {}
func (CreateFile) command() {}
func (WriteData) command()  {}

// Parse tokenizes a line on whitespace and matches the first token against
// the known verbs, case-sensitively. Lines that match no verb, or that miss
// required arguments, report ok=false and fall through to chat.
func Parse(line string) (Command, bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil, false
	}

	switch parts[0] {
	case "leer_excel":
		if len(parts) >= 2 {
			return ReadFile{Path: parts[1]}, true
		}
	case "crear_excel":
		if len(parts) >= 2 {
			return CreateFile{Path: parts[1]}, true
		}
	case "escribir_excel":
		if len(parts) >= 3 {
			return WriteData{Path: parts[1], Data: strings.Join(parts[2:], " ")}, true
		}
	}
	return nil, false
}
