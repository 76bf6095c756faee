package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/avaldes/excel-agent/pkg/agent"
	"github.com/avaldes/excel-agent/pkg/command"
)

// runREPL drives the interactive session: prompt, read, dispatch, repeat.
// Only the quit command ends the loop; command and chat errors are printed
// and the next prompt is issued.
func runREPL(app *agent.Agent, in io.Reader, out io.Writer) error {
	if app == nil {
		return fmt.Errorf("agent is required")
	}
	if in == nil {
		return fmt.Errorf("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}

	scanner := bufio.NewScanner(in)
	printWelcome(out)

	for {
		_, _ = fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		// Quit and help are intercepted before command parsing.
		if strings.EqualFold(input, "salir") {
			_, _ = fmt.Fprintln(out, "Adiós!")
			break
		}
		if strings.EqualFold(input, "ayuda") {
			printHelp(out)
			continue
		}

		if cmd, ok := command.Parse(input); ok {
			runCommand(app, cmd, out)
			continue
		}

		reply, err := app.Chat(input)
		if err != nil {
			_, _ = fmt.Fprintf(out, "Error al comunicarse con Deepseek: %v\n", err)
			continue
		}
		_, _ = fmt.Fprintln(out, reply)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("leer entrada: %w", err)
	}
	return nil
}

// runCommand executes one spreadsheet command and prints its outcome.
func runCommand(app *agent.Agent, cmd command.Command, out io.Writer) {
	switch c := cmd.(type) {
	case command.ReadFile:
		if err := app.ReadWorkbook(c.Path); err != nil {
			_, _ = fmt.Fprintf(out, "❌ Error al leer el archivo: %v\n", err)
			return
		}
		_, _ = fmt.Fprintln(out, "✅ Archivo leído correctamente")
	case command.CreateFile:
		if err := app.CreateWorkbook(c.Path); err != nil {
			_, _ = fmt.Fprintf(out, "❌ Error al crear el archivo: %v\n", err)
			return
		}
		_, _ = fmt.Fprintf(out, "✅ Archivo creado correctamente: %s\n", c.Path)
	case command.WriteData:
		if err := app.WriteWorkbook(c.Path, c.Data); err != nil {
			_, _ = fmt.Fprintf(out, "❌ Error al escribir datos: %v\n", err)
			return
		}
		_, _ = fmt.Fprintf(out, "✅ Datos escritos correctamente en %s\n", c.Path)
	}
}

func printWelcome(out io.Writer) {
	_, _ = fmt.Fprintln(out, "=== Agente de IA con Deepseek para Excel ===")
	_, _ = fmt.Fprintln(out, "Escribe 'ayuda' para ver comandos disponibles")
	_, _ = fmt.Fprintln(out, "Escribe 'salir' para terminar")
}

func printHelp(out io.Writer) {
	_, _ = fmt.Fprintln(out, "Comandos disponibles:")
	_, _ = fmt.Fprintln(out, "  leer_excel <archivo.xlsx> - Lee un archivo Excel")
	_, _ = fmt.Fprintln(out, "  crear_excel <archivo.xlsx> - Crea un nuevo archivo Excel")
	_, _ = fmt.Fprintln(out, "  escribir_excel <archivo.xlsx> <datos> - Escribe datos en un archivo Excel")
	_, _ = fmt.Fprintln(out, "  ayuda - Muestra esta información")
	_, _ = fmt.Fprintln(out, "  salir - Termina el programa")
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, "También puedes hacer preguntas sobre manipulación de Excel o solicitar ayuda.")
}
