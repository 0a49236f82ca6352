// Package prompt builds the instructions sent to the model for every
// analysis kind. All builders are pure functions of their inputs.
package prompt

import (
	"strconv"
	"strings"
)

const jsonOnlyRule = "Responda apenas com o JSON acima, sem texto antes ou depois e sem blocos de código markdown."

type Section struct {
	Title string
	Lines []string
}

// Template is the structure shared by every prompt: persona, numbered
// instructions, labelled context sections, the literal JSON shape and
// closing notes. Empty parts are left out.
type Template struct {
	Persona      string
	Instructions []string
	Sections     []Section
	Schema       string
	// Failure is the JSON the model should send when it cannot do the task.
	FailureWhen string
	Failure     string
	Notes       []string
}

func (t Template) Render() string {
	var b strings.Builder
	b.WriteString(t.Persona)

	if len(t.Instructions) > 0 {
		b.WriteString("\n\nINSTRUÇÕES CRÍTICAS:")
		for i, in := range t.Instructions {
			b.WriteString("\n")
			b.WriteString(strconv.Itoa(i + 1))
			b.WriteString(". ")
			b.WriteString(in)
		}
	}

	for _, s := range t.Sections {
		if len(s.Lines) == 0 {
			continue
		}
		b.WriteString("\n\n")
		b.WriteString(s.Title)
		b.WriteString(":")
		for _, l := range s.Lines {
			b.WriteString("\n- ")
			b.WriteString(l)
		}
	}

	if t.Schema != "" {
		b.WriteString("\n\nRETORNE EXATAMENTE NESTE FORMATO JSON (sem markdown, sem explicações extras):\n")
		b.WriteString(t.Schema)
	}
	if t.Failure != "" {
		b.WriteString("\n\n")
		b.WriteString(t.FailureWhen)
		b.WriteString(", retorne:\n")
		b.WriteString(t.Failure)
	}

	notes := t.Notes
	if t.Schema != "" {
		notes = append(append([]string(nil), notes...), jsonOnlyRule)
	}
	if len(notes) > 0 {
		b.WriteString("\n\nIMPORTANTE:")
		for _, n := range notes {
			b.WriteString("\n- ")
			b.WriteString(n)
		}
	}
	return b.String()
}

// num prints a float without trailing zeros: 70 -> "70", 70.5 -> "70.5".
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
