package formatter

import (
	"fmt"
	"strings"
)

// FormatShellWelcome renders the welcome banner shown on shell startup.
func FormatShellWelcome() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(StylePurple.Render("  huddle") + "\n")
	b.WriteString(StyleDim.Render("  ─────────────────────────────") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Análisis táctico e histórico de la NFL. Escribe tu pregunta.") + "\n")
	b.WriteString("\n")
	b.WriteString("  " + StyleGreen.Render("¿Cómo le va a KC en el 3er down con el pase?") + "\n")
	b.WriteString("  " + StyleGreen.Render("¿Quién ganó el último Steelers vs Ravens?") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  /ayuda para ejemplos, /equipos para la lista de equipos, /salir para terminar.") + "\n")

	return b.String()
}

type shellCommandHelp struct {
	name string
	desc string
}

// FormatShellHelp renders the shell command reference.
func FormatShellHelp() string {
	commands := []shellCommandHelp{
		{"<pregunta>", "Analiza la pregunta y muestra el resultado"},
		{"/equipos", "Lista de equipos por conferencia"},
		{"/glosario", "Términos usados en las respuestas"},
		{"/ayuda", "Ejemplos de preguntas"},
		{"/salir", "Terminar la sesión (también ctrl+c)"},
		{"↑ / ↓", "Recorrer el historial de preguntas"},
	}

	var b strings.Builder
	for _, c := range commands {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleGreen.Render(padRight(c.name, 12)), StyleDim.Render(c.desc)))
	}
	return RenderBox("Comandos", strings.TrimRight(b.String(), "\n"))
}
