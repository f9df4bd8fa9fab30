package intelligence

import (
	"fmt"
	"sort"
	"strings"
)

// HelpGlossary maps the football terms the dashboard uses to short Spanish
// definitions.
var HelpGlossary = map[string]string{
	"epa":       "Expected Points Added: puntos esperados que gana o pierde el equipo con el balón en una jugada. Más alto es mejor.",
	"down":      "El intento (1 a 4) dentro de una serie ofensiva.",
	"zona roja": "Posición de campo a 20 yardas o menos de la zona de anotación rival.",
	"posesión":  "El equipo que tiene el balón en la jugada.",
	"éxito":     "Una jugada exitosa es la que termina con EPA positivo; la tasa de éxito es su porcentaje.",
	"touchdown": "Anotación de 6 puntos; se cuenta por jugada.",
	"temporada": "Año de la temporada regular (2021 a 2025 en las preguntas).",
	"yardas":    "Yardas ganadas en la jugada; negativas si se perdió terreno.",
	"promedio":  "El promedio de la liga es el EPA medio de todas las jugadas con EPA registrado.",
}

// FormatGlossary renders the glossary sorted by term.
func FormatGlossary() string {
	keys := make([]string, 0, len(HelpGlossary))
	for k := range HelpGlossary {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("- %s: %s\n", k, HelpGlossary[k]))
	}
	return b.String()
}
