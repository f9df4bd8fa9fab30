package intelligence

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// QuestionExample is a sample question shown when a question is not
// understood.
type QuestionExample struct {
	Kind     string // "Táctico" or "Histórico"
	Question string
}

// HelpAnswer is the fallback shown for questions that dispatch to
// PlanAmbiguous.
type HelpAnswer struct {
	Answer   string
	Examples []QuestionExample
	Glossary []string
}

// FallbackExamples are the sample questions, with the words the extractor
// keys on marked in bold markdown.
var FallbackExamples = []QuestionExample{
	{Kind: "Táctico", Question: "¿Cómo le va a los **Cowboys** con el **pase** en **zona roja**?"},
	{Kind: "Histórico", Question: "¿Quién **ganó** el último juego de los **Chiefs**?"},
}

const fallbackAnswer = "No estoy seguro de qué me preguntas."

// FallbackHelp builds the help shown for an unrecognised question. Glossary
// terms mentioned in the question are appended so "¿qué es epa?" still gets
// a useful answer.
func FallbackHelp(question string) *HelpAnswer {
	lowered := cases.Lower(language.Spanish).String(question)

	var hits []string
	for term, def := range HelpGlossary {
		if strings.Contains(lowered, term) {
			hits = append(hits, fmt.Sprintf("%s: %s", term, def))
		}
	}
	sort.Strings(hits)

	return &HelpAnswer{
		Answer:   fallbackAnswer,
		Examples: append([]QuestionExample(nil), FallbackExamples...),
		Glossary: hits,
	}
}

// ExamplesMarkdown renders the examples as a markdown list.
func (h *HelpAnswer) ExamplesMarkdown() string {
	var b strings.Builder
	b.WriteString("**Intenta ser más específico. Por ejemplo:**\n\n")
	for _, ex := range h.Examples {
		b.WriteString(fmt.Sprintf("- *%s:* \"%s\"\n", ex.Kind, ex.Question))
	}
	return b.String()
}
