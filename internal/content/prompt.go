package content

import (
	"fmt"
	"strings"

	"chronotense/internal/catalog"
)

const (
	modalsDirective       = "IMPORTANT: Where grammatically natural for the tense, include modal verbs (can, could, should, might, must, would) in the EXAMPLE sentences."
	conditionalsDirective = "IMPORTANT: Where grammatically natural for the tense, try to structure the EXAMPLE sentences as conditionals (using 'if' clauses)."

	modalsConstraint       = "Include a modal verb (can, could, should, etc.)."
	conditionalsConstraint = "Structure the sentence as a conditional (if-clause)."
)

const levelGuidelines = `General Guidelines:
- For A1/A2 (Basic User): Use simple vocabulary, short sentences, and concrete everyday examples.
  * Specific Instruction for A2: For 'Present Continuous' and 'Simple Past', focus on describing ongoing actions and past events related to personal experiences and immediate surroundings.
- For B1/B2 (Independent User): Use more complex sentence structures, wider vocabulary, and examples covering work, school, and travel.
  * Specific Instruction for B1: For 'Present Perfect' and 'Past Continuous', ensure the sentences can describe experiences, events, and personal opinions.
- For C1/C2 (Proficient User): Use sophisticated vocabulary, nuanced explanations, and complex examples involving abstract ideas or formal contexts.
  * Specific Instruction for C1: For 'Past Perfect Continuous' and 'Simple Future', use sophisticated language and idiomatic expressions to convey ideas fluently and spontaneously.`

// optionSentences returns one sentence per enabled option, modals first.
func optionSentences(opts Options, modals, conditionals string) []string {
	var out []string
	if opts.IncludeModals {
		out = append(out, modals)
	}
	if opts.IncludeConditionals {
		out = append(out, conditionals)
	}
	return out
}

func levelSystemInstruction(level catalog.Level, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert English language teacher specializing in the CEFR framework.\n")
	fmt.Fprintf(&b, "Your task is to generate explanations and examples for the 12 English tenses tailored specifically to a student at the %s level.\n", level)

	if directives := optionSentences(opts, modalsDirective, conditionalsDirective); len(directives) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(directives, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(levelGuidelines)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Also provide a brief summary of what the %s level means in terms of language proficiency (Speaking, Listening, Reading, Writing).", level)

	return b.String()
}

func levelPrompt(level catalog.Level) string {
	return fmt.Sprintf("Generate content for CEFR Level %s.", level)
}

func examplePrompt(level catalog.Level, tenseTitle, currentExample string, opts Options) string {
	lines := []string{
		fmt.Sprintf("Generate a single, short English sentence example for the '%s' tense at CEFR level %s.", tenseTitle, level),
	}
	if constraints := optionSentences(opts, modalsConstraint, conditionalsConstraint); len(constraints) > 0 {
		lines = append(lines, strings.Join(constraints, " "))
	}
	lines = append(lines,
		fmt.Sprintf("It must be different from this example: %q.", currentExample),
		"Return ONLY the sentence text, no quotes or explanations.",
	)
	return strings.Join(lines, "\n")
}
