package content

import (
	"chronotense/internal/catalog"
	"chronotense/internal/llm"
)

var (
	// levelResponseSchema is declared to the provider: every tense and the
	// level description are required.
	levelResponseSchema = buildLevelSchema(true)

	// acceptedResponseSchema checks what came back. Whole tenses or the level
	// description may be missing and are backfilled, but anything present
	// must be well formed.
	acceptedResponseSchema = buildLevelSchema(false)
)

func tenseSchema() *llm.Schema {
	fields := []string{"title", "explanation", "example", "useCase"}
	props := make(map[string]*llm.Schema, len(fields))
	for _, f := range fields {
		props[f] = &llm.Schema{Type: llm.TypeString}
	}
	return &llm.Schema{
		Type:             llm.TypeObject,
		Properties:       props,
		PropertyOrdering: fields,
		Required:         fields,
	}
}

func levelDescriptionSchema() *llm.Schema {
	skills := []string{"speaking", "listening", "reading", "writing"}
	skillProps := make(map[string]*llm.Schema, len(skills))
	for _, s := range skills {
		skillProps[s] = &llm.Schema{Type: llm.TypeString}
	}
	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"summary": {Type: llm.TypeString},
			"skills": {
				Type:             llm.TypeObject,
				Properties:       skillProps,
				PropertyOrdering: skills,
				Required:         skills,
			},
		},
		PropertyOrdering: []string{"summary", "skills"},
		Required:         []string{"summary", "skills"},
	}
}

func buildLevelSchema(requireAll bool) *llm.Schema {
	ids := catalog.TenseIDs()
	tenseProps := make(map[string]*llm.Schema, len(ids))
	ordering := make([]string, 0, len(ids))
	for _, id := range ids {
		tenseProps[string(id)] = tenseSchema()
		ordering = append(ordering, string(id))
	}

	tenses := &llm.Schema{
		Type:             llm.TypeObject,
		Properties:       tenseProps,
		PropertyOrdering: ordering,
	}
	root := &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"levelDescription": levelDescriptionSchema(),
			"tenses":           tenses,
		},
		PropertyOrdering: []string{"levelDescription", "tenses"},
	}

	if requireAll {
		tenses.Required = ordering
		root.Required = []string{"levelDescription", "tenses"}
	}
	return root
}
