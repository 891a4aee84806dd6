package content

import (
	"encoding/json"
	"fmt"
	"strings"

	"chronotense/internal/catalog"
	"chronotense/internal/llm"
)

// entry is what the service caches per (level, options) key.
type entry struct {
	Tenses           map[catalog.TenseID]catalog.TenseContent `json:"tenses"`
	LevelDescription catalog.LevelDescription                 `json:"levelDescription"`
}

type levelResponse struct {
	LevelDescription *catalog.LevelDescription  `json:"levelDescription"`
	Tenses           map[string]json.RawMessage `json:"tenses"`
}

// parseAndMerge decodes a structured provider reply and overlays it on the
// fallback dataset. Tenses the reply omits or leaves with an empty field
// keep their fallback entry and unknown tense ids are dropped, so the
// result always has the twelve catalog keys.
func parseAndMerge(text string) (entry, error) {
	body := stripCodeFence(text)
	if body == "" {
		return entry{}, llm.ErrEmptyResponse
	}

	var raw any
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return entry{}, fmt.Errorf("decode response: %w", err)
	}
	if err := acceptedResponseSchema.Validate(raw); err != nil {
		return entry{}, err
	}

	var resp levelResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return entry{}, fmt.Errorf("decode response: %w", err)
	}

	tenses := catalog.FallbackContent()
	for id, msg := range resp.Tenses {
		tid := catalog.TenseID(id)
		if !tid.Valid() {
			continue
		}
		var c *catalog.TenseContent
		if err := json.Unmarshal(msg, &c); err != nil {
			return entry{}, fmt.Errorf("decode tense %s: %w", id, err)
		}
		if c != nil && c.Complete() {
			tenses[tid] = *c
		}
	}

	desc := catalog.DefaultLevelDescription()
	if resp.LevelDescription != nil && resp.LevelDescription.Complete() {
		desc = *resp.LevelDescription
	}

	return entry{Tenses: tenses, LevelDescription: desc}, nil
}

// stripCodeFence removes a ```json ... ``` wrapper some models add even in
// JSON mode.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = ""
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
