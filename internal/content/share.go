package content

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
	"text/template"

	"chronotense/internal/catalog"
)

// Share is a plain-text digest of a level's content, ready to mail.
type Share struct {
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	MailtoURL string `json:"mailtoUrl"`
}

var shareTemplate = template.Must(template.New("share").Parse(
	`CEFR Level {{.Level}}

{{.Description.Summary}}

Speaking: {{.Description.Skills.Speaking}}
Listening: {{.Description.Skills.Listening}}
Reading: {{.Description.Skills.Reading}}
Writing: {{.Description.Skills.Writing}}
{{range .Frames}}
== {{.Name}} ==
{{range .Tenses}}
{{.Title}}
  Explanation: {{.Explanation}}
  Example: "{{.Example}}"
  Use case: {{.UseCase}}
{{end}}{{end}}`))

type shareFrame struct {
	Name   catalog.TimeFrame
	Tenses []catalog.TenseContent
}

// BuildShare renders lc as a digest grouped by time frame in timeline order.
// Tenses with no title fall back to the catalog's default title.
func BuildShare(lc LevelContent) (Share, error) {
	data := struct {
		Level       catalog.Level
		Description catalog.LevelDescription
		Frames      []shareFrame
	}{
		Level:       lc.Level,
		Description: lc.LevelDescription,
	}

	for _, tf := range catalog.TimeFrames() {
		frame := shareFrame{Name: tf}
		for _, def := range catalog.TensesIn(tf) {
			c := lc.Tenses[def.ID]
			if c.Title == "" {
				c.Title = def.DefaultTitle
			}
			frame.Tenses = append(frame.Tenses, c)
		}
		data.Frames = append(data.Frames, frame)
	}

	var buf bytes.Buffer
	if err := shareTemplate.Execute(&buf, data); err != nil {
		return Share{}, fmt.Errorf("render share: %w", err)
	}

	subject := fmt.Sprintf("English Tenses - CEFR Level %s", lc.Level)
	body := buf.String()

	// mailto wants %20 rather than '+' for spaces.
	query := "subject=" + strings.ReplaceAll(url.QueryEscape(subject), "+", "%20") +
		"&body=" + strings.ReplaceAll(url.QueryEscape(body), "+", "%20")

	return Share{
		Subject:   subject,
		Body:      body,
		MailtoURL: "mailto:?" + query,
	}, nil
}
