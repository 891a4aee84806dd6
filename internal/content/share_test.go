package content

import (
	"net/url"
	"strings"
	"testing"

	"chronotense/internal/catalog"
)

func TestBuildShare(t *testing.T) {
	lc := LevelContent{
		Level:            catalog.LevelB1,
		Tenses:           catalog.FallbackContent(),
		LevelDescription: catalog.DefaultLevelDescription(),
	}
	custom := lc.Tenses[catalog.SimpleFuture]
	custom.Title = ""
	custom.Example = "I'll + you'll & we'll"
	lc.Tenses[catalog.SimpleFuture] = custom

	share, err := BuildShare(lc)
	if err != nil {
		t.Fatalf("BuildShare: %v", err)
	}

	if share.Subject != "English Tenses - CEFR Level B1" {
		t.Fatalf("unexpected subject %q", share.Subject)
	}

	past := strings.Index(share.Body, "== Past ==")
	present := strings.Index(share.Body, "== Present ==")
	future := strings.Index(share.Body, "== Future ==")
	if past < 0 || present < past || future < present {
		t.Fatalf("time frames missing or out of order:\n%s", share.Body)
	}
	if !strings.Contains(share.Body, "\nSimple Future\n") {
		t.Fatalf("empty title should fall back to the default title:\n%s", share.Body)
	}
	if !strings.Contains(share.Body, catalog.DefaultLevelDescription().Skills.Writing) {
		t.Fatalf("skills missing from body")
	}

	if !strings.HasPrefix(share.MailtoURL, "mailto:?subject=") {
		t.Fatalf("unexpected mailto url %q", share.MailtoURL)
	}
	if strings.Contains(share.MailtoURL, "+") {
		t.Fatalf("mailto url should not encode spaces as '+': %q", share.MailtoURL)
	}

	parsed, err := url.Parse(share.MailtoURL)
	if err != nil {
		t.Fatalf("parse mailto: %v", err)
	}
	q := parsed.Query()
	if q.Get("subject") != share.Subject || q.Get("body") != share.Body {
		t.Fatalf("mailto query does not round trip")
	}
}
