package news

import (
	"testing"
	"time"
)

func TestHostOf(t *testing.T) {
	if got := hostOf("https://www.moneycontrol.com"); got != "www.moneycontrol.com" {
		t.Errorf("expected moneycontrol host, got %q", got)
	}
	if got := hostOf("://bad"); got != "" {
		t.Errorf("expected empty host for invalid URL, got %q", got)
	}
}

func TestDefaultSourcesAreComplete(t *testing.T) {
	for _, src := range defaultSources() {
		if src.Name == "" || src.BaseURL == "" || src.SearchPath == "" {
			t.Errorf("source %+v missing identity fields", src)
		}
		if src.Container == "" || src.Title == "" || src.Link == "" {
			t.Errorf("source %s missing selectors", src.Name)
		}
	}
}

func TestNewService(t *testing.T) {
	svc := NewService(5)
	if svc.scraper == nil {
		t.Fatal("expected scraper to be initialized")
	}
	if svc.maxHeadlines != 5 {
		t.Errorf("expected maxHeadlines 5, got %d", svc.maxHeadlines)
	}
	if svc.scraper.timeout != 15*time.Second {
		t.Errorf("unexpected scraper timeout %v", svc.scraper.timeout)
	}
}
