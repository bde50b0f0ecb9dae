package news

import (
	"context"
	"fmt"
	"strings"
	"time"

	"llm-signal-bot/internal/logger"
	"llm-signal-bot/internal/types"
)

// Service turns scraped headlines into an extra context block for the
// oracle prompt. Disabled unless news enrichment is switched on in
// config; a failed scrape yields an empty block, never an error.
type Service struct {
	scraper      *Scraper
	maxHeadlines int
}

func NewService(maxHeadlines int) *Service {
	return &Service{
		scraper:      NewScraper(15 * time.Second),
		maxHeadlines: maxHeadlines,
	}
}

// ContextBlock returns a "Recent headlines:" section covering the given
// instruments, or "" when nothing could be scraped.
func (s *Service) ContextBlock(ctx context.Context, insts []types.Instrument) string {
	var lines []string
	for _, inst := range insts {
		hs := s.scraper.Headlines(ctx, inst.Key, s.maxHeadlines)
		for _, h := range hs {
			lines = append(lines, fmt.Sprintf("- [%s] %s (%s)", inst.Token, h.Title, h.Source))
		}
	}
	if len(lines) == 0 {
		return ""
	}
	logger.Info(ctx, "News context assembled", "headlines", len(lines))
	return "Recent headlines:\n" + strings.Join(lines, "\n")
}
