package news

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"llm-signal-bot/internal/logger"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Headline is a scraped article title with its source link.
type Headline struct {
	Title  string
	URL    string
	Source string
}

// Scraper pulls recent headlines for a symbol from financial news sites.
type Scraper struct {
	sources []Source
	timeout time.Duration
}

// Source defines one news site to scrape.
type Source struct {
	Name       string
	BaseURL    string
	SearchPath string // {symbol} is replaced with the lowercase symbol
	Container  string
	Title      string
	Link       string
}

func NewScraper(timeout time.Duration) *Scraper {
	return &Scraper{
		sources: defaultSources(),
		timeout: timeout,
	}
}

func defaultSources() []Source {
	return []Source{
		{
			Name:       "MoneyControl",
			BaseURL:    "https://www.moneycontrol.com",
			SearchPath: "/news/tags/{symbol}.html",
			Container:  "li.clearfix",
			Title:      "h2 a, h3 a",
			Link:       "h2 a, h3 a",
		},
		{
			Name:       "EconomicTimes",
			BaseURL:    "https://economictimes.indiatimes.com",
			SearchPath: "/topic/{symbol}",
			Container:  "div.story-box",
			Title:      "a",
			Link:       "a",
		},
	}
}

// Headlines scrapes up to max headlines for the symbol across all
// sources. A failing source is skipped, not fatal.
func (s *Scraper) Headlines(ctx context.Context, symbol string, max int) []Headline {
	var all []Headline
	for _, src := range s.sources {
		if len(all) >= max {
			break
		}
		hs, err := s.scrapeSource(src, symbol, max-len(all))
		if err != nil {
			logger.Warn(ctx, "Headline scrape failed", "source", src.Name, "symbol", symbol, "error", err)
			continue
		}
		all = append(all, hs...)
	}
	if len(all) > max {
		all = all[:max]
	}
	return all
}

func (s *Scraper) scrapeSource(src Source, symbol string, max int) ([]Headline, error) {
	var headlines []Headline

	c := colly.NewCollector(
		colly.AllowedDomains(hostOf(src.BaseURL)),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(s.timeout)
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", userAgent)
	})

	c.OnHTML(src.Container, func(e *colly.HTMLElement) {
		if len(headlines) >= max {
			return
		}
		title := strings.TrimSpace(e.ChildText(src.Title))
		link := e.ChildAttr(src.Link, "href")
		if title == "" || link == "" {
			return
		}
		if !strings.HasPrefix(link, "http") {
			link = src.BaseURL + link
		}
		headlines = append(headlines, Headline{Title: title, URL: link, Source: src.Name})
	})

	searchURL := src.BaseURL + strings.ReplaceAll(src.SearchPath, "{symbol}", strings.ToLower(symbol))
	if err := c.Visit(searchURL); err != nil {
		return nil, err
	}
	c.Wait()
	return headlines, nil
}

// ArticleSnippet fetches the first paragraphs of an article page. Used
// when a headline alone is too thin for the oracle prompt.
func (s *Scraper) ArticleSnippet(ctx context.Context, articleURL string, maxLen int) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{Timeout: s.timeout}
	resp, err := client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}

	var parts []string
	total := 0
	doc.Find("article p, div.article-body p, div.story-content p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if len(text) < 20 {
			return true
		}
		parts = append(parts, text)
		total += len(text)
		return total < maxLen
	})

	snippet := strings.Join(parts, " ")
	if len(snippet) > maxLen {
		snippet = snippet[:maxLen]
	}
	return snippet
}

func hostOf(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
