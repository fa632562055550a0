package service

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/ai4life/career-advisor-go/internal/constants"
	"github.com/ai4life/career-advisor-go/internal/domain"
	"github.com/ai4life/career-advisor-go/internal/service/cache"
)

const scrapedProgramsCacheKey = "advisor:scraper:programs"

// ScrapeSource is one admissions page carrying program listings.
type ScrapeSource struct {
	Name string
	URL  string
}

// ScraperService pulls current training-program listings from admission
// pages so major info served to students stays fresh.
type ScraperService struct {
	httpClient *http.Client
	cache      *cache.Service
	sources    []ScrapeSource
	logger     *zap.Logger
}

func NewScraperService(cacheService *cache.Service, sources []ScrapeSource, logger *zap.Logger) *ScraperService {
	logger.Info("Scraper initialized", zap.Int("sources", len(sources)))

	return &ScraperService{
		httpClient: &http.Client{
			Timeout: constants.ScraperConfig.Timeout,
		},
		cache:   cacheService,
		sources: sources,
		logger:  logger,
	}
}

// FetchPrograms returns all programs across the configured sources,
// served from cache when a recent scrape exists.
func (s *ScraperService) FetchPrograms(ctx context.Context) ([]domain.ScrapedProgram, error) {
	if s.cache != nil {
		if cached, found := s.cache.GetScrapedPrograms(ctx, scrapedProgramsCacheKey); found {
			s.logger.Debug("Scraper cache hit", zap.Int("programs", len(cached)))
			return cached, nil
		}
	}

	if len(s.sources) == 0 {
		return nil, fmt.Errorf("no scrape sources configured")
	}

	var mu sync.Mutex
	programs := make([]domain.ScrapedProgram, 0)
	fetchErrors := make([]error, 0)

	p := pool.New().WithMaxGoroutines(constants.ScraperConfig.Concurrency)
	for _, source := range s.sources {
		p.Go(func() {
			found, err := s.fetchSource(ctx, source)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.logger.Warn("Scrape source failed",
					zap.String("source", source.Name),
					zap.Error(err))
				fetchErrors = append(fetchErrors, err)
				return
			}
			programs = append(programs, found...)
		})
	}
	p.Wait()

	if len(programs) == 0 {
		if len(fetchErrors) > 0 {
			return nil, fmt.Errorf("all scrape sources failed: %w", fetchErrors[0])
		}
		return nil, &StructureChangedError{
			Message: "no programs found on any source - HTML structure may have changed",
		}
	}

	sort.SliceStable(programs, func(i, j int) bool {
		return programs[i].Title < programs[j].Title
	})

	if s.cache != nil {
		s.cache.SetScrapedPrograms(ctx, scrapedProgramsCacheKey, programs)
	}

	s.logger.Info("Scraper completed",
		zap.Int("programs", len(programs)),
		zap.Int("failed_sources", len(fetchErrors)))

	return programs, nil
}

func (s *ScraperService) fetchSource(ctx context.Context, source ScrapeSource) ([]domain.ScrapedProgram, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", source.URL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; CareerAdvisorBot/1.0)")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("HTML parse failed: %w", err)
	}

	return s.parsePrograms(doc, source), nil
}

func (s *ScraperService) parsePrograms(doc *goquery.Document, source ScrapeSource) []domain.ScrapedProgram {
	programs := make([]domain.ScrapedProgram, 0)
	parseErrors := 0

	doc.Find("article, .program-item, .major-item, .post").Each(func(i int, sel *goquery.Selection) {
		program, err := s.parseProgramElement(sel, source)
		if err != nil {
			parseErrors++
			s.logger.Debug("Failed to parse program element",
				zap.String("source", source.Name),
				zap.Error(err))
			return
		}
		programs = append(programs, *program)
	})

	if parseErrors > len(programs)/2 && parseErrors > 0 {
		s.logger.Warn("High parse error rate detected",
			zap.String("source", source.Name),
			zap.Int("successes", len(programs)),
			zap.Int("errors", parseErrors))
	}

	return programs
}

func (s *ScraperService) parseProgramElement(sel *goquery.Selection, source ScrapeSource) (*domain.ScrapedProgram, error) {
	title := strings.TrimSpace(sel.Find("h2, h3, .title").First().Text())
	if title == "" {
		return nil, fmt.Errorf("missing program title")
	}

	link := sel.Find("a").First()
	href, exists := link.Attr("href")
	if !exists {
		return nil, fmt.Errorf("missing program link for %q", title)
	}
	if strings.HasPrefix(href, "/") {
		href = strings.TrimSuffix(source.URL, "/") + href
	}

	summary := strings.TrimSpace(sel.Find("p, .excerpt, .summary").First().Text())

	return &domain.ScrapedProgram{
		Title:   title,
		URL:     href,
		Summary: summary,
	}, nil
}

// ValidateStructure confirms the configured sources still parse.
func (s *ScraperService) ValidateStructure(ctx context.Context) error {
	_, err := s.FetchPrograms(ctx)
	return err
}

type StructureChangedError struct {
	Message     string
	ParseErrors int
}

func (e *StructureChangedError) Error() string {
	return fmt.Sprintf("%s (parse errors: %d)", e.Message, e.ParseErrors)
}

func IsStructureError(err error) bool {
	_, ok := err.(*StructureChangedError)
	return ok
}
