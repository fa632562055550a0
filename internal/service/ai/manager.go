package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ai4life/career-advisor-go/internal/constants"
	"github.com/ai4life/career-advisor-go/internal/util"
)

// ErrNoProvider is returned when no language-model backend is
// configured at all. Callers switch to the rule engine on it.
var ErrNoProvider = fmt.Errorf("no language model provider configured")

// Manager drives a primary provider with an optional fallback behind a
// shared circuit breaker. When every live path fails, callers degrade
// to the local rule engine.
type Manager struct {
	primary        Provider
	fallback       Provider
	logger         *zap.Logger
	circuitBreaker *util.CircuitBreaker
}

type ManagerConfig struct {
	GeminiAPIKey       string
	OpenAIAPIKey       string
	DefaultGeminiModel string
	DefaultOpenAIModel string
	EnableFallback     bool
}

func NewManager(ctx context.Context, cfg ManagerConfig, logger *zap.Logger) (*Manager, error) {
	m := &Manager{logger: logger}

	gemini, err := NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.DefaultGeminiModel, logger)
	if err != nil {
		return nil, err
	}
	if gemini != nil {
		m.primary = gemini
		logger.Info("Gemini provider enabled", zap.String("model", gemini.defaultModel))
	}

	if cfg.EnableFallback {
		if openaiProv := NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.DefaultOpenAIModel, logger); openaiProv != nil {
			if m.primary == nil {
				m.primary = openaiProv
			} else {
				m.fallback = openaiProv
			}
			logger.Info("OpenAI provider enabled", zap.String("model", openaiProv.defaultModel))
		}
	}

	if m.primary == nil {
		logger.Warn("no model API keys configured, running on local rule engine only")
		return m, nil
	}

	m.circuitBreaker = util.NewCircuitBreaker(
		constants.CircuitBreakerConfig.FailureThreshold,
		constants.CircuitBreakerConfig.ResetTimeout,
		constants.CircuitBreakerConfig.HealthCheckInterval,
		m.healthCheckPing,
		logger,
	)

	return m, nil
}

// Enabled reports whether any live backend is configured.
func (m *Manager) Enabled() bool {
	return m != nil && m.primary != nil
}

// GenerateText runs the provider chain and returns the raw text with
// generation metadata.
func (m *Manager) GenerateText(ctx context.Context, prompt string, preset ModelPreset, opts *GenerateOptions) (string, *GenerateMetadata, error) {
	if !m.Enabled() {
		return "", nil, ErrNoProvider
	}
	if !m.circuitBreaker.CanExecute() {
		status := m.circuitBreaker.GetStatus()
		m.logger.Error("AI service unavailable (circuit open)",
			zap.String("state", status.State.String()),
			zap.Int("failure_count", status.FailureCount),
		)
		return "", nil, fmt.Errorf("language model temporarily unavailable")
	}

	result, err := m.primary.Generate(ctx, prompt, preset, opts)
	if err == nil {
		m.circuitBreaker.RecordSuccess()
		return result.Text, &GenerateMetadata{
			Provider: m.primary.Name(),
			Model:    result.Model,
		}, nil
	}
	primaryErr := err

	if m.fallback != nil {
		result, err = m.fallback.Generate(ctx, prompt, preset, opts)
		if err == nil {
			m.circuitBreaker.RecordSuccess()
			return result.Text, &GenerateMetadata{
				Provider:     m.fallback.Name(),
				Model:        result.Model,
				UsedFallback: true,
			}, nil
		}
	}

	m.recordFailure(primaryErr, err)
	return "", nil, fmt.Errorf("all language model backends failed: %w", primaryErr)
}

// GenerateJSON generates in JSON mode and unmarshals into dest,
// stripping markdown code fences first.
func (m *Manager) GenerateJSON(ctx context.Context, prompt string, preset ModelPreset, dest any, opts *GenerateOptions) (*GenerateMetadata, error) {
	if opts == nil {
		opts = &GenerateOptions{}
	}
	opts.JSONMode = true

	text, metadata, err := m.GenerateText(ctx, prompt, preset, opts)
	if err != nil {
		return nil, err
	}

	cleaned := stripCodeFences(text)
	if cleaned == "" {
		return nil, fmt.Errorf("%s API returned empty response", metadata.Provider)
	}

	if err := json.Unmarshal([]byte(cleaned), dest); err != nil {
		m.logger.Error("Failed to unmarshal JSON response",
			zap.String("provider", metadata.Provider),
			zap.Error(err),
			zap.String("response_preview", util.TruncateString(cleaned, 200)),
		)
		return nil, fmt.Errorf("invalid JSON from %s: %w", metadata.Provider, err)
	}

	return metadata, nil
}

func stripCodeFences(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, "```json"))
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, "```"))
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimSpace(strings.TrimSuffix(cleaned, "```"))
	}
	return cleaned
}

func (m *Manager) recordFailure(errs ...error) {
	serviceFailure := false
	rateLimited := false
	for _, err := range errs {
		if isServiceFailure(err) {
			serviceFailure = true
		}
		if isRateLimitError(err) {
			rateLimited = true
		}
	}
	if !serviceFailure {
		return
	}
	timeout := constants.CircuitBreakerConfig.ResetTimeout
	if rateLimited {
		timeout = constants.CircuitBreakerConfig.RateLimitTimeout
	}
	m.circuitBreaker.RecordFailure(timeout)
}

func (m *Manager) healthCheckPing() bool {
	m.logger.Info("Health check: testing AI services...")

	ctx, cancel := context.WithTimeout(context.Background(), constants.CircuitBreakerConfig.HealthCheckTimeout)
	defer cancel()

	primaryOK := m.primary != nil && m.primary.Ping(ctx)
	fallbackOK := m.fallback != nil && m.fallback.Ping(ctx)
	healthy := primaryOK || fallbackOK

	m.logger.Info("Health check: result",
		zap.Bool("primary", primaryOK),
		zap.Bool("fallback", fallbackOK),
		zap.Bool("healthy", healthy),
	)

	return healthy
}

// GetCircuitStatus exposes breaker state for the status endpoint.
func (m *Manager) GetCircuitStatus() *util.CircuitBreakerStatus {
	if !m.Enabled() {
		return nil
	}
	status := m.circuitBreaker.GetStatus()
	return &status
}

func (m *Manager) ResetCircuit() {
	if m.Enabled() {
		m.circuitBreaker.Reset()
	}
}

var (
	httpStatusRegex  = regexp.MustCompile(`\b(5\d{2})\b`)
	geminiCodeRegex  = regexp.MustCompile(`"code":(\d{3})`)
	leadingCodeRegex = regexp.MustCompile(`^(\d{3})\s`)
)

func isServiceFailure(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()

	if strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded") {
		return true
	}
	if isRateLimitError(err) {
		return true
	}
	if httpStatusRegex.MatchString(msg) {
		return true
	}
	if matches := geminiCodeRegex.FindStringSubmatch(msg); len(matches) > 1 {
		if code, convErr := strconv.Atoi(matches[1]); convErr == nil {
			return code >= 500 && code < 600
		}
	}
	if matches := leadingCodeRegex.FindStringSubmatch(msg); len(matches) > 1 {
		if code, convErr := strconv.Atoi(matches[1]); convErr == nil {
			return code >= 500 && code < 600
		}
	}
	return false
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()

	if strings.Contains(msg, "429") || strings.Contains(msg, "Rate limit") || strings.Contains(msg, "quota") {
		return true
	}
	if matches := geminiCodeRegex.FindStringSubmatch(msg); len(matches) > 1 {
		if code, convErr := strconv.Atoi(matches[1]); convErr == nil {
			return code == 429
		}
	}
	return false
}
