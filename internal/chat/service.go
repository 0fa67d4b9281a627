// Package chat sequences the retrieval stages that turn a free-text message
// into a reply: scored FAQ lookup, keyword-routed table lookup, optional
// external generation, then a fixed guidance string. The first stage that
// produces anything terminates the request.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/xaenox/campus-chatbot/internal/generator"
	"github.com/xaenox/campus-chatbot/internal/retrieval"
	"github.com/xaenox/campus-chatbot/internal/storage"
)

const defaultResultLimit = 3

type Service struct {
	store      storage.Storage
	generator  generator.Generator // nil when no provider is configured
	genTimeout time.Duration
	limit      int
	logger     *zap.Logger
}

// NewService creates the chat service. gen may be nil, in which case the
// external fallback stage is skipped. genTimeout bounds the only
// unbounded-latency call; non-positive values default to 30s.
func NewService(store storage.Storage, gen generator.Generator, genTimeout time.Duration, logger *zap.Logger) *Service {
	if genTimeout <= 0 {
		genTimeout = 30 * time.Second
	}
	return &Service{
		store:      store,
		generator:  gen,
		genTimeout: genTimeout,
		limit:      defaultResultLimit,
		logger:     logger,
	}
}

// Reply answers a single message. Retrieval misses advance to the next
// stage; only store failures propagate as errors.
func (s *Service) Reply(ctx context.Context, message string) (string, error) {
	tokens := retrieval.Tokenize(message)

	// 1) FAQs: quick wins, scored by token hits.
	matches, err := s.store.SearchFAQs(ctx, tokens, s.limit)
	if err != nil {
		return "", fmt.Errorf("searching faqs: %w", err)
	}
	if len(matches) > 0 {
		return composeFAQs(matches), nil
	}

	// 2) Specialized tables, picked by keyword heuristics on the raw message.
	if table, ok := retrieval.Route(message); ok {
		records, err := s.store.SearchTable(ctx, table, tokens, s.limit)
		if err != nil {
			return "", fmt.Errorf("searching %s: %w", table, err)
		}
		if len(records) > 0 {
			return composeRecords(records), nil
		}
	}

	// 3) External generation, when configured. Failures degrade to a visible
	// apology rather than an error or a retry.
	if s.generator != nil {
		genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
		defer cancel()

		text, err := s.generator.Generate(genCtx, buildPrompt(message))
		if err != nil {
			s.logger.Warn("External fallback failed",
				zap.Error(err),
				zap.String("message", message))
			return apologyPrefix + err.Error(), nil
		}
		if reply := strings.TrimSpace(text); reply != "" {
			return reply, nil
		}
	}

	// 4) Generic guidance.
	return GenericFallback, nil
}
