package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"uriql/internal/diag"
	"uriql/internal/lexer"
	"uriql/internal/token"
)

// TokenizeResult is the outcome of lexing one expression. Err is the first
// lexical error; Tokens holds what was scanned before it.
type TokenizeResult struct {
	Expression string
	Tokens     []token.Token
	Bag        *diag.Bag
	Err        error
}

// Tokenize lexes one expression with the session's lexer options.
func (s *Session) Tokenize(expr string, maxDiagnostics int) TokenizeResult {
	idx := s.begin("lex")
	bag := diag.NewBag(maxDiagnostics)
	opts := s.Lexer
	opts.Reporter = diag.BagReporter{Bag: bag}

	toks, err := lexer.Tokenize(expr, opts)
	s.end(idx, fmt.Sprintf("%d tokens", len(toks)))
	if err != nil {
		s.Log.Debug("lexical error", "expr", expr, "code", diag.CodeOf(err).ID(), "err", err)
	}
	return TokenizeResult{Expression: expr, Tokens: toks, Bag: bag, Err: err}
}

// TokenizeAll lexes expressions in parallel, at most jobs at a time.
// Results keep the input order; lexical errors stay in the results and
// only cancellation fails the call.
func (s *Session) TokenizeAll(ctx context.Context, exprs []string, maxDiagnostics, jobs int) ([]TokenizeResult, error) {
	if len(exprs) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]TokenizeResult, len(exprs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(exprs)))
	for i, expr := range exprs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = s.Tokenize(expr, maxDiagnostics)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	s.Log.Info("tokenized", "expressions", len(exprs), "jobs", jobs)
	return results, nil
}
