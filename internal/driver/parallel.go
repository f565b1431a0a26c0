package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"sumc/internal/diag"
	"sumc/internal/lexer"
)

// TokenizeAll lexes every input concurrently, at most jobs at a time
// (GOMAXPROCS when jobs <= 0). results[i] belongs to inputs[i]. Lexical
// failures land in the results; only cancellation of ctx fails the batch.
func TokenizeAll(ctx context.Context, inputs []string, jobs int) ([]TokenizeResult, error) {
	results := make([]TokenizeResult, len(inputs))
	if len(inputs) == 0 {
		return results, nil
	}

	// Настраиваем параллелизм
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(inputs)))

	for i, input := range inputs {
		i, input := i, input // per-iteration copies (pre-Go 1.22 loopvar semantics)
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			tokens, err := lexer.Lex(input)
			res := TokenizeResult{Input: input, Tokens: tokens}
			if err != nil {
				top, _ := diag.Lift(err)
				res.Err = top
			}
			// индекс i уникален — мьютекс не нужен
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
