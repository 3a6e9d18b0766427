package pipeline

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/csift/internal/logging"
	"github.com/yaklabco/csift/pkg/corpus"
	"github.com/yaklabco/csift/pkg/lexer"
	"github.com/yaklabco/csift/pkg/parser"
)

// Options controls a pipeline run.
type Options struct {
	// Jobs is the worker pool size. 0 or negative means "auto"
	// (the host's CPU count).
	Jobs int

	// Lexer configures the per-file tokenizer.
	Lexer lexer.Options
}

// Pipeline runs two chained task kinds per input file, lex then parse,
// against a shared corpus store.
type Pipeline struct {
	Store *corpus.Store
	Opts  Options
}

// New creates a Pipeline writing into store.
func New(store *corpus.Store, opts Options) *Pipeline {
	return &Pipeline{Store: store, Opts: opts}
}

// Run lexes and shallow-parses every file in paths. The empty path
// reads standard input. Run returns only after every lex task and
// every chained parse task has finished, so all results are present in
// the store when it returns.
//
// Files that cannot be opened are logged and skipped; the run
// continues without them. Lexical and parse errors are fatal: they are
// collected and returned joined, each carrying file, line, and column.
func (pl *Pipeline) Run(ctx context.Context, paths []string) error {
	logger := logging.FromContext(ctx)

	pool := NewPool(pl.Opts.Jobs)
	defer pool.Close()

	var mu sync.Mutex
	var fatal []error

	record := func(err error) {
		mu.Lock()
		fatal = append(fatal, err)
		mu.Unlock()
	}

	for _, path := range paths {
		pool.Submit(func() {
			lx := lexer.New(pl.Opts.Lexer)
			data, err := lx.Lex(path)
			if err != nil {
				if errors.Is(err, lexer.ErrOpen) {
					logger.Warn("skipping file", logging.FieldPath, path,
						logging.FieldError, err)
					return
				}
				record(err)
				return
			}

			index := pl.Store.AppendTokens(data)
			logger.Debug("lexed file", logging.FieldPath, data.DisplayPath(),
				logging.FieldIndex, index,
				logging.FieldTokens, len(data.Tokens))

			// The parse task captures only the store index; it fetches
			// the tokens back through the store's own synchronization.
			pool.Submit(func() {
				pl.parseTask(logger, index, record)
			})
		})
	}

	pool.Wait()

	mu.Lock()
	defer mu.Unlock()
	return errors.Join(fatal...)
}

func (pl *Pipeline) parseTask(logger *log.Logger, index int, record func(error)) {
	data := pl.Store.FetchTokens(index)
	if data == nil {
		return
	}

	res, err := parser.New(index).Parse(data)
	if err != nil {
		record(err)
		return
	}

	pl.Store.AppendParse(res)
	logger.Debug("parsed file", logging.FieldPath, data.DisplayPath(),
		logging.FieldFunctions, len(res.Functions))
}
