// Package oracle defines the text completion boundary used by every pipeline
// stage. An oracle is an opaque, synchronous prompt-in/text-out service; the
// agent never inspects how the completion is produced.
package oracle

import (
	"context"
	"errors"
)

// ErrOracle is returned (wrapped) for any completion fault: unreachable
// endpoint, non-2xx status, or an empty completion. The pipeline has no
// retry policy; these propagate to the outermost caller.
var ErrOracle = errors.New("oracle completion failed")

// Completer issues a single text completion. Implementations are stateless
// and safe for concurrent use. Temperature is fixed at zero by construction
// to stabilize routing classification.
type Completer interface {
	// Complete submits prompt and returns the completion text.
	Complete(ctx context.Context, prompt string) (string, error)

	// Close releases any resources held by the completer.
	Close() error
}
