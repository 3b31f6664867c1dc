package interfaces

import "context"

// INotifier delivers best-effort management alerts (high-waste warnings,
// end-of-day summaries). A failed notification must never roll back the
// state transition that triggered it.
type INotifier interface {
	Notify(ctx context.Context, recipients []string, subject, body string) error
}
