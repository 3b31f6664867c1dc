// Package docid generates quotation document IDs.
//
// The legacy sheet used QT-<yymmdd>-<HHMM>, which collides when two quotations
// are created within the same minute. IDs here carry second granularity plus a
// random suffix; the store still enforces uniqueness with a conditional put.
package docid

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const prefix = "QT"

// New returns a document ID for a quotation created at t,
// e.g. "QT-260830-142501-9F3A2B".
func New(t time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return prefix + "-" + t.Format("060102-150405") + "-" + suffix
}
