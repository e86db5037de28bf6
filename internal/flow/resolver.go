package flow

import (
	"errors"

	"modflow/backend/internal/models"
)

// Resolution failures the report flow knows how to explain to the user.
// Anything else is treated as an internal lookup error.
var (
	ErrMalformedReference = errors.New("flow: reference did not parse as a message link")
	ErrSourceNotVisible   = errors.New("flow: referenced chat is not visible to the bot")
	ErrChannelNotFound    = errors.New("flow: referenced channel does not exist")
	ErrContentNotFound    = errors.New("flow: referenced message does not exist")
)

// ContentResolver turns a user-supplied message reference into a content
// snapshot. Implementations are transport-specific; the flow only cares
// about the snapshot and the error taxonomy above.
type ContentResolver interface {
	Resolve(ref string) (*models.ReportedContent, error)
}
