package services

import (
	"context"

	"github.com/dmitrijs2005/esgportal/internal/logging"
	"github.com/dmitrijs2005/esgportal/internal/server/models"
)

// Mailer delivers action codes to users.
type Mailer interface {
	SendActionCode(ctx context.Context, code *models.ActionCode) error
}

// LogMailer writes action codes to the log instead of sending mail. It is
// the mailer of development setups, where the operator reads the code from
// the server output and pastes it into the CLI.
type LogMailer struct {
	logger logging.Logger
}

func NewLogMailer(l logging.Logger) *LogMailer {
	return &LogMailer{logger: l.With("module", "mailer")}
}

func (m *LogMailer) SendActionCode(ctx context.Context, code *models.ActionCode) error {
	m.logger.Info(ctx, "action code issued",
		"to", code.Email, "purpose", code.Purpose, "code", code.Code, "expires", code.Expires)
	return nil
}
