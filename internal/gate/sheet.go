package gate

import (
	"context"
	"log/slog"

	dErrors "fixlist/pkg/domain-errors"
)

// SheetAccess is the bottom-of-page shortcut: attempt the subscribe as a
// best-effort side channel, then hand out the sheet link no matter what.
type SheetAccess struct {
	subs     Subscriptions
	sheetURL string
	logger   *slog.Logger
}

// NewSheetAccess creates the shortcut service around the subscriber service.
func NewSheetAccess(subs Subscriptions, sheetURL string, logger *slog.Logger) *SheetAccess {
	return &SheetAccess{
		subs:     subs,
		sheetURL: sheetURL,
		logger:   logger,
	}
}

// Grant records the email if the store cooperates and returns the sheet URL
// either way. Only an empty email is an error.
func (s *SheetAccess) Grant(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", dErrors.New(dErrors.CodeValidation, "email is required")
	}
	if _, err := s.subs.Subscribe(ctx, email); err != nil {
		s.logger.WarnContext(ctx, "sheet subscribe failed, granting anyway",
			"error", err.Error(),
		)
	}
	return s.sheetURL, nil
}
