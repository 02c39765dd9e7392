package app

import (
	"context"
	"fmt"
	"io"

	"github.com/cristianoliveira/station-menu/internal/colors"
	"github.com/cristianoliveira/station-menu/internal/format"
	"github.com/cristianoliveira/station-menu/internal/storage/sqlite"
)

// AlarmsClient defines dependencies required for alarm and history listing.
type AlarmsClient interface {
	ListAlarms(ctx context.Context) ([]sqlite.Alarm, error)
	DeleteAlarm(ctx context.Context, id string) error
	ListHistory(ctx context.Context, limit int) ([]sqlite.Play, error)
}

// AlarmsUseCase coordinates alarms and history behavior.
type AlarmsUseCase struct {
	client AlarmsClient
}

// NewAlarmsUseCase creates a new alarms use-case.
func NewAlarmsUseCase(client AlarmsClient) *AlarmsUseCase {
	if client == nil {
		panic("NewAlarmsUseCase: client dependency cannot be nil")
	}
	return &AlarmsUseCase{client: client}
}

// List writes all alarms.
func (u *AlarmsUseCase) List(ctx context.Context, f format.FormatterType, w io.Writer) error {
	alarms, err := u.client.ListAlarms(ctx)
	if err != nil {
		return fmt.Errorf("alarms list: %w", err)
	}
	if len(alarms) == 0 && f != format.FormatterTypeJSON {
		_, _ = fmt.Fprintf(w, "%s%s%s\n", colors.Blue, "No alarms set", colors.Reset)
		return nil
	}
	return format.NewFormatter(f).Format(format.AlarmsTable(alarms), w)
}

// Delete removes an alarm.
func (u *AlarmsUseCase) Delete(ctx context.Context, id string) error {
	if err := u.client.DeleteAlarm(ctx, id); err != nil {
		return fmt.Errorf("alarms delete: %w", err)
	}
	return nil
}

// History writes the most recent plays.
func (u *AlarmsUseCase) History(ctx context.Context, limit int, f format.FormatterType, w io.Writer) error {
	plays, err := u.client.ListHistory(ctx, limit)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if len(plays) == 0 && f != format.FormatterTypeJSON {
		_, _ = fmt.Fprintf(w, "%s%s%s\n", colors.Blue, "Nothing played yet", colors.Reset)
		return nil
	}
	return format.NewFormatter(f).Format(format.HistoryTable(plays), w)
}
