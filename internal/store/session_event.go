package store

import (
	"context"
	"fmt"
	"time"
)

type sessionEventRow struct {
	ID           int    `db:"id"`
	Sequence     int64  `db:"sequence"`
	Timestamp    int64  `db:"timestamp"`
	SessionID    string `db:"session_id"`
	Action       string `db:"action"`
	Completed    int    `db:"completed"`
	Total        int    `db:"total"`
	DurationSecs int    `db:"duration_secs"`
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.NamedExecContext(ctx, `INSERT INTO session_events (
		sequence, timestamp, session_id, action, completed, total, duration_secs
	) VALUES (
		:sequence, :timestamp, :session_id, :action, :completed, :total, :duration_secs
	)`, sessionEventRow{
		Sequence:     seqNum,
		Timestamp:    time.Now().UnixMilli(),
		SessionID:    data.SessionID,
		Action:       data.Action,
		Completed:    data.Completed,
		Total:        data.Total,
		DurationSecs: data.DurationSecs,
	})
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEvent, error) {
	where, args := whereClause(opts, false)
	q := "SELECT * FROM session_events" + where + " ORDER BY sequence DESC" + limitClause(opts)
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
	}

	var rows []sessionEventRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	events := make([]SessionEvent, len(rows))
	for i, row := range rows {
		events[i] = SessionEvent{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: time.UnixMilli(row.Timestamp).UTC(),
			SessionEventData: SessionEventData{
				SessionID:    row.SessionID,
				Action:       row.Action,
				Completed:    row.Completed,
				Total:        row.Total,
				DurationSecs: row.DurationSecs,
			},
		}
	}
	return events, nil
}
