package store

import (
	"context"
	"fmt"
	"time"

	"github.com/asengupta/cyberquest/ent"
	"github.com/asengupta/cyberquest/ent/xpevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendXPEvent(ctx context.Context, rec XPEventRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	_, err = r.client.XPEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(ts).
		SetUserID(rec.UserID).
		SetSource(rec.Source).
		SetAmount(rec.Amount).
		SetCategory(rec.Category).
		SetRefID(rec.RefID).
		SetSessionID(rec.SessionID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save XP event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryXPEvents(ctx context.Context, userID string, opts QueryOpts) ([]XPEventRecord, error) {
	q := r.client.XPEvent.Query().
		Where(xpevent.UserID(userID)).
		Order(ent.Asc(xpevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(xpevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(xpevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(xpevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(xpevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query XP events: %w", err)
	}

	recs := make([]XPEventRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, XPEventRecord{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			UserID:    row.UserID,
			Source:    row.Source,
			Amount:    row.Amount,
			Category:  row.Category,
			RefID:     row.RefID,
			SessionID: row.SessionID,
		})
	}
	return recs, nil
}
