package postgres

import (
	"context"
	"fmt"
	"matchup/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	messagesTable = "messages"
)

// StoreMessage inserts a message and returns it with generated fields.
func (p *PgSQL) StoreMessage(ctx context.Context, message domain.Message) (*domain.Message, error) {
	var row PgMessage
	row.FromDomain(message)

	var stored PgMessage
	if _, err := p.Builder.Insert(messagesTable).
		Rows(row).
		Returning(&PgMessage{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store message into pg: %w", constraintErr(err))
	}

	return stored.ToDomain(), nil
}

// MessageByID returns a message by its ID.
func (p *PgSQL) MessageByID(ctx context.Context, id domain.MessageID) (*domain.Message, error) {
	var row PgMessage
	found, err := p.Builder.From(messagesTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch message from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateMessageText replaces the text of a message and stamps updated_at.
func (p *PgSQL) UpdateMessageText(ctx context.Context, id domain.MessageID, text string) (*domain.Message, error) {
	var row PgMessage
	found, err := p.Builder.Update(messagesTable).
		Set(goqu.Record{
			"text":       text,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(int64(id))).
		Returning(&PgMessage{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update message in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteMessage deletes a message and reports whether it existed.
func (p *PgSQL) DeleteMessage(ctx context.Context, id domain.MessageID) (bool, error) {
	res, err := p.Builder.Delete(messagesTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete message in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

// Conversation returns the messages exchanged between userA and userB in
// either direction, newest first.
func (p *PgSQL) Conversation(ctx context.Context,
	userA, userB domain.UserID,
	offset, limit uint) ([]domain.Message, error) {
	a, b := int64(userA), int64(userB)

	var rows []PgMessage
	if err := p.Builder.From(messagesTable).
		Where(goqu.Or(
			goqu.And(goqu.I("sender_id").Eq(a), goqu.I("receiver_id").Eq(b)),
			goqu.And(goqu.I("sender_id").Eq(b), goqu.I("receiver_id").Eq(a)),
		)).
		Order(goqu.I("timestamp").Desc(), goqu.I("id").Desc()).
		Offset(offset).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch conversation from pg: %w", err)
	}

	return pgMessagesToDomain(rows), nil
}
