package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/oakmere-labs/ledger-server/internal/operator/actions"
	"github.com/oakmere-labs/ledger-server/internal/storage"
	"github.com/oakmere-labs/ledger-server/internal/storage/sqlconfig"
)

const defaultLimit = 20

// TransactionService handles transaction business logic. Writes go through
// the operator so the ledger insert and the account balance update share one
// database transaction.
type TransactionService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor ActionProcessor) *TransactionService {
	return &TransactionService{storage: store, processor: processor}
}

// CreateTransaction creates a new transaction and returns its ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, transaction Transaction) (uuid.UUID, error) {
	splits := make([]sqlconfig.Split, len(transaction.Splits))
	for i, split := range transaction.Splits {
		splits[i] = sqlconfig.Split{CategoryID: split.CategoryID, Amount: split.Amount}
	}

	action := &actions.CreateTransaction{
		AccountID:       transaction.AccountID,
		CategoryID:      transaction.CategoryID,
		Amount:          transaction.Amount,
		Type:            storageTransactionType(transaction.Type),
		TransactionName: transaction.TransactionName,
		TransactionDate: transaction.TransactionDate,
		Splits:          splits,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// ListTransactions returns a page of transactions using cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	filter := &sqlconfig.TransactionFilter{
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = transactionFromRow(row)
	}

	return convertedTransactions, nextCursor, nil
}

func transactionFromRow(row *sqlconfig.Transaction) Transaction {
	splits := make([]Split, len(row.Splits))
	for i, split := range row.Splits {
		splits[i] = Split{CategoryID: split.CategoryID, Amount: split.Amount}
	}
	return Transaction{
		ID:              row.ID,
		AccountID:       row.AccountID,
		CategoryID:      row.CategoryID,
		Amount:          row.Amount,
		Type:            serviceTransactionType(row.Type),
		TransactionName: row.TransactionName,
		TransactionDate: row.TransactionDate,
		IsSplit:         row.IsSplit,
		Splits:          splits,
		CreatedAt:       row.CreatedAt,
	}
}

func storageTransactionType(t TransactionType) sqlconfig.TransactionType {
	if t == TransactionTypeExpense {
		return sqlconfig.TransactionTypeExpense
	}
	return sqlconfig.TransactionTypeIncome
}

func serviceTransactionType(t sqlconfig.TransactionType) TransactionType {
	if t == sqlconfig.TransactionTypeExpense {
		return TransactionTypeExpense
	}
	return TransactionTypeIncome
}
