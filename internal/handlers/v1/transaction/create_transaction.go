package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/oakmere-labs/ledger-server/internal/logging"
	"github.com/oakmere-labs/ledger-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	AccountID       string  `json:"accountID" required:"true" format:"uuid" doc:"Account UUID"`
	CategoryID      string  `json:"categoryID" required:"true" format:"uuid" doc:"Category UUID, ignored when splits are provided"`
	Amount          string  `json:"amount" required:"true" doc:"Decimal amount"`
	Type            string  `json:"type,omitempty" enum:"income,expense" doc:"Transaction type, defaults to expense"`
	TransactionName string  `json:"transactionName" required:"true" minLength:"1" doc:"Name of the transaction"`
	TransactionDate string  `json:"transactionDate,omitempty" format:"date-time" doc:"RFC3339 transaction date, defaults to now"`
	Splits          []Split `json:"splits,omitempty" doc:"Category splits, amounts must sum to the transaction amount"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for creating a transaction.
type CreateTransactionResponse struct {
	ID string `json:"id" doc:"Created transaction UUID"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, transaction service.Transaction) (uuid.UUID, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Creates a new transaction, optionally split across categories.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseCreateTransactionInput parses the validated body into a service
// transaction. Huma's schema already rejected malformed UUIDs and dates,
// so only the decimal fields need checking here.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.Transaction, error) {
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}
	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	transactionType := service.TransactionType(input.Body.Type)
	if transactionType == "" {
		transactionType = service.TransactionTypeExpense
	}

	var transactionDate time.Time
	if input.Body.TransactionDate != "" {
		transactionDate, err = time.Parse(time.RFC3339, input.Body.TransactionDate)
		if err != nil {
			return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
	}

	splits := make([]service.Split, 0, len(input.Body.Splits))
	for _, s := range input.Body.Splits {
		splitCategoryID, err := uuid.FromString(s.CategoryID)
		if err != nil {
			return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid split categoryID", err)
		}
		splitAmount, err := decimal.NewFromString(s.Amount)
		if err != nil {
			return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid split amount", err)
		}
		splits = append(splits, service.Split{CategoryID: splitCategoryID, Amount: splitAmount})
	}

	return service.Transaction{
		AccountID:       accountID,
		CategoryID:      categoryID,
		Amount:          amount,
		Type:            transactionType,
		TransactionName: input.Body.TransactionName,
		TransactionDate: transactionDate,
		IsSplit:         len(splits) > 0,
		Splits:          splits,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	transaction, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}
	if transaction.TransactionDate.IsZero() {
		transaction.TransactionDate = time.Now()
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	id, err := h.TransactionService.CreateTransaction(ctx, transaction)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionID", id.String())
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponse{ID: id.String()},
	}, nil
}
