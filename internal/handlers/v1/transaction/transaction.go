package transaction

// Split is one category portion of a split transaction in API bodies.
type Split struct {
	CategoryID string `json:"categoryID" format:"uuid" doc:"Category UUID"`
	Amount     string `json:"amount" doc:"Decimal amount for this category"`
}

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string  `json:"id" doc:"Transaction UUID"`
	AccountID       string  `json:"accountID" doc:"Account UUID"`
	CategoryID      string  `json:"categoryID" doc:"Category UUID, zero UUID for split transactions"`
	Amount          string  `json:"amount" doc:"Decimal amount"`
	Type            string  `json:"type" doc:"income or expense"`
	TransactionName string  `json:"transactionName" doc:"Name of the transaction"`
	TransactionDate string  `json:"transactionDate" doc:"RFC3339 transaction date"`
	IsSplit         bool    `json:"isSplit" doc:"Whether the amount is split across categories"`
	Splits          []Split `json:"splits,omitempty" doc:"Category splits, present only for split transactions"`
	CreatedAt       string  `json:"createdAt" doc:"RFC3339 creation time"`
}
