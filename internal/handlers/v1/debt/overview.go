package debt

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/oakmere-labs/ledger-server/internal/logging"
	"github.com/oakmere-labs/ledger-server/internal/service"
)

// Obligation is the API response model for an obligation with derived state.
type Obligation struct {
	ID          string `json:"id" doc:"Obligation UUID"`
	Kind        string `json:"kind" doc:"receivable or payable"`
	Name        string `json:"name" doc:"Obligation name"`
	TotalAmount string `json:"totalAmount" doc:"Decimal total owed"`
	DueDate     string `json:"dueDate" doc:"RFC3339 due date"`
	PaidToDate  string `json:"paidToDate" doc:"Sum of recorded payments"`
	Remaining   string `json:"remaining" doc:"Amount still owed, never negative"`
	Status      string `json:"status" doc:"Derived payment status"`
}

// ShortTermDebt is the API response model for a short-term liability.
type ShortTermDebt struct {
	ID                       string `json:"id" doc:"Liability UUID"`
	Name                     string `json:"name" doc:"Liability name"`
	OriginalAmount           string `json:"originalAmount" doc:"Decimal original amount"`
	DueDate                  string `json:"dueDate,omitempty" doc:"RFC3339 due date, single-payment liabilities only"`
	Paid                     string `json:"paid" doc:"Sum of recorded payments"`
	Remaining                string `json:"remaining" doc:"Amount still owed"`
	Status                   string `json:"status" doc:"Derived payment status"`
	MonthlyInstallmentAmount string `json:"monthlyInstallmentAmount,omitempty" doc:"Per-installment amount"`
	NextInstallmentDue       string `json:"nextInstallmentDue,omitempty" doc:"RFC3339 next installment date"`
	InstallmentsPaidCount    int    `json:"installmentsPaidCount" doc:"Whole installments covered by payments"`
	InstallmentOverdue       bool   `json:"installmentOverdue" doc:"Whether the current installment is late"`
	EstimatedMonthsToPayoff  int    `json:"estimatedMonthsToPayoff" doc:"Months until paid off at the installment rate"`
}

// LongTermDebt is the API response model for a long-term liability.
type LongTermDebt struct {
	ID             string `json:"id" doc:"Liability UUID"`
	Name           string `json:"name" doc:"Liability name"`
	OriginalAmount string `json:"originalAmount" doc:"Decimal original amount"`
	MonthlyPayment string `json:"monthlyPayment" doc:"Planned monthly payment"`
	Paid           string `json:"paid" doc:"Sum of recorded payments"`
	Remaining      string `json:"remaining" doc:"Amount still owed"`
	MonthsToPayoff int    `json:"monthsToPayoff" doc:"Months until paid off at the planned rate"`
	PercentPaidOff string `json:"percentPaidOff" doc:"Paid as a percentage of the original amount"`
	Status         string `json:"status" doc:"Derived payment status"`
}

// OverviewInput is the Huma input for the debt overview.
type OverviewInput struct {
	AsOf string `query:"asOf" format:"date-time" doc:"Reference day, defaults to now"`
}

// OverviewResponseBody is the response body for the debt overview.
type OverviewResponseBody struct {
	Obligations []Obligation    `json:"obligations" doc:"Receivables and payables"`
	ShortTerm   []ShortTermDebt `json:"shortTerm" doc:"Short-term liabilities"`
	LongTerm    []LongTermDebt  `json:"longTerm" doc:"Long-term liabilities"`
}

// OverviewOutput is the Huma output for the debt overview.
type OverviewOutput struct {
	Body OverviewResponseBody
}

// debtOverviewer is the interface for deriving the debt overview.
type debtOverviewer interface {
	Overview(ctx context.Context, asOf time.Time) (*service.DebtOverview, error)
}

// OverviewHandler handles GET /v1/debts.
type OverviewHandler struct {
	DebtService debtOverviewer
}

// NewOverviewHandler creates a new OverviewHandler.
func NewOverviewHandler(svc debtOverviewer) *OverviewHandler {
	return &OverviewHandler{DebtService: svc}
}

// Register registers the debt overview endpoint with the Huma API.
func (h *OverviewHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "debt-overview",
		Method:      http.MethodGet,
		Path:        "/v1/debts",
		Summary:     "Debt overview",
		Description: "Returns every tracked debt with its freshly derived payment state.",
		Tags:        []string{"Debts"},
	}, h.handle)
}

func (h *OverviewHandler) handle(ctx context.Context, input *OverviewInput) (*OverviewOutput, error) {
	logData := logging.GetLogData(ctx)

	asOf := time.Now()
	if input.AsOf != "" {
		parsed, err := time.Parse(time.RFC3339, input.AsOf)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid asOf", err)
		}
		asOf = parsed
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("debtOverviewMs")
	}
	overview, err := h.DebtService.Overview(ctx, asOf)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to derive debt overview", err)
	}

	resp := OverviewResponseBody{}
	for _, o := range overview.Obligations {
		resp.Obligations = append(resp.Obligations, Obligation{
			ID:          o.ID.String(),
			Kind:        string(o.Kind),
			Name:        o.Name,
			TotalAmount: o.TotalAmount.String(),
			DueDate:     o.DueDate.Format(time.RFC3339),
			PaidToDate:  o.PaidToDate.String(),
			Remaining:   o.Remaining.String(),
			Status:      o.Status,
		})
	}
	for _, d := range overview.ShortTerm {
		shortTerm := ShortTermDebt{
			ID:                      d.ID.String(),
			Name:                    d.Name,
			OriginalAmount:          d.OriginalAmount.String(),
			Paid:                    d.Paid.String(),
			Remaining:               d.Remaining.String(),
			Status:                  d.Status,
			InstallmentsPaidCount:   d.InstallmentsPaidCount,
			InstallmentOverdue:      d.InstallmentOverdue,
			EstimatedMonthsToPayoff: d.EstimatedMonthsToPayoff,
		}
		if !d.DueDate.IsZero() {
			shortTerm.DueDate = d.DueDate.Format(time.RFC3339)
		}
		if !d.MonthlyInstallmentAmount.IsZero() {
			shortTerm.MonthlyInstallmentAmount = d.MonthlyInstallmentAmount.String()
		}
		if !d.NextInstallmentDue.IsZero() {
			shortTerm.NextInstallmentDue = d.NextInstallmentDue.Format(time.RFC3339)
		}
		resp.ShortTerm = append(resp.ShortTerm, shortTerm)
	}
	for _, d := range overview.LongTerm {
		resp.LongTerm = append(resp.LongTerm, LongTermDebt{
			ID:             d.ID.String(),
			Name:           d.Name,
			OriginalAmount: d.OriginalAmount.String(),
			MonthlyPayment: d.MonthlyPayment.String(),
			Paid:           d.Paid.String(),
			Remaining:      d.Remaining.String(),
			MonthsToPayoff: d.MonthsToPayoff,
			PercentPaidOff: d.PercentPaidOff.String(),
			Status:         d.Status,
		})
	}

	return &OverviewOutput{Body: resp}, nil
}
