package goal

// Goal is the API response model for a savings goal with derived progress.
type Goal struct {
	ID              string `json:"id" doc:"Goal UUID"`
	Name            string `json:"name" doc:"Goal name"`
	TargetAmount    string `json:"targetAmount" doc:"Decimal target amount"`
	SavedAmount     string `json:"savedAmount" doc:"Decimal amount saved so far"`
	TargetDate      string `json:"targetDate" doc:"RFC3339 target date"`
	Remaining       string `json:"remaining" doc:"Amount still to save, never negative"`
	PercentComplete string `json:"percentComplete" doc:"Saved as a percentage of the target"`
	MonthlyNeeded   string `json:"monthlyNeeded" doc:"Required monthly saving to hit the target date"`
	Achieved        bool   `json:"achieved" doc:"Whether the target has been reached"`
}
