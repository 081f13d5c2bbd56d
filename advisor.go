package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var errUnknownSuggestion = errors.New("unrecognized suggestion payload")

// decodeSuggestion accepts the shapes the suggestion service answers with:
// a [name, limit, duration] tuple, a budget object, or a list of strings.
func decodeSuggestion(raw []byte) (Suggestion, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Suggestion{}, errUnknownSuggestion
	}

	switch raw[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return Suggestion{}, fmt.Errorf("decode suggestion list: %w", err)
		}
		if b, ok := budgetFromTuple(items); ok {
			return Suggestion{Budget: b}, nil
		}
		tips := make([]string, 0, len(items))
		for _, item := range items {
			var s string
			if err := json.Unmarshal(item, &s); err != nil {
				return Suggestion{}, fmt.Errorf("%w: list item %s", errUnknownSuggestion, item)
			}
			tips = append(tips, s)
		}
		return Suggestion{Tips: tips}, nil
	case '{':
		var b BudgetSuggestion
		if err := json.Unmarshal(raw, &b); err != nil {
			return Suggestion{}, fmt.Errorf("decode budget suggestion: %w", err)
		}
		if b.Name == "" && b.Duration == "" {
			return Suggestion{}, errUnknownSuggestion
		}
		return Suggestion{Budget: &b}, nil
	}
	return Suggestion{}, errUnknownSuggestion
}

func budgetFromTuple(items []json.RawMessage) (*BudgetSuggestion, bool) {
	if len(items) != 3 {
		return nil, false
	}
	var b BudgetSuggestion
	if err := json.Unmarshal(items[0], &b.Name); err != nil {
		return nil, false
	}
	limit := bytes.TrimSpace(items[1])
	if len(limit) == 0 || limit[0] == '"' {
		return nil, false
	}
	if err := json.Unmarshal(limit, &b.Limit); err != nil {
		return nil, false
	}
	if err := json.Unmarshal(items[2], &b.Duration); err != nil {
		return nil, false
	}
	return &b, true
}

// ruleAdvisor answers suggestions locally with fixed rules of thumb.
type ruleAdvisor struct{}

var (
	savingsShare        = decimal.RequireFromString("0.8")
	expenseShare        = decimal.RequireFromString("0.7")
	retirementShare     = decimal.RequireFromString("0.15")
	debtShare           = decimal.RequireFromString("0.25")
	downPaymentShare    = decimal.RequireFromString("0.2")
	referenceHousePrice = decimal.NewFromInt(300000)
)

func (ruleAdvisor) SuggestBudget(_ context.Context, _ Session, q BudgetQuestionnaire) (Suggestion, error) {
	disposable := decimal.NewFromFloat(q.MonthlyIncome).Sub(decimal.NewFromFloat(q.FixedExpenses))
	return Suggestion{Budget: &BudgetSuggestion{
		Name:     "Suggested Monthly Budget",
		Limit:    disposable.Mul(savingsShare).Round(2),
		Duration: "monthly",
	}}, nil
}

func (ruleAdvisor) SuggestGoals(_ context.Context, _ Session, q GoalQuestionnaire) (Suggestion, error) {
	income := decimal.NewFromFloat(q.MonthlyIncome)
	var tip string
	switch q.PrimaryGoal {
	case "emergency_fund":
		target := income.Mul(expenseShare).Mul(decimal.NewFromInt(6))
		tip = fmt.Sprintf("Build emergency fund of %s", formatMoney(target))
	case "retirement":
		yearly := income.Mul(retirementShare).Mul(decimal.NewFromInt(12))
		tip = fmt.Sprintf("Aim to contribute %s annually to retirement", formatMoney(yearly))
	case "house_down_payment":
		if q.TargetTimelineMonths <= 0 {
			return Suggestion{}, errors.New("target timeline must be at least one month")
		}
		monthly := referenceHousePrice.Mul(downPaymentShare).Div(decimal.NewFromInt(int64(q.TargetTimelineMonths)))
		tip = fmt.Sprintf("Save %s monthly for house down payment", formatMoney(monthly))
	case "debt_payoff":
		tip = fmt.Sprintf("Allocate %s monthly to debt repayment", formatMoney(income.Mul(debtShare)))
	default:
		return Suggestion{Tips: []string{}}, nil
	}
	return Suggestion{Tips: []string{tip}}, nil
}
