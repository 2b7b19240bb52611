package accounting

import (
	"github.com/dkueng01/team-rule-tracker/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger holds one team's collections and derives pool balances from them.
// All derivations are pure: the inputs are never mutated and everything is
// recomputed from scratch on each call. Per-team cardinalities are small
// (at most 30 members), so there is no caching.
type Ledger struct {
	Rules      []models.Rule
	RuleBreaks []models.RuleBreak
	Payments   []models.Payment
	Expenses   []models.Expense
}

// ruleAmounts indexes rule amounts by rule id for break pricing
func (l *Ledger) ruleAmounts() map[uuid.UUID]decimal.Decimal {
	amounts := make(map[uuid.UUID]decimal.Decimal, len(l.Rules))
	for _, rule := range l.Rules {
		amounts[rule.ID] = rule.Amount
	}
	return amounts
}

// BreakCost returns the current cost of a single rule break. A break whose
// rule no longer resolves inside the team's rule set costs zero.
func (l *Ledger) BreakCost(rb models.RuleBreak) decimal.Decimal {
	if amount, ok := l.ruleAmounts()[rb.RuleID]; ok {
		return amount
	}
	return decimal.Zero
}

// ExpectedPool is the sum of all rule-break costs, priced with the current
// rule amounts. Editing a rule's amount re-prices its historical breaks.
func (l *Ledger) ExpectedPool() decimal.Decimal {
	amounts := l.ruleAmounts()
	total := decimal.Zero
	for _, rb := range l.RuleBreaks {
		if amount, ok := amounts[rb.RuleID]; ok {
			total = total.Add(amount)
		}
	}
	return total
}

// CollectedPool is the sum of all payments into the pool
func (l *Ledger) CollectedPool() decimal.Decimal {
	total := decimal.Zero
	for _, p := range l.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// AvailablePool is the collected pool minus all expenses
func (l *Ledger) AvailablePool() decimal.Decimal {
	total := l.CollectedPool()
	for _, e := range l.Expenses {
		total = total.Sub(e.Amount)
	}
	return total
}

// MemberDebt is the member's rule-break costs minus their payments.
// Overpayment yields a negative debt; there is no clamping.
func (l *Ledger) MemberDebt(userID string) decimal.Decimal {
	amounts := l.ruleAmounts()
	debt := decimal.Zero
	for _, rb := range l.RuleBreaks {
		if rb.UserID != userID {
			continue
		}
		if amount, ok := amounts[rb.RuleID]; ok {
			debt = debt.Add(amount)
		}
	}
	for _, p := range l.Payments {
		if p.UserID == userID {
			debt = debt.Sub(p.Amount)
		}
	}
	return debt
}

// MemberTotals summarizes one member's side of the ledger
type MemberTotals struct {
	UserID     string          `json:"user_id"`
	BreakCount int             `json:"break_count"`
	BreakTotal decimal.Decimal `json:"break_total"`
	Paid       decimal.Decimal `json:"paid"`
	Debt       decimal.Decimal `json:"debt"`
}

// TotalsByMember derives per-member totals for every user that appears in the
// break or payment ledgers.
func (l *Ledger) TotalsByMember() map[string]MemberTotals {
	amounts := l.ruleAmounts()
	totals := make(map[string]MemberTotals)

	get := func(userID string) MemberTotals {
		if t, ok := totals[userID]; ok {
			return t
		}
		return MemberTotals{UserID: userID, BreakTotal: decimal.Zero, Paid: decimal.Zero, Debt: decimal.Zero}
	}

	for _, rb := range l.RuleBreaks {
		t := get(rb.UserID)
		t.BreakCount++
		if amount, ok := amounts[rb.RuleID]; ok {
			t.BreakTotal = t.BreakTotal.Add(amount)
		}
		totals[rb.UserID] = t
	}
	for _, p := range l.Payments {
		t := get(p.UserID)
		t.Paid = t.Paid.Add(p.Amount)
		totals[p.UserID] = t
	}
	for userID, t := range totals {
		t.Debt = t.BreakTotal.Sub(t.Paid)
		totals[userID] = t
	}
	return totals
}
