package storage

import (
	"sort"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"bank-ledger/model"
)

// RuleStore defines the rule-registry operations the statement engine and
// the front ends depend on.
type RuleStore interface {
	Upsert(date civil.Date, ruleID string, rate decimal.Decimal) ([]model.InterestRule, error)
	Rules() []model.InterestRule
	ApplicableOn(date civil.Date) (model.InterestRule, bool)
}

// RuleRegistry is the in-memory set of interest rules, kept sorted by
// effective date with at most one rule per date. Rules may be replaced but
// never deleted.
type RuleRegistry struct {
	mu    sync.Mutex
	rules []model.InterestRule
}

var _ RuleStore = (*RuleRegistry)(nil)

// NewRuleRegistry creates an empty registry. The bootstrap rule is seeded by
// the caller so that configuration can override the default.
func NewRuleRegistry() *RuleRegistry {
	return &RuleRegistry{}
}

// Upsert adds a rule, replacing any rule already effective on the same date,
// and returns the full registry in ascending effective-date order.
func (r *RuleRegistry) Upsert(date civil.Date, ruleID string, rate decimal.Decimal) ([]model.InterestRule, error) {
	if ruleID == "" {
		return nil, ErrInvalidRuleID
	}
	if rate.Sign() <= 0 || !rate.LessThan(decimal.NewFromInt(100)) {
		return nil, ErrInvalidRate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.rules[:0]
	for _, rule := range r.rules {
		if rule.EffectiveDate != date {
			kept = append(kept, rule)
		}
	}
	r.rules = append(kept, model.InterestRule{EffectiveDate: date, RuleID: ruleID, Rate: rate})
	sort.Slice(r.rules, func(i, j int) bool {
		return r.rules[i].EffectiveDate.Before(r.rules[j].EffectiveDate)
	})
	return r.snapshot(), nil
}

// Rules returns a copy of the registry in ascending effective-date order.
func (r *RuleRegistry) Rules() []model.InterestRule {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

// ApplicableOn returns the rule with the greatest effective date on or
// before the given date, or false if no rule has taken effect yet.
func (r *RuleRegistry) ApplicableOn(date civil.Date) (model.InterestRule, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.rules) - 1; i >= 0; i-- {
		if !r.rules[i].EffectiveDate.After(date) {
			return r.rules[i], true
		}
	}
	return model.InterestRule{}, false
}

func (r *RuleRegistry) snapshot() []model.InterestRule {
	out := make([]model.InterestRule, len(r.rules))
	copy(out, r.rules)
	return out
}
