package services

import (
	"github.com/irfndi/opportunity-scoring/internal/i18n"
	"github.com/irfndi/opportunity-scoring/internal/models"
)

// textRule is one entry of an ordered heuristic table: when the predicate holds
// for the input, the rule contributes one message.
type textRule[T any] struct {
	name    string
	applies func(T) bool
	message func(T) i18n.Text
}

// applyTextRules evaluates every rule in order and collects the messages of the
// rules that match. When nothing matches the fallback is returned alone.
func applyTextRules[T any](rules []textRule[T], in T, fallback ...i18n.Text) []i18n.Text {
	out := make([]i18n.Text, 0, len(rules))
	for _, r := range rules {
		if r.applies(in) {
			out = append(out, r.message(in))
		}
	}
	if len(out) == 0 {
		out = append(out, fallback...)
	}
	return out
}

// gradedCheck is a PASS/WARN/FAIL gate over one measured value.
type gradedCheck[T any] struct {
	id    string
	label func(T) i18n.Text
	value func(T) float64
	pass  func(float64) bool
	warn  func(float64) bool
}

func (c gradedCheck[T]) evaluate(in T) models.ChecklistItem {
	v := c.value(in)
	status := models.CheckFail
	switch {
	case c.pass(v):
		status = models.CheckPass
	case c.warn(v):
		status = models.CheckWarn
	}
	return models.ChecklistItem{
		ID:     c.id,
		Label:  c.label(in),
		Status: status,
		Value:  roundTo(v, 2),
	}
}

func evaluateChecks[T any](checks []gradedCheck[T], in T) []models.ChecklistItem {
	items := make([]models.ChecklistItem, 0, len(checks))
	for _, c := range checks {
		items = append(items, c.evaluate(in))
	}
	return items
}

func above(threshold float64) func(float64) bool {
	return func(v float64) bool { return v > threshold }
}

func below(threshold float64) func(float64) bool {
	return func(v float64) bool { return v < threshold }
}

func atMost(threshold float64) func(float64) bool {
	return func(v float64) bool { return v <= threshold }
}
