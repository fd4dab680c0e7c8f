package model

import "fmt"

// ChecklistItem is one requirement with its pass/fail outcome.
type ChecklistItem struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

// Checklist is the ordered compliance checklist for one generated narrative.
// Order is the evaluator's declaration order and is stable across passes so
// downstream scoring can present pass/fail counts consistently.
type Checklist []ChecklistItem

// Passed counts the requirements that evaluated true.
func (c Checklist) Passed() int {
	n := 0
	for _, item := range c {
		if item.Passed {
			n++
		}
	}
	return n
}

// Lookup returns the outcome for a requirement name and whether it exists.
func (c Checklist) Lookup(name string) (bool, bool) {
	for _, item := range c {
		if item.Name == name {
			return item.Passed, true
		}
	}
	return false, false
}

// Summary renders the aggregate score, e.g. "6/8 (75%)".
func (c Checklist) Summary() string {
	if len(c) == 0 {
		return "0/0 (0%)"
	}
	passed := c.Passed()
	return fmt.Sprintf("%d/%d (%d%%)", passed, len(c), passed*100/len(c))
}
