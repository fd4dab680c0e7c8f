package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecklistSummary(t *testing.T) {
	checklist := Checklist{
		{Name: "a", Passed: true},
		{Name: "b", Passed: true},
		{Name: "c", Passed: true},
		{Name: "d", Passed: true},
		{Name: "e", Passed: true},
		{Name: "f", Passed: true},
		{Name: "g", Passed: false},
		{Name: "h", Passed: false},
	}

	assert.Equal(t, 6, checklist.Passed())
	assert.Equal(t, "6/8 (75%)", checklist.Summary())
}

func TestChecklistSummary_Empty(t *testing.T) {
	assert.Equal(t, "0/0 (0%)", Checklist{}.Summary())
}

func TestChecklistLookup(t *testing.T) {
	checklist := Checklist{{Name: "a", Passed: true}}

	passed, ok := checklist.Lookup("a")
	assert.True(t, ok)
	assert.True(t, passed)

	_, ok = checklist.Lookup("missing")
	assert.False(t, ok)
}

func TestParseConfidence(t *testing.T) {
	assert.Equal(t, ConfidenceHigh, ParseConfidence("high"))
	assert.Equal(t, ConfidenceHigh, ParseConfidence(" HIGH "))
	assert.Equal(t, ConfidenceLow, ParseConfidence("low"))
	assert.Equal(t, ConfidenceMedium, ParseConfidence("medium"))
	assert.Equal(t, ConfidenceMedium, ParseConfidence("certain"))
	assert.Equal(t, ConfidenceMedium, ParseConfidence(""))
}
