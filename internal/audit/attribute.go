package audit

import (
	"strconv"
	"strings"

	"github.com/sells-group/sar-cli/internal/model"
)

// SentinelCitation is returned when no case-data field is located in a
// sentence. It is never mixed with real citations: sentinel implies a
// singleton list, and new citation rules must keep it that way.
const SentinelCitation = "Derived from case analysis"

// sentinelPrefix is how citation quality checks recognize the sentinel.
const sentinelPrefix = "Derived from"

// IsSentinel reports whether a citation list is the no-match fallback.
func IsSentinel(citations []string) bool {
	return len(citations) > 0 && strings.HasPrefix(citations[0], sentinelPrefix)
}

// ResolveSources scans a sentence for literal occurrences of case-data fields
// and returns "<FieldPath> = <value>" citations in fixed checklist order, not
// order of appearance. Matching is case-sensitive substring containment; the
// only normalization is testing the incoming total amount with the currency
// glyph stripped. Pure and total: any input, including empty text, yields a
// non-empty result (the sentinel when nothing matches).
func ResolveSources(sentence string, rec *model.CaseRecord) []string {
	var sources []string

	if name := rec.Customer.Name; name != "" && strings.Contains(sentence, name) {
		sources = append(sources, "Customer.name = "+name)
	}

	if acct := rec.Customer.AccountNumber; acct != "" && strings.Contains(sentence, acct) {
		sources = append(sources, "Customer.account_number = "+acct)
	}

	// Narratives quote the incoming total either verbatim or as a bare
	// numeral without the currency glyph.
	amount := rec.IncomingTransactions.TotalAmount
	if amount != "" && (strings.Contains(sentence, amount.String()) || strings.Contains(sentence, amount.Bare())) {
		sources = append(sources, "Incoming.total_amount = "+amount.String())
	}

	count := strconv.Itoa(rec.IncomingTransactions.TotalCount)
	if strings.Contains(sentence, count) {
		sources = append(sources, "Incoming.transaction_count = "+count)
	}

	period := rec.SuspiciousActivityPeriod
	if period.StartDate != "" && strings.Contains(sentence, period.StartDate) {
		sources = append(sources, "Period.start_date = "+period.StartDate)
	}
	if period.EndDate != "" && strings.Contains(sentence, period.EndDate) {
		sources = append(sources, "Period.end_date = "+period.EndDate)
	}

	if txns := rec.OutgoingTransactions.Transactions; len(txns) > 0 {
		if benef := txns[0].BeneficiaryName; benef != "" && strings.Contains(sentence, benef) {
			sources = append(sources, "Outgoing.beneficiary = "+benef)
		}
	}

	if len(sources) == 0 {
		return []string{SentinelCitation}
	}
	return sources
}
