package narrative

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sells-group/sar-cli/internal/model"
)

const systemText = "You are a financial crime compliance analyst writing Suspicious Activity Report (SAR) narratives for regulatory review. Return valid JSON matching the requested schema."

const promptTemplate = `You are a financial crime compliance analyst writing a Suspicious Activity Report (SAR) narrative.

CASE DETAILS:
- Customer: %s (ID: %s)
- Account: %s (%s)
- Alert Type: %s - %s
- Alert Score: %d/100
- Period: %s to %s

SUSPICIOUS ACTIVITY SUMMARY:
The customer received %d transactions totaling %s from %d different accounts over %d days. Subsequently, the customer transferred %s to an international beneficiary within hours.

KEY RED FLAGS:
%s
%s
INSTRUCTIONS:
Write a professional SAR narrative following FinCEN format with these sections:

1. SUBJECT INFORMATION
2. SUSPICIOUS ACTIVITY DESCRIPTION
3. PATTERN ANALYSIS AND MONEY LAUNDERING INDICATORS
4. INVESTIGATIVE FINDINGS
5. CONCLUSION AND BASIS FOR SUSPICION

Requirements:
- Be factual and objective
- Cite specific data points (dates, amounts, account numbers)
- Explain why the activity is suspicious
- Reference money laundering typologies
- Avoid bias or discriminatory language
- Write in clear, professional language suitable for regulatory review

Return your response in this JSON format:
{
  "narrative": "Full narrative text",
  "sections": [
    {
      "title": "Section title",
      "content": "Section content",
      "data_sources": ["list of data points used"],
      "confidence": "high|medium|low"
    }
  ],
  "reasoning": ["step 1: considered X", "step 2: analyzed Y", ...]
}`

// BuildPrompt renders the generation prompt for a case record.
func BuildPrompt(rec *model.CaseRecord) string {
	cust := rec.Customer
	alert := rec.AlertDetails
	period := rec.SuspiciousActivityPeriod
	incoming := rec.IncomingTransactions
	outgoing := rec.OutgoingTransactions

	var flags []string
	for _, flag := range rec.AdditionalContext.RedFlags {
		flags = append(flags, "- "+flag)
	}

	return fmt.Sprintf(promptTemplate,
		cust.Name, cust.CustomerID,
		cust.AccountNumber, cust.AccountType,
		alert.AlertType, alert.AlertSubtype,
		alert.AlertScore,
		period.StartDate, period.EndDate,
		incoming.TotalCount, incoming.TotalAmount,
		incoming.UniqueCounterparties, period.TotalDays,
		outgoing.TotalAmount,
		strings.Join(flags, "\n"),
		findingsBlock(rec.InvestigativeFindings),
	)
}

// findingsBlock renders investigative findings as a prompt context block.
// Keys are sorted so the prompt is deterministic for a given record.
func findingsBlock(findings model.InvestigativeFindings) string {
	if len(findings) == 0 {
		return ""
	}
	keys := make([]string, 0, len(findings))
	for k := range findings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("\nINVESTIGATIVE FINDINGS:\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "- %s: %s\n", strings.ReplaceAll(k, "_", " "), findings[k])
	}
	return b.String()
}
