package model

import (
	"encoding/json"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gopkg.in/yaml.v3"
)

// CurrencyGlyph is the currency symbol used by upstream case systems.
// Attribution tolerates amounts quoted with or without it.
const CurrencyGlyph = "₹"

// inr formats numbers with Indian digit grouping (₹50,00,000).
var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatCurrency renders a numeric amount the way case files quote it.
func FormatCurrency(n int64) string {
	return inr.Sprintf("%s%v", CurrencyGlyph, number.Decimal(n))
}

// Amount is a currency-formatted string. Case files may carry amounts either
// preformatted ("₹50,00,000") or as raw numbers; raw numbers are formatted on
// decode so attribution always matches against one canonical form.
type Amount string

func (a Amount) String() string { return string(a) }

// Bare returns the amount with the currency glyph stripped.
func (a Amount) Bare() string {
	return strings.ReplaceAll(string(a), CurrencyGlyph, "")
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = fromNumber(string(n))
	return nil
}

func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!int" || value.Tag == "!!float" {
		*a = fromNumber(value.Value)
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*a = Amount(s)
	return nil
}

func fromNumber(raw string) Amount {
	var n json.Number = json.Number(raw)
	if i, err := n.Int64(); err == nil {
		return Amount(FormatCurrency(i))
	}
	if f, err := n.Float64(); err == nil {
		return Amount(inr.Sprintf("%s%v", CurrencyGlyph, number.Decimal(f)))
	}
	return Amount(raw)
}

// CaseRecord is the immutable structured input for one generation pass.
// Loaders hand it over fully populated; the audit core never mutates it.
type CaseRecord struct {
	Customer                 Customer              `json:"customer" yaml:"customer"`
	AlertDetails             AlertDetails          `json:"alert_details" yaml:"alert_details"`
	SuspiciousActivityPeriod ActivityPeriod        `json:"suspicious_activity_period" yaml:"suspicious_activity_period"`
	IncomingTransactions     IncomingSummary       `json:"incoming_transactions" yaml:"incoming_transactions"`
	OutgoingTransactions     OutgoingSummary       `json:"outgoing_transactions" yaml:"outgoing_transactions"`
	AdditionalContext        AdditionalContext     `json:"additional_context" yaml:"additional_context"`
	TypologyMapping          TypologyMapping       `json:"typology_mapping" yaml:"typology_mapping"`
	InvestigativeFindings    InvestigativeFindings `json:"investigative_findings" yaml:"investigative_findings"`
}

// Customer holds the subject's KYC profile.
type Customer struct {
	Name                  string `json:"name" yaml:"name"`
	CustomerID            string `json:"customer_id" yaml:"customer_id"`
	AccountNumber         string `json:"account_number" yaml:"account_number"`
	AccountType           string `json:"account_type" yaml:"account_type"`
	DateOfBirth           string `json:"date_of_birth" yaml:"date_of_birth"`
	Occupation            string `json:"occupation" yaml:"occupation"`
	BusinessType          string `json:"business_type" yaml:"business_type"`
	Address               string `json:"address" yaml:"address"`
	AccountOpenDate       string `json:"account_open_date" yaml:"account_open_date"`
	KYCLastUpdated        string `json:"kyc_last_updated" yaml:"kyc_last_updated"`
	RiskRating            string `json:"risk_rating" yaml:"risk_rating"`
	AverageMonthlyBalance Amount `json:"average_monthly_balance" yaml:"average_monthly_balance"`
}

// AlertDetails describes the monitoring alert that opened the case.
type AlertDetails struct {
	AlertType    string `json:"alert_type" yaml:"alert_type"`
	AlertSubtype string `json:"alert_subtype" yaml:"alert_subtype"`
	AlertScore   int    `json:"alert_score" yaml:"alert_score"`
}

// ActivityPeriod is the suspicious-activity window. TotalDays is the
// inclusive span between StartDate and EndDate.
type ActivityPeriod struct {
	StartDate string `json:"start_date" yaml:"start_date"`
	EndDate   string `json:"end_date" yaml:"end_date"`
	TotalDays int    `json:"total_days" yaml:"total_days"`
}

// IncomingSummary aggregates the incoming side of the activity.
type IncomingSummary struct {
	TotalCount           int    `json:"total_count" yaml:"total_count"`
	TotalAmount          Amount `json:"total_amount" yaml:"total_amount"`
	AverageAmount        Amount `json:"average_amount" yaml:"average_amount"`
	UniqueCounterparties int    `json:"unique_counterparties" yaml:"unique_counterparties"`
}

// OutgoingSummary aggregates the outgoing side, with the ordered transaction
// records behind it.
type OutgoingSummary struct {
	TotalAmount  Amount                `json:"total_amount" yaml:"total_amount"`
	Transactions []OutgoingTransaction `json:"transactions" yaml:"transactions"`
}

// OutgoingTransaction is a single outgoing transfer.
type OutgoingTransaction struct {
	Date            string `json:"date" yaml:"date"`
	TransactionTime string `json:"transaction_time" yaml:"transaction_time"`
	Amount          Amount `json:"amount" yaml:"amount"`
	BeneficiaryName string `json:"beneficiary_name" yaml:"beneficiary_name"`
	ToAccount       string `json:"to_account" yaml:"to_account"`
	BeneficiaryBank string `json:"beneficiary_bank" yaml:"beneficiary_bank"`
}

// AdditionalContext carries the investigator-supplied red flags and the
// subject's normal behavior baseline.
type AdditionalContext struct {
	RedFlags                       []string `json:"red_flags" yaml:"red_flags"`
	NormalBusinessPattern          string   `json:"normal_business_pattern" yaml:"normal_business_pattern"`
	PreviousInternationalTransfers string   `json:"previous_international_transfers" yaml:"previous_international_transfers"`
}

// TypologyMapping names the money-laundering pattern the case maps to.
type TypologyMapping struct {
	PrimaryTypology string `json:"primary_typology" yaml:"primary_typology"`
	Description     string `json:"description" yaml:"description"`
}

// InvestigativeFindings holds free-form verification outcomes. These feed
// narrative text only; attribution never matches against them.
type InvestigativeFindings map[string]string
