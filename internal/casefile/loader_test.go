package casefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/sar-cli/internal/model"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validJSON = `{
	"customer": {
		"name": "Rajesh Kumar",
		"customer_id": "CUST-88231",
		"account_number": "5021-8834-9912"
	},
	"alert_details": {"alert_type": "Rapid Movement of Funds"},
	"suspicious_activity_period": {"start_date": "2024-01-15", "end_date": "2024-02-29", "total_days": 45},
	"incoming_transactions": {"total_count": 47, "total_amount": "₹50,00,000", "unique_counterparties": 23},
	"outgoing_transactions": {
		"total_amount": "₹49,50,000",
		"transactions": [{"beneficiary_name": "Global Trade FZE", "date": "2024-03-01"}]
	},
	"typology_mapping": {"primary_typology": "Layering"}
}`

func TestLoad_JSON(t *testing.T) {
	path := writeTempFile(t, "case.json", validJSON)

	rec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Rajesh Kumar", rec.Customer.Name)
	assert.Equal(t, model.Amount("₹50,00,000"), rec.IncomingTransactions.TotalAmount)
	assert.Equal(t, 47, rec.IncomingTransactions.TotalCount)
}

func TestLoad_YAML(t *testing.T) {
	path := writeTempFile(t, "case.yaml", `
customer:
  name: Rajesh Kumar
  customer_id: CUST-88231
  account_number: 5021-8834-9912
alert_details:
  alert_type: Rapid Movement of Funds
suspicious_activity_period:
  start_date: "2024-01-15"
  end_date: "2024-02-29"
  total_days: 45
incoming_transactions:
  total_count: 47
  total_amount: "₹50,00,000"
  unique_counterparties: 23
typology_mapping:
  primary_typology: Layering
`)

	rec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "CUST-88231", rec.Customer.CustomerID)
	assert.Equal(t, "2024-02-29", rec.SuspiciousActivityPeriod.EndDate)
}

func TestLoad_NumericAmountFormatted(t *testing.T) {
	path := writeTempFile(t, "case.json", `{
		"customer": {"name": "A", "customer_id": "B", "account_number": "C"},
		"alert_details": {"alert_type": "D"},
		"suspicious_activity_period": {"start_date": "E", "end_date": "F"},
		"incoming_transactions": {"total_amount": 5000000},
		"typology_mapping": {"primary_typology": "G"}
	}`)

	rec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, model.Amount("₹50,00,000"), rec.IncomingTransactions.TotalAmount)
}

func TestLoad_MissingFields(t *testing.T) {
	path := writeTempFile(t, "case.json", `{"customer": {"name": "Rajesh Kumar"}}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customer.customer_id")
	assert.Contains(t, err.Error(), "alert_details.alert_type")
	assert.Contains(t, err.Error(), "typology_mapping.primary_typology")
}

func TestLoad_BadJSON(t *testing.T) {
	path := writeTempFile(t, "case.json", `{not json`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse json")
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestValidate_MissingBeneficiary(t *testing.T) {
	rec := &model.CaseRecord{
		Customer: model.Customer{Name: "A", CustomerID: "B", AccountNumber: "C"},
		AlertDetails: model.AlertDetails{AlertType: "D"},
		SuspiciousActivityPeriod: model.ActivityPeriod{StartDate: "E", EndDate: "F"},
		IncomingTransactions: model.IncomingSummary{TotalAmount: "₹1"},
		TypologyMapping: model.TypologyMapping{PrimaryTypology: "G"},
		OutgoingTransactions: model.OutgoingSummary{
			Transactions: []model.OutgoingTransaction{{Date: "2024-03-01"}},
		},
	}

	err := Validate(rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outgoing_transactions.transactions[0].beneficiary_name")
}

func TestValidate_NegativeCounts(t *testing.T) {
	rec := &model.CaseRecord{
		Customer: model.Customer{Name: "A", CustomerID: "B", AccountNumber: "C"},
		AlertDetails: model.AlertDetails{AlertType: "D"},
		SuspiciousActivityPeriod: model.ActivityPeriod{StartDate: "E", EndDate: "F"},
		IncomingTransactions: model.IncomingSummary{TotalAmount: "₹1", TotalCount: -1},
		TypologyMapping: model.TypologyMapping{PrimaryTypology: "G"},
	}

	err := Validate(rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "total_count (negative)")
}
