// Package casefile loads and validates structured case records from disk.
// The audit core assumes a fully-populated record; anything missing is a
// loader error, never a core concern.
package casefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/sar-cli/internal/model"
)

// Load reads a case record from a JSON or YAML file and validates it.
func Load(path string) (*model.CaseRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "casefile: read %s", path)
	}

	var rec model.CaseRecord
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &rec); err != nil {
			return nil, eris.Wrapf(err, "casefile: parse yaml %s", path)
		}
	default:
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, eris.Wrapf(err, "casefile: parse json %s", path)
		}
	}

	if err := Validate(&rec); err != nil {
		return nil, eris.Wrapf(err, "casefile: validate %s", path)
	}
	return &rec, nil
}

// Validate checks that every field the attribution resolver matches against
// is present. Counts may legitimately be zero, so only string fields are
// checked.
func Validate(rec *model.CaseRecord) error {
	var missing []string

	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	check("customer.name", rec.Customer.Name)
	check("customer.customer_id", rec.Customer.CustomerID)
	check("customer.account_number", rec.Customer.AccountNumber)
	check("alert_details.alert_type", rec.AlertDetails.AlertType)
	check("suspicious_activity_period.start_date", rec.SuspiciousActivityPeriod.StartDate)
	check("suspicious_activity_period.end_date", rec.SuspiciousActivityPeriod.EndDate)
	check("incoming_transactions.total_amount", rec.IncomingTransactions.TotalAmount.String())
	check("typology_mapping.primary_typology", rec.TypologyMapping.PrimaryTypology)

	for i, txn := range rec.OutgoingTransactions.Transactions {
		if strings.TrimSpace(txn.BeneficiaryName) == "" {
			missing = append(missing, fmt.Sprintf("outgoing_transactions.transactions[%d].beneficiary_name", i))
		}
	}

	if rec.IncomingTransactions.TotalCount < 0 {
		missing = append(missing, "incoming_transactions.total_count (negative)")
	}
	if rec.IncomingTransactions.UniqueCounterparties < 0 {
		missing = append(missing, "incoming_transactions.unique_counterparties (negative)")
	}

	if len(missing) > 0 {
		return eris.Errorf("missing or invalid required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
