// Package statement knows the shape of a specific broker's statement format:
// which columns matter, which rows are aggregates, and which labels carry
// summary totals. Formats are data, not code, so new statement layouts can be
// added as YAML profiles.
package statement

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ActionPolicy selects how the ledger's Action column is derived.
type ActionPolicy string

const (
	// PolicyLifecycle classifies OPEN/CLOSE from the statement's lifecycle code.
	PolicyLifecycle ActionPolicy = "lifecycle"
	// PolicySide classifies BUY/SELL from the quantity sign.
	PolicySide ActionPolicy = "side"
)

// Profile describes one statement format.
type Profile struct {
	Name string `yaml:"name"`

	// Column names as they appear in the promoted header.
	DescriptionColumn string   `yaml:"description_column"`
	DateTimeColumn    string   `yaml:"date_time_column"`
	QuantityColumn    string   `yaml:"quantity_column"`
	ProceedsColumn    string   `yaml:"proceeds_column"`
	FeeColumn         string   `yaml:"fee_column"`
	CodeColumn        string   `yaml:"code_column"`
	TotalColumn       string   `yaml:"total_column"`
	PriceColumns      []string `yaml:"price_columns"`

	// Labels that mark aggregate and metadata rows.
	SummaryLabels      []string `yaml:"summary_labels"`
	SectionLabels      []string `yaml:"section_labels"`
	PlaceholderTickers []string `yaml:"placeholder_tickers"`
	TotalPrefix        string   `yaml:"total_prefix"`
	CarriedPrefix      string   `yaml:"carried_prefix"`

	ScanWidth    int          `yaml:"scan_width"`
	ActionPolicy ActionPolicy `yaml:"action_policy"`
}

// Default returns the Interactive Brokers realized P&L profile.
func Default() Profile {
	return Profile{
		Name:              "ibkr",
		DescriptionColumn: "Symbol",
		DateTimeColumn:    "Date/Time",
		QuantityColumn:    "Quantity",
		ProceedsColumn:    "Proceeds",
		FeeColumn:         "Comm/Fee",
		CodeColumn:        "Code",
		TotalColumn:       "Proceeds",
		PriceColumns:      []string{"T. Price", "C. Price"},
		SummaryLabels: []string{
			"Total Stocks",
			"Total Equity and Index Options",
			"Total (All Assets)",
			"Total (Combined Assets)",
		},
		SectionLabels:      []string{"Stocks", "Crypto", "Forex"},
		PlaceholderTickers: []string{"GBP", "ETHUSD"},
		TotalPrefix:        "Total",
		CarriedPrefix:      "Carried by",
		ScanWidth:          20,
		ActionPolicy:       PolicyLifecycle,
	}
}

// Load reads a profile from a YAML file. Unset fields fall back to the
// defaults, so a profile file only needs to override what differs.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile: %w", err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	if p.Name == "" {
		return Profile{}, fmt.Errorf("profile %s: name is required", path)
	}
	return p, nil
}

// Save writes a profile to a YAML file.
func Save(path string, p Profile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}
