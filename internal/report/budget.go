package report

import (
	"fmt"

	"fjacquet/homefinance/internal/fileutils"
	"fjacquet/homefinance/internal/ledger"

	"gopkg.in/yaml.v3"
)

// budgetRow is the YAML shape of one budget report line.
type budgetRow struct {
	Category  string `yaml:"category"`
	Limit     string `yaml:"limit"`
	Spent     string `yaml:"spent"`
	Remaining string `yaml:"remaining,omitempty"`
	Unlimited bool   `yaml:"unlimited,omitempty"`
}

// WriteBudgetYAML writes the budget report lines to a YAML file.
func WriteBudgetYAML(lines []ledger.BudgetLine, yamlFile string) error {
	rows := make([]budgetRow, 0, len(lines))
	for _, l := range lines {
		row := budgetRow{
			Category:  l.Category,
			Limit:     l.Limit.StringFixed(2),
			Spent:     l.Spent.StringFixed(2),
			Unlimited: l.Unlimited,
		}
		if !l.Unlimited {
			row.Remaining = l.Remaining.StringFixed(2)
		}
		rows = append(rows, row)
	}

	data, err := yaml.Marshal(rows)
	if err != nil {
		return fmt.Errorf("error marshaling budget report: %w", err)
	}

	if err := fileutils.WriteFile(yamlFile, data, 0644); err != nil {
		return fmt.Errorf("error writing budget report: %w", err)
	}

	log.WithField("file", yamlFile).Info("Successfully wrote budget report")
	return nil
}
