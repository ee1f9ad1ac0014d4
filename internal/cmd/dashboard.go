package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vendalink/vendalink/internal/domain"
)

// dashboardSummary flattens the overview aggregate into a small table.
type dashboardSummary struct {
	dashboard domain.Dashboard
}

func (s dashboardSummary) TableHeader() []string {
	return []string{"Metric", "Value"}
}

func (s dashboardSummary) TableRows() [][]string {
	return [][]string{
		{"Customers", strconv.Itoa(len(s.dashboard.Customers))},
		{"Leads", strconv.Itoa(len(s.dashboard.Leads))},
		{"Deals", strconv.Itoa(len(s.dashboard.Deals))},
		{"Open deals", strconv.Itoa(len(s.dashboard.OpenDeals()))},
		{"Interactions", strconv.Itoa(len(s.dashboard.Interactions))},
		{"Pipeline value", formatMoney(s.dashboard.PipelineValue())},
	}
}

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"overview"},
	Short:   "Show the sales overview",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := requireAuth(cmd.Context())
		if err != nil {
			return err
		}

		dashboard, err := a.client.GetDashboard(cmd.Context())
		if err != nil {
			return a.wrapAPIError(err)
		}

		f, err := a.formatter()
		if err != nil {
			return err
		}

		// The table view shows the summary; json/yaml dump the full aggregate.
		if a.cfg.Output == "table" {
			return f.Format(dashboardSummary{dashboard: *dashboard})
		}
		return f.Format(dashboard)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
