package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/guttosm/dashpulse/internal/domain/models"
	"github.com/guttosm/dashpulse/internal/mockdata"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

func newSeriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series SYMBOL",
		Short: "Print a generated mock series",
		Long: `Generate the 31-day mock series for SYMBOL and print it as a table or JSON.
Example: dashpulse series AAPL --type dynamic-heatmap`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, _ := cmd.Flags().GetString("type")
			asJSON, _ := cmd.Flags().GetBool("json")
			return runSeries(cmd.Context(), cmd.OutOrStdout(), args[0], typ, asJSON)
		},
	}
	cmd.Flags().StringP("type", "t", string(models.TrendLine), "trend-line, dynamic-heatmap or 3d-bar-chart")
	cmd.Flags().Bool("json", false, "Print JSON instead of a table")
	return cmd
}

func runSeries(ctx context.Context, w io.Writer, symbol, typ string, asJSON bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	vt, err := models.ParseVisualizationType(typ)
	if err != nil {
		return err
	}
	cache := mockdata.NewSeriesCache(mockdata.NewGenerator())
	s, err := cache.Get(ctx, strings.ToUpper(strings.TrimSpace(symbol)), vt)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	return renderSeries(w, s)
}

// renderSeries prints s as a bordered table with columns chosen by the point variant.
func renderSeries(w io.Writer, s *models.Series) error {
	var headers []string
	switch s.Type() {
	case models.TrendLine:
		headers = []string{"Date", "Price", "Volume"}
	case models.DynamicHeatmap:
		headers = []string{"Date", "Value", "X", "Y"}
	case models.BarChart3D:
		headers = []string{"Date", "Price", "Volume", "Position"}
	}

	rows := make([][]string, 0, s.Len())
	for _, p := range s.Points() {
		switch p := p.(type) {
		case models.TrendPoint:
			rows = append(rows, []string{p.Date, formatFloat(p.Price), strconv.FormatInt(p.Volume, 10)})
		case models.HeatmapPoint:
			rows = append(rows, []string{p.Date, formatFloat(p.Value), strconv.Itoa(p.CategoryX), strconv.Itoa(p.BucketY)})
		case models.BarPoint:
			rows = append(rows, []string{p.Date, formatFloat(p.Price), strconv.FormatInt(p.Volume, 10), strconv.Itoa(p.PositionX)})
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	title := titleStyle.Render(fmt.Sprintf("%s · %s · %d days", s.Symbol(), s.Type(), s.Len()))
	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, title, t.Render()))
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
