// internal/cli/render.go

package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kinvolk/coding-game-service/internal/bank"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
	overdraftStyle = cellStyle.Foreground(lipgloss.Color("9"))
)

// renderReports 把帳戶報告畫成表格，透支的列以紅色標示。
func renderReports(reports []bank.Report) string {
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		flag := ""
		if r.InOverdraft {
			flag = "yes"
		}
		rows = append(rows, []string{r.Name, strconv.FormatInt(r.Balance, 10), flag})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "BALANCE", "OVERDRAFT").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(reports) && reports[row].InOverdraft:
				return overdraftStyle
			default:
				return cellStyle
			}
		})
	return t.String()
}
