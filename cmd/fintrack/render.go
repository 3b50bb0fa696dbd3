package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"fintrack/internal/core"
	"fintrack/internal/report"
)

func money(m core.Money) string {
	return humanize.FormatFloat("#,###.##", m.Float64())
}

func pct(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

func writeDashboard(w io.Writer, d report.Dashboard) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "%s %d\t\t\n", d.Month.Month, d.Month.Year)
	fmt.Fprintf(tw, "Income\t%s\t\n", money(d.Month.Income))
	fmt.Fprintf(tw, "Expenses\t%s\t\n", money(d.Month.Expenses))
	fmt.Fprintf(tw, "Balance\t%s\t\n", money(d.Month.Balance()))
	fmt.Fprintln(tw, "\t\t")

	fmt.Fprintln(tw, "Recent\tDate\tType\tAmount\t")
	for _, t := range d.Recent {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", t.Description, t.Date, t.Type, money(t.Amount))
	}
	fmt.Fprintln(tw, "\t\t")

	writeBudgets(tw, d.Budgets)
	fmt.Fprintf(tw, "Total\t%s\t%s\t%s\t\t\n", money(d.BudgetTotals.Limit), money(d.BudgetTotals.Spent), money(d.BudgetTotals.Remaining))
	fmt.Fprintln(tw, "\t\t")

	fmt.Fprintln(tw, "Goal\tSaved\tTarget\tProgress\tDays\tStatus\t")
	for _, g := range d.Goals {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t\n", g.Name, money(g.CurrentAmount), money(g.TargetAmount), pct(g.Percentage), g.DaysRemaining, g.Status)
	}
	fmt.Fprintf(tw, "Total\t%s\t%s\t\t\t\t\n", money(d.GoalTotals.Saved), money(d.GoalTotals.Target))

	return tw.Flush()
}

func writeBudgets(tw *tabwriter.Writer, budgets []report.BudgetView) {
	fmt.Fprintln(tw, "Budget\tLimit\tSpent\tRemaining\tUsed\tStatus\t")
	for _, b := range budgets {
		// unclamped so overspend shows above 100%
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n", b.Name, money(b.Limit), money(b.Spent), money(b.Remaining), pct(b.Ratio*100), b.Status)
	}
}

func writeReport(w io.Writer, r report.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "Last %d months of %d\t\t\t\t\n", int(r.Period), r.Year)
	fmt.Fprintln(tw, "Month\tIncome\tExpenses\tBalance\t")
	for _, m := range r.Trend {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", m.Label(), money(m.Income), money(m.Expenses), money(m.Balance()))
	}
	fmt.Fprintln(tw, "\t\t")

	fmt.Fprintln(tw, "Category\tSpent\t")
	for _, c := range r.Categories {
		fmt.Fprintf(tw, "%s\t%s\t\n", c.Name, money(c.Amount))
	}
	fmt.Fprintln(tw, "\t\t")

	writeBudgets(tw, r.Budgets)
	fmt.Fprintln(tw, "\t\t")

	fmt.Fprintln(tw, "Top\tDate\tCategory\tAmount\t")
	for _, t := range r.Top {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", t.Description, t.Date, t.Category, money(t.Amount))
	}

	return tw.Flush()
}

func writeCategories(w io.Writer, categories []string) error {
	for _, c := range categories {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	return nil
}
