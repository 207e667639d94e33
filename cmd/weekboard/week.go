package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/weekboard/weekboard/pkg/board"
	"github.com/weekboard/weekboard/pkg/icsexport"
	"github.com/weekboard/weekboard/pkg/log"
)

const dateLayout = "2006-01-02"

// viewFor builds the week containing the --date flag (today by default).
func (a *app) viewFor(cmd *cobra.Command) (board.WeekView, error) {
	ref := time.Now().In(a.cfg.Location())
	if s, _ := cmd.Flags().GetString("date"); s != "" {
		d, err := time.ParseInLocation(dateLayout, s, a.cfg.Location())
		if err != nil {
			return board.WeekView{}, fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", s, err)
		}
		ref = d
	}
	return board.BuildWeek(board.StartOfWeek(ref, a.cfg.WeekStart), a.engine.WorkingHours()), nil
}

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Print the week's tasks slot by slot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		view, err := a.viewFor(cmd)
		if err != nil {
			return err
		}
		grid := a.engine.Index(view)

		if jsonOutput {
			return outputJSON(weekToMap(grid))
		}

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		c := grid.Completion()
		first, last := view.Days[0].Date, view.Days[len(view.Days)-1].Date
		fmt.Printf("%s %s\n", cyan("Week of "+first.Format("Jan 2")+" – "+last.Format("Jan 2, 2006")),
			gray(fmt.Sprintf("(%d/%d done)", c.Done, c.Total)))

		for _, d := range view.Days {
			dc := grid.DayCompletion(d.Weekday)
			fmt.Printf("\n%s %s\n", yellow(d.Name+" "+d.Display), gray(fmt.Sprintf("%d/%d", dc.Done, dc.Total)))
			if dc.Total == 0 {
				fmt.Printf("  %s\n", gray("nothing scheduled"))
				continue
			}
			for _, h := range view.Hours {
				for _, t := range grid.Bucket(d.Weekday, h) {
					fmt.Printf("  %02d:00 %s %s %s\n", h, statusLabel(t), t.Title, gray(t.ID))
				}
			}
		}

		if n := grid.Hidden(); n > 0 {
			fmt.Printf("\n%s\n", gray(fmt.Sprintf("%d task(s) outside working hours %s", n, a.engine.WorkingHours())))
		}
		return nil
	},
}

func weekToMap(grid *board.Grid) map[string]any {
	days := make([]map[string]any, 0, len(grid.View.Days))
	for _, d := range grid.View.Days {
		var tasks []board.Task
		for _, h := range grid.View.Hours {
			tasks = append(tasks, grid.Bucket(d.Weekday, h)...)
		}
		dc := grid.DayCompletion(d.Weekday)
		days = append(days, map[string]any{
			"day":     string(d.Weekday),
			"date":    d.Date.Format(dateLayout),
			"display": d.Display,
			"done":    dc.Done,
			"total":   dc.Total,
			"tasks":   tasksToMap(tasks),
		})
	}
	return map[string]any{
		"hours":  grid.View.Hours,
		"days":   days,
		"hidden": grid.Hidden(),
	}
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a week as an iCalendar (.ics) file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		view, err := a.viewFor(cmd)
		if err != nil {
			return err
		}
		grid := a.engine.Index(view)

		var w io.Writer = os.Stdout
		out, _ := cmd.Flags().GetString("output")
		if out != "" && out != "-" {
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}

		err = icsexport.Write(w, grid, icsexport.Options{
			Location: a.cfg.Location(),
			Duration: a.cfg.ExportDuration(),
		})
		if err != nil {
			return fmt.Errorf("writing calendar: %w", err)
		}
		c := grid.Completion()
		log.Info("week exported", "week", view.Days[0].Date.Format(dateLayout), "events", c.Total, "output", out)
		if out != "" && out != "-" {
			fmt.Fprintf(os.Stderr, "%s %d event(s) to %s\n", color.GreenString("Exported"), c.Total, out)
		}
		return nil
	},
}

func init() {
	weekCmd.Flags().String("date", "", "any date in the week to show (YYYY-MM-DD)")
	exportCmd.Flags().String("date", "", "any date in the week to export (YYYY-MM-DD)")
	exportCmd.Flags().StringP("output", "o", "", "output file (default stdout)")

	rootCmd.AddCommand(weekCmd, exportCmd)
}
