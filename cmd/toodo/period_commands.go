package main

import (
	"fmt"
	"time"

	"github.com/SuzumiyaAoba/toodo/internal/ui"
	"github.com/SuzumiyaAoba/toodo/period"
	"github.com/spf13/cobra"
)

var periodCmd = &cobra.Command{
	Use:   "period",
	Short: "Manage scheduled work periods",
}

// period create
var periodCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Schedule a new work period",
	Args:  cobra.ExactArgs(1),
	RunE:  runPeriodCreate,
}

var (
	periodCreateDate  string
	periodCreateStart string
	periodCreateEnd   string
)

// period update
var periodUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a work period",
	Args:  cobra.ExactArgs(1),
	RunE:  runPeriodUpdate,
}

var (
	periodUpdateName  string
	periodUpdateDate  string
	periodUpdateStart string
	periodUpdateEnd   string
)

// period delete
var periodDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Short:   "Delete a work period",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE:    runPeriodDelete,
}

// period show
var periodShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a work period",
	Args:  cobra.ExactArgs(1),
	RunE:  runPeriodShow,
}

var periodShowJSON bool

// period list
var periodListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List work periods",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runPeriodList,
}

var (
	periodListFrom string
	periodListTo   string
	periodListJSON bool
)

// period assign / unassign
var periodAssignCmd = &cobra.Command{
	Use:   "assign <activity-id> <period-id>",
	Short: "Attribute a recorded activity to a period",
	Args:  cobra.ExactArgs(2),
	RunE:  runPeriodAssign,
}

var periodUnassignCmd = &cobra.Command{
	Use:   "unassign <activity-id>",
	Short: "Remove an activity's period attribution",
	Args:  cobra.ExactArgs(1),
	RunE:  runPeriodUnassign,
}

func init() {
	rootCmd.AddCommand(periodCmd)
	periodCmd.AddCommand(periodCreateCmd, periodUpdateCmd, periodDeleteCmd,
		periodShowCmd, periodListCmd, periodAssignCmd, periodUnassignCmd)

	periodCreateCmd.Flags().StringVar(&periodCreateDate, "date", "", "Day of the period (YYYY-MM-DD, default today)")
	periodCreateCmd.Flags().StringVar(&periodCreateStart, "start", "", "Start time (HH:MM)")
	periodCreateCmd.Flags().StringVar(&periodCreateEnd, "end", "", "End time (HH:MM)")
	periodCreateCmd.MarkFlagRequired("start")
	periodCreateCmd.MarkFlagRequired("end")

	periodUpdateCmd.Flags().StringVar(&periodUpdateName, "name", "", "New name")
	periodUpdateCmd.Flags().StringVar(&periodUpdateDate, "date", "", "New day (YYYY-MM-DD)")
	periodUpdateCmd.Flags().StringVar(&periodUpdateStart, "start", "", "New start time (HH:MM)")
	periodUpdateCmd.Flags().StringVar(&periodUpdateEnd, "end", "", "New end time (HH:MM)")

	periodShowCmd.Flags().BoolVar(&periodShowJSON, "json", false, "Output as JSON")

	periodListCmd.Flags().StringVar(&periodListFrom, "from", "", "Earliest day to include (YYYY-MM-DD)")
	periodListCmd.Flags().StringVar(&periodListTo, "to", "", "Latest day to include (YYYY-MM-DD)")
	periodListCmd.Flags().BoolVar(&periodListJSON, "json", false, "Output as JSON")
}

func runPeriodCreate(cmd *cobra.Command, args []string) error {
	ledger, _, err := openLedger()
	if err != nil {
		return err
	}

	date := time.Now()
	if periodCreateDate != "" {
		date, err = parseDateFlag(periodCreateDate)
		if err != nil {
			return err
		}
	}
	start, err := parseClockOnDate(date, periodCreateStart)
	if err != nil {
		return err
	}
	end, err := parseClockOnDate(date, periodCreateEnd)
	if err != nil {
		return err
	}

	created, err := ledger.CreatePeriod(args[0], start, end)
	if err != nil {
		return err
	}

	fmt.Printf("Created period %s: %s %s-%s\n", created.ID, created.Name,
		ui.FormatClock(created.StartTime), ui.FormatClock(created.EndTime))
	return nil
}

func runPeriodUpdate(cmd *cobra.Command, args []string) error {
	ledger, _, err := openLedger()
	if err != nil {
		return err
	}

	if !hasChangedFlags(cmd, "name", "date", "start", "end") {
		return fmt.Errorf("nothing to update; pass at least one flag")
	}

	current, err := ledger.ShowPeriod(args[0])
	if err != nil {
		return err
	}

	opts := period.UpdatePeriodOptions{}
	if cmd.Flags().Changed("name") {
		opts.Name = &periodUpdateName
	}

	// Rescheduling flags compose: the date carries over unless changed,
	// and unchanged clock times keep their old value on the new date.
	if hasChangedFlags(cmd, "date", "start", "end") {
		date := current.Date
		if periodUpdateDate != "" {
			date, err = parseDateFlag(periodUpdateDate)
			if err != nil {
				return err
			}
		}

		start := current.StartTime
		if periodUpdateStart != "" {
			start, err = parseClockOnDate(date, periodUpdateStart)
			if err != nil {
				return err
			}
		} else {
			start = time.Date(date.Year(), date.Month(), date.Day(),
				start.Hour(), start.Minute(), 0, 0, date.Location())
		}

		end := current.EndTime
		if periodUpdateEnd != "" {
			end, err = parseClockOnDate(date, periodUpdateEnd)
			if err != nil {
				return err
			}
		} else {
			// An unchanged end at 00:00 is the next midnight and stays
			// one day ahead of the new date.
			day := date.Day()
			if end.Hour() == 0 && end.Minute() == 0 {
				day++
			}
			end = time.Date(date.Year(), date.Month(), day,
				end.Hour(), end.Minute(), 0, 0, date.Location())
		}

		opts.Start = &start
		opts.End = &end
	}

	updated, err := ledger.UpdatePeriod(current.ID, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Updated period %s: %s %s %s-%s\n", updated.ID, updated.Name,
		ui.FormatDate(updated.Date), ui.FormatClock(updated.StartTime), ui.FormatClock(updated.EndTime))
	return nil
}

func runPeriodDelete(cmd *cobra.Command, args []string) error {
	ledger, _, err := openLedger()
	if err != nil {
		return err
	}

	if err := ledger.DeletePeriod(args[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted period %s\n", args[0])
	return nil
}

func runPeriodShow(cmd *cobra.Command, args []string) error {
	ledger, _, err := openLedger()
	if err != nil {
		return err
	}

	shown, err := ledger.ShowPeriod(args[0])
	if err != nil {
		return err
	}

	if periodShowJSON {
		return encodeJSONToStdout(shown)
	}

	fmt.Printf("ID:       %s\n", shown.ID)
	fmt.Printf("Name:     %s\n", shown.Name)
	fmt.Printf("Date:     %s\n", ui.FormatDate(shown.Date))
	fmt.Printf("Start:    %s\n", ui.FormatClock(shown.StartTime))
	fmt.Printf("End:      %s\n", ui.FormatClock(shown.EndTime))
	fmt.Printf("Duration: %s\n", ui.FormatDurationShort(shown.Duration()))
	return nil
}

func runPeriodList(cmd *cobra.Command, args []string) error {
	ledger, _, err := openLedger()
	if err != nil {
		return err
	}

	filter := period.ListPeriodsFilter{}
	if periodListFrom != "" {
		from, err := parseDateFlag(periodListFrom)
		if err != nil {
			return err
		}
		filter.From = &from
	}
	if periodListTo != "" {
		to, err := parseDateFlag(periodListTo)
		if err != nil {
			return err
		}
		filter.To = &to
	}

	periods, err := ledger.ListPeriods(filter)
	if err != nil {
		return err
	}

	if periodListJSON {
		return encodeJSONToStdout(periods)
	}

	if len(periods) == 0 {
		fmt.Println("No periods found.")
		return nil
	}

	builder := ui.NewTableBuilder([]string{"ID", "NAME", "DATE", "START", "END", "DURATION"}, len(periods))
	for _, p := range periods {
		builder.AddRow([]string{
			p.ID,
			ui.TruncateTableCell(p.Name),
			ui.FormatDate(p.Date),
			ui.FormatClock(p.StartTime),
			ui.FormatClock(p.EndTime),
			ui.FormatDurationShort(p.Duration()),
		})
	}
	fmt.Print(builder.String())
	return nil
}

func runPeriodAssign(cmd *cobra.Command, args []string) error {
	ledger, _, err := openLedger()
	if err != nil {
		return err
	}

	if err := ledger.AssociateActivity(args[0], args[1]); err != nil {
		return err
	}

	fmt.Printf("Assigned activity %s to period %s\n", args[0], args[1])
	return nil
}

func runPeriodUnassign(cmd *cobra.Command, args []string) error {
	ledger, _, err := openLedger()
	if err != nil {
		return err
	}

	if err := ledger.DissociateActivity(args[0]); err != nil {
		return err
	}

	fmt.Printf("Unassigned activity %s\n", args[0])
	return nil
}
