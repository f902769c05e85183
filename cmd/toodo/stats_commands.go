package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SuzumiyaAoba/toodo/internal/ui"
	"github.com/SuzumiyaAoba/toodo/period"
	"github.com/SuzumiyaAoba/toodo/todo"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show utilization statistics for scheduled periods",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var (
	statsFrom    string
	statsTo      string
	statsPeriods []string
	statsTodos   []string
	statsTags    []string
	statsJSON    bool
)

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsFrom, "from", "", "Earliest day to include (YYYY-MM-DD)")
	statsCmd.Flags().StringVar(&statsTo, "to", "", "Latest day to include (YYYY-MM-DD)")
	statsCmd.Flags().StringArrayVar(&statsPeriods, "period", nil, "Restrict to specific period IDs")
	statsCmd.Flags().StringArrayVar(&statsTodos, "todo", nil, "Restrict to specific todo IDs")
	statsCmd.Flags().StringArrayVar(&statsTags, "tag", nil, "Restrict to todos carrying specific tags")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
}

// storeActivitySource adapts the todo store's activity log to the
// statistics input shape.
type storeActivitySource struct {
	store *todo.Store
}

func (s storeActivitySource) ActivityRecords() ([]period.ActivityRecord, error) {
	activities, err := s.store.ListActivities()
	if err != nil {
		return nil, err
	}

	records := make([]period.ActivityRecord, 0, len(activities))
	for _, activity := range activities {
		records = append(records, period.ActivityRecord{
			ID:           activity.ID,
			TodoID:       activity.TodoID,
			WorkTime:     activity.WorkTime,
			WorkPeriodID: activity.WorkPeriodID,
			CreatedAt:    activity.CreatedAt,
		})
	}
	return records, nil
}

// storeTagSource adapts the todo store's tag assignments to the
// statistics join interface.
type storeTagSource struct {
	store *todo.Store
}

func (s storeTagSource) TagIDsForTodo(todoID string) ([]string, error) {
	return s.store.ItemTagIDs(todoID)
}

func runStats(cmd *cobra.Command, args []string) error {
	ledger, store, err := openLedger()
	if err != nil {
		return err
	}

	filter := period.StatsFilter{PeriodIDs: statsPeriods}
	if statsFrom != "" {
		from, err := parseDateFlag(statsFrom)
		if err != nil {
			return err
		}
		filter.From = &from
	}
	if statsTo != "" {
		to, err := parseDateFlag(statsTo)
		if err != nil {
			return err
		}
		filter.To = &to
	}

	if len(statsTodos) > 0 {
		index, err := store.IDIndex()
		if err != nil {
			return err
		}
		for _, prefix := range statsTodos {
			resolved, err := index.Resolve(prefix)
			if err != nil {
				return err
			}
			filter.TodoIDs = append(filter.TodoIDs, resolved)
		}
	}

	if len(statsTags) > 0 {
		tags, err := store.ListTags()
		if err != nil {
			return err
		}
		for _, name := range statsTags {
			tagID, err := resolveTagID(tags, name)
			if err != nil {
				return err
			}
			filter.TagIDs = append(filter.TagIDs, tagID)
		}
	}

	stats, err := ledger.ComputeStatistics(filter,
		storeActivitySource{store: store}, storeTagSource{store: store})
	if err != nil {
		return err
	}

	if statsJSON {
		return encodeJSONToStdout(stats)
	}

	printStats(stats, store)
	return nil
}

func resolveTagID(tags []todo.Tag, nameOrID string) (string, error) {
	needle := strings.ToLower(strings.TrimSpace(nameOrID))
	for _, tag := range tags {
		if tag.Name == needle || strings.ToLower(tag.ID) == needle {
			return tag.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", todo.ErrTagNotFound, nameOrID)
}

func printStats(stats *period.Statistics, store *todo.Store) {
	fmt.Printf("Periods:      %d (%s scheduled)\n", stats.PeriodCount,
		ui.FormatWorkDuration(stats.TotalPeriodTime))
	fmt.Printf("Activities:   %d (%s worked)\n", stats.ActivityCount,
		ui.FormatWorkDuration(stats.TotalActivityTime))
	fmt.Printf("Utilization:  %.1f%%\n", stats.UtilizationRate*100)

	if len(stats.TimeByTodo) > 0 {
		fmt.Println("\nBy todo:")
		printBreakdown(stats.TimeByTodo, todoLabels(store, stats.TimeByTodo))
	}
	if len(stats.TimeByTag) > 0 {
		fmt.Println("\nBy tag:")
		printBreakdown(stats.TimeByTag, tagLabels(store, stats.TimeByTag))
	}
}

// printBreakdown renders a per-key time table, most time first.
func printBreakdown(times map[string]int64, labels map[string]string) {
	keys := make([]string, 0, len(times))
	for key := range times {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if times[keys[i]] != times[keys[j]] {
			return times[keys[i]] > times[keys[j]]
		}
		return keys[i] < keys[j]
	})

	builder := ui.NewTableBuilder([]string{"ID", "TIME", "NAME"}, len(keys))
	for _, key := range keys {
		label := labels[key]
		if label == "" {
			label = "-"
		}
		builder.AddRow([]string{key, ui.FormatWorkDuration(times[key]), ui.TruncateTableCell(label)})
	}
	fmt.Print(builder.String())
}

func todoLabels(store *todo.Store, times map[string]int64) map[string]string {
	ids := make([]string, 0, len(times))
	for id := range times {
		ids = append(ids, id)
	}
	labels := make(map[string]string, len(ids))
	todos, err := store.Show(ids)
	if err != nil {
		return labels
	}
	for _, item := range todos {
		labels[item.ID] = item.Title
	}
	return labels
}

func tagLabels(store *todo.Store, times map[string]int64) map[string]string {
	labels := make(map[string]string, len(times))
	tags, err := store.ListTags()
	if err != nil {
		return labels
	}
	for _, tag := range tags {
		if _, ok := times[tag.ID]; ok {
			labels[tag.ID] = tag.Name
		}
	}
	return labels
}
