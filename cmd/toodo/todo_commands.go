package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/SuzumiyaAoba/toodo/todo"
	"github.com/spf13/cobra"
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage todos for the current project",
}

// todo create
var todoCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new todo",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoCreate,
}

var (
	todoCreateDescription string
	todoCreatePriority    string
	todoCreateDue         string
	todoCreateParent      string
	todoCreateProject     string
	todoCreateDeps        []string
	todoCreateTags        []string
)

// todo update
var todoUpdateCmd = &cobra.Command{
	Use:     "update <id>...",
	Short:   "Update one or more todos",
	Aliases: []string{"edit"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runTodoUpdate,
}

var (
	todoUpdateTitle       string
	todoUpdateDescription string
	todoUpdatePriority    string
	todoUpdateDue         string
	todoUpdateProject     string
	todoUpdateClearDue    bool
)

// todo delete
var todoDeleteCmd = &cobra.Command{
	Use:     "delete <id>...",
	Short:   "Permanently delete one or more todos",
	Aliases: []string{"rm"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runTodoDelete,
}

// todo show
var todoShowCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about todos",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTodoShow,
}

var (
	todoShowJSON  bool
	todoShowPlain bool
)

// todo list
var todoListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List todos",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runTodoList,
}

var (
	todoListStatus      string
	todoListWorkState   string
	todoListPriority    string
	todoListParent      string
	todoListRoots       bool
	todoListProject     string
	todoListTag         string
	todoListIDs         string
	todoListTitle       string
	todoListDescription string
	todoListDueBefore   string
	todoListJSON        bool
)

// todo ready
var todoReadyCmd = &cobra.Command{
	Use:   "ready",
	Short: "List pending todos with no unresolved blockers",
	Args:  cobra.NoArgs,
	RunE:  runTodoReady,
}

var (
	todoReadyLimit int
	todoReadyJSON  bool
)

// todo start / pause / complete / discard / reopen
var todoStartCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Start (or resume) time tracking for a todo",
	Args:  cobra.ExactArgs(1),
	RunE:  runTracking(todo.ActivityStarted),
}

var todoPauseCmd = &cobra.Command{
	Use:   "pause <id>",
	Short: "Pause time tracking, banking the elapsed time",
	Args:  cobra.ExactArgs(1),
	RunE:  runTracking(todo.ActivityPaused),
}

var todoCompleteCmd = &cobra.Command{
	Use:     "complete <id>",
	Short:   "Complete a todo, banking any elapsed time",
	Aliases: []string{"done"},
	Args:    cobra.ExactArgs(1),
	RunE:    runTracking(todo.ActivityCompleted),
}

var todoDiscardCmd = &cobra.Command{
	Use:   "discard <id>",
	Short: "Record discarded work without changing the work state",
	Args:  cobra.ExactArgs(1),
	RunE:  runTracking(todo.ActivityDiscarded),
}

var trackingNote string

var todoReopenCmd = &cobra.Command{
	Use:   "reopen <id>",
	Short: "Reopen a completed todo",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoReopen,
}

// todo log
var todoLogCmd = &cobra.Command{
	Use:   "log <id>",
	Short: "Show the time-tracking history for a todo",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoLog,
}

var todoLogJSON bool

// todo dep
var todoDepCmd = &cobra.Command{
	Use:   "dep",
	Short: "Manage todo dependencies",
}

var todoDepAddCmd = &cobra.Command{
	Use:   "add <todo-id> <depends-on-id>",
	Short: "Add a dependency between todos",
	Args:  cobra.ExactArgs(2),
	RunE:  runTodoDepAdd,
}

var todoDepRemoveCmd = &cobra.Command{
	Use:     "remove <todo-id> <depends-on-id>",
	Short:   "Remove a dependency between todos",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(2),
	RunE:    runTodoDepRemove,
}

var todoDepTreeCmd = &cobra.Command{
	Use:   "tree <id>",
	Short: "Show the dependency tree for a todo",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoDepTree,
}

var todoDepTreeDepth int

// todo parent
var todoParentCmd = &cobra.Command{
	Use:   "parent",
	Short: "Manage a todo's parent",
}

var todoParentSetCmd = &cobra.Command{
	Use:   "set <child-id> <parent-id>",
	Short: "Make a todo a subtask of another",
	Args:  cobra.ExactArgs(2),
	RunE:  runTodoParentSet,
}

var todoParentUnsetCmd = &cobra.Command{
	Use:   "unset <child-id>",
	Short: "Detach a todo from its parent",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoParentUnset,
}

// todo subtask
var todoSubtaskCmd = &cobra.Command{
	Use:   "subtask",
	Short: "Manage a todo's subtasks",
}

var todoSubtaskAddCmd = &cobra.Command{
	Use:   "add <parent-id> <child-id>",
	Short: "Attach a subtask to a todo",
	Args:  cobra.ExactArgs(2),
	RunE:  runTodoSubtaskAdd,
}

var todoSubtaskRemoveCmd = &cobra.Command{
	Use:     "remove <parent-id> <child-id>",
	Short:   "Detach a subtask from a todo",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(2),
	RunE:    runTodoSubtaskRemove,
}

var todoSubtaskListCmd = &cobra.Command{
	Use:     "list <parent-id>",
	Short:   "List the direct subtasks of a todo",
	Aliases: []string{"ls"},
	Args:    cobra.ExactArgs(1),
	RunE:    runTodoSubtaskList,
}

func init() {
	rootCmd.AddCommand(todoCmd)
	todoCmd.AddCommand(todoCreateCmd, todoUpdateCmd, todoDeleteCmd, todoShowCmd,
		todoListCmd, todoReadyCmd, todoStartCmd, todoPauseCmd, todoCompleteCmd,
		todoDiscardCmd, todoReopenCmd, todoLogCmd, todoDepCmd, todoParentCmd,
		todoSubtaskCmd)
	todoDepCmd.AddCommand(todoDepAddCmd, todoDepRemoveCmd, todoDepTreeCmd)
	todoParentCmd.AddCommand(todoParentSetCmd, todoParentUnsetCmd)
	todoSubtaskCmd.AddCommand(todoSubtaskAddCmd, todoSubtaskRemoveCmd, todoSubtaskListCmd)

	// todo create flags
	todoCreateCmd.Flags().StringVarP(&todoCreateDescription, "description", "d", "", "Description (markdown)")
	todoCreateCmd.Flags().StringVarP(&todoCreatePriority, "priority", "p", "", "Priority (low, medium, high)")
	todoCreateCmd.Flags().StringVar(&todoCreateDue, "due", "", "Due date (YYYY-MM-DD)")
	todoCreateCmd.Flags().StringVar(&todoCreateParent, "parent", "", "Parent todo ID")
	todoCreateCmd.Flags().StringVar(&todoCreateProject, "project", "", "Project ID")
	todoCreateCmd.Flags().StringArrayVar(&todoCreateDeps, "deps", nil, "Todo IDs this todo depends on")
	todoCreateCmd.Flags().StringArrayVar(&todoCreateTags, "tag", nil, "Existing tag names to attach")

	// todo update flags
	todoUpdateCmd.Flags().StringVar(&todoUpdateTitle, "title", "", "New title")
	todoUpdateCmd.Flags().StringVar(&todoUpdateDescription, "description", "", "New description")
	todoUpdateCmd.Flags().StringVar(&todoUpdatePriority, "priority", "", "New priority (low, medium, high)")
	todoUpdateCmd.Flags().StringVar(&todoUpdateDue, "due", "", "New due date (YYYY-MM-DD)")
	todoUpdateCmd.Flags().StringVar(&todoUpdateProject, "project", "", "New project ID")
	todoUpdateCmd.Flags().BoolVar(&todoUpdateClearDue, "clear-due", false, "Remove the due date")

	// todo show flags
	todoShowCmd.Flags().BoolVar(&todoShowJSON, "json", false, "Output as JSON")
	todoShowCmd.Flags().BoolVar(&todoShowPlain, "plain", false, "Plain text descriptions (no markdown rendering)")

	// todo list flags
	todoListCmd.Flags().StringVar(&todoListStatus, "status", "", "Filter by status (pending, in_progress, completed)")
	todoListCmd.Flags().StringVar(&todoListWorkState, "work-state", "", "Filter by work state (idle, active, paused, completed)")
	todoListCmd.Flags().StringVar(&todoListPriority, "priority", "", "Filter by priority (low, medium, high)")
	todoListCmd.Flags().StringVar(&todoListParent, "parent", "", "Filter to subtasks of the given todo")
	todoListCmd.Flags().BoolVar(&todoListRoots, "roots", false, "Filter to root todos (no parent)")
	todoListCmd.Flags().StringVar(&todoListProject, "project", "", "Filter by project")
	todoListCmd.Flags().StringVar(&todoListTag, "tag", "", "Filter by tag name or ID")
	todoListCmd.Flags().StringVar(&todoListIDs, "id", "", "Filter by IDs (comma-separated)")
	todoListCmd.Flags().StringVar(&todoListTitle, "title", "", "Filter by title substring")
	todoListCmd.Flags().StringVar(&todoListDescription, "description", "", "Filter by description substring")
	todoListCmd.Flags().StringVar(&todoListDueBefore, "due-before", "", "Filter to todos due before a date (YYYY-MM-DD)")
	todoListCmd.Flags().BoolVar(&todoListJSON, "json", false, "Output as JSON")

	// todo ready flags
	todoReadyCmd.Flags().IntVar(&todoReadyLimit, "limit", 20, "Maximum number of todos to show")
	todoReadyCmd.Flags().BoolVar(&todoReadyJSON, "json", false, "Output as JSON")

	// tracking flags
	for _, cmd := range []*cobra.Command{todoStartCmd, todoPauseCmd, todoCompleteCmd, todoDiscardCmd} {
		cmd.Flags().StringVarP(&trackingNote, "note", "n", "", "Note to record with the activity")
	}

	// todo log flags
	todoLogCmd.Flags().BoolVar(&todoLogJSON, "json", false, "Output as JSON")

	// todo dep tree flags
	todoDepTreeCmd.Flags().IntVar(&todoDepTreeDepth, "depth", 0, "Maximum tree depth (0 = configured default)")

	addTodoFlagAliases(todoCreateCmd, todoUpdateCmd, todoListCmd)
}

func runTodoCreate(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	opts := todo.CreateOptions{
		Description:  todoCreateDescription,
		ParentID:     todoCreateParent,
		ProjectID:    todoCreateProject,
		Dependencies: todoCreateDeps,
		Tags:         todoCreateTags,
	}

	if todoCreatePriority != "" {
		opts.Priority = todo.PriorityPtr(todo.Priority(todoCreatePriority))
	} else if configured := configuredDefaultPriority(); configured != nil {
		opts.Priority = configured
	}

	if todoCreateDue != "" {
		due, err := parseDateFlag(todoCreateDue)
		if err != nil {
			return err
		}
		opts.DueDate = &due
	}

	created, err := store.Create(args[0], opts)
	if err != nil {
		return err
	}

	fmt.Printf("Created todo %s: %s\n", created.ID, created.Title)
	return nil
}

func runTodoUpdate(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	if !hasChangedFlags(cmd, "title", "description", "priority", "due", "project", "clear-due") {
		return fmt.Errorf("nothing to update; pass at least one flag")
	}

	opts := todo.UpdateOptions{ClearDueDate: todoUpdateClearDue}

	// Only set fields that were explicitly provided.
	if cmd.Flags().Changed("title") {
		opts.Title = &todoUpdateTitle
	}
	if cmd.Flags().Changed("description") {
		opts.Description = &todoUpdateDescription
	}
	if cmd.Flags().Changed("priority") {
		opts.Priority = todo.PriorityPtr(todo.Priority(todoUpdatePriority))
	}
	if cmd.Flags().Changed("project") {
		opts.ProjectID = &todoUpdateProject
	}
	if cmd.Flags().Changed("due") {
		due, err := parseDateFlag(todoUpdateDue)
		if err != nil {
			return err
		}
		opts.DueDate = &due
	}

	updated, err := store.Update(args, opts)
	if err != nil {
		return err
	}

	for _, item := range updated {
		fmt.Printf("Updated %s: %s\n", item.ID, item.Title)
	}
	return nil
}

func runTodoDelete(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	deleted, err := store.Delete(args)
	if err != nil {
		return err
	}

	for _, item := range deleted {
		fmt.Printf("Deleted %s: %s\n", item.ID, item.Title)
	}
	return nil
}

func runTodoShow(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	todos, err := store.Show(args)
	if err != nil {
		return err
	}

	if todoShowJSON {
		return encodeJSONToStdout(todos)
	}

	for i, item := range todos {
		if i > 0 {
			fmt.Println("---")
		}
		tags, err := store.TagsForItem(item.ID)
		if err != nil {
			return err
		}
		printTodoDetail(item, tags, todoShowPlain)
	}
	return nil
}

func runTodoList(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	filter := todo.ListFilter{
		Tag:                  todoListTag,
		TitleSubstring:       todoListTitle,
		DescriptionSubstring: todoListDescription,
	}

	if todoListStatus != "" {
		status := todo.Status(todoListStatus)
		filter.Status = &status
	}
	if todoListWorkState != "" {
		state := todo.WorkState(todoListWorkState)
		filter.WorkState = &state
	}
	if todoListPriority != "" {
		filter.Priority = todo.PriorityPtr(todo.Priority(todoListPriority))
	}
	if todoListRoots {
		root := ""
		filter.ParentID = &root
	} else if todoListParent != "" {
		filter.ParentID = &todoListParent
	}
	if todoListProject != "" {
		filter.ProjectID = &todoListProject
	}
	if todoListIDs != "" {
		filter.IDs = strings.Split(todoListIDs, ",")
	}
	if todoListDueBefore != "" {
		due, err := parseDateFlag(todoListDueBefore)
		if err != nil {
			return err
		}
		filter.DueBefore = &due
	}

	todos, err := store.List(filter)
	if err != nil {
		return err
	}

	if todoListJSON {
		return encodeJSONToStdout(todos)
	}

	printTodoTable(todos, nil, time.Now())
	return nil
}

func runTodoReady(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	todos, err := store.Ready(todoReadyLimit)
	if err != nil {
		return err
	}

	if todoReadyJSON {
		return encodeJSONToStdout(todos)
	}

	if len(todos) == 0 {
		fmt.Println("No ready todos found.")
		return nil
	}
	printTodoTable(todos, nil, time.Now())
	return nil
}

func runTracking(activityType todo.ActivityType) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		store, err := openTodoStore()
		if err != nil {
			return err
		}

		var (
			item     *todo.Todo
			activity *todo.WorkActivity
		)
		switch activityType {
		case todo.ActivityStarted:
			item, activity, err = store.Start(args[0], trackingNote)
		case todo.ActivityPaused:
			item, activity, err = store.Pause(args[0], trackingNote)
		case todo.ActivityCompleted:
			item, activity, err = store.Complete(args[0], trackingNote)
		case todo.ActivityDiscarded:
			item, activity, err = store.Discard(args[0], trackingNote)
		}
		if err != nil {
			return err
		}

		printTrackingResult(item, activity)
		return nil
	}
}

func runTodoReopen(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	item, err := store.Reopen(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Reopened %s: %s\n", item.ID, item.Title)
	return nil
}

func runTodoLog(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	activities, err := store.Activities(args[0])
	if err != nil {
		return err
	}

	if todoLogJSON {
		return encodeJSONToStdout(activities)
	}

	if len(activities) == 0 {
		fmt.Println("No activities recorded.")
		return nil
	}
	printActivityTable(activities)
	return nil
}

func runTodoDepAdd(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	dep, err := store.AddDependency(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("Added dependency: %s depends on %s\n", dep.TodoID, dep.DependsOnID)
	return nil
}

func runTodoDepRemove(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	if err := store.RemoveDependency(args[0], args[1]); err != nil {
		return err
	}

	fmt.Println("Removed dependency.")
	return nil
}

func runTodoDepTree(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	depth := todoDepTreeDepth
	if depth <= 0 {
		depth = configuredTreeDepth()
	}

	tree, err := store.DependencyTree(args[0], depth)
	if err != nil {
		return err
	}

	printDepTree(tree)
	return nil
}

func runTodoParentSet(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	child, err := store.SetParent(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("%s is now a subtask of %s\n", child.ID, child.ParentID)
	return nil
}

func runTodoParentUnset(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	child, err := store.RemoveParent(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s is now a root todo\n", child.ID)
	return nil
}

func runTodoSubtaskAdd(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	child, err := store.AddSubtask(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("%s is now a subtask of %s\n", child.ID, child.ParentID)
	return nil
}

func runTodoSubtaskRemove(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	child, err := store.RemoveSubtask(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("%s is no longer a subtask\n", child.ID)
	return nil
}

func runTodoSubtaskList(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	children, err := store.Children(args[0])
	if err != nil {
		return err
	}

	if len(children) == 0 {
		fmt.Println("No subtasks found.")
		return nil
	}
	printTodoTable(children, nil, time.Now())
	return nil
}
