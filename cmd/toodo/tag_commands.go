package main

import (
	"fmt"

	"github.com/SuzumiyaAoba/toodo/internal/ui"
	"github.com/spf13/cobra"
)

var todoTagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage tags",
}

var tagCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new tag",
	Args:  cobra.ExactArgs(1),
	RunE:  runTagCreate,
}

var tagListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all tags",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runTagList,
}

var tagListJSON bool

var tagDeleteCmd = &cobra.Command{
	Use:     "delete <name-or-id>",
	Short:   "Delete a tag and its assignments",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE:    runTagDelete,
}

var tagAddCmd = &cobra.Command{
	Use:   "add <todo-id> <name-or-id>",
	Short: "Attach a tag to a todo",
	Args:  cobra.ExactArgs(2),
	RunE:  runTagAdd,
}

var tagRemoveCmd = &cobra.Command{
	Use:   "remove <todo-id> <name-or-id>",
	Short: "Detach a tag from a todo",
	Args:  cobra.ExactArgs(2),
	RunE:  runTagRemove,
}

func init() {
	todoCmd.AddCommand(todoTagCmd)
	todoTagCmd.AddCommand(tagCreateCmd, tagListCmd, tagDeleteCmd, tagAddCmd, tagRemoveCmd)

	tagListCmd.Flags().BoolVar(&tagListJSON, "json", false, "Output as JSON")
}

func runTagCreate(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	tag, err := store.CreateTag(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Created tag %s: %s\n", tag.ID, tag.Name)
	return nil
}

func runTagList(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	tags, err := store.ListTags()
	if err != nil {
		return err
	}

	if tagListJSON {
		return encodeJSONToStdout(tags)
	}

	if len(tags) == 0 {
		fmt.Println("No tags found.")
		return nil
	}

	builder := ui.NewTableBuilder([]string{"ID", "NAME", "CREATED"}, len(tags))
	for _, tag := range tags {
		builder.AddRow([]string{tag.ID, tag.Name, ui.FormatDate(tag.CreatedAt)})
	}
	fmt.Print(builder.String())
	return nil
}

func runTagDelete(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	if err := store.DeleteTag(args[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted tag %s\n", args[0])
	return nil
}

func runTagAdd(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	if err := store.AttachTag(args[0], args[1]); err != nil {
		return err
	}

	fmt.Printf("Tagged %s with %s\n", args[0], args[1])
	return nil
}

func runTagRemove(cmd *cobra.Command, args []string) error {
	store, err := openTodoStore()
	if err != nil {
		return err
	}

	if err := store.DetachTag(args[0], args[1]); err != nil {
		return err
	}

	fmt.Printf("Untagged %s from %s\n", args[1], args[0])
	return nil
}
