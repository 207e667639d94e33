package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/weekboard/weekboard/pkg/board"
)

var addCmd = &cobra.Command{
	Use:   "add <day> <hour> <title...>",
	Short: "Create a task in a slot",
	Example: `  weekboard add mon 9 Standup
  weekboard add friday 16 Write report --project q3 --color "#E05252"`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, hour, err := parseSlot(args[0], args[1])
		if err != nil {
			return err
		}
		project, _ := cmd.Flags().GetString("project")
		colorHint, _ := cmd.Flags().GetString("color")
		notes, _ := cmd.Flags().GetString("notes")

		a, err := openApp()
		if err != nil {
			return err
		}
		t, err := a.engine.Create(day, hour, board.Details{
			Title:       strings.Join(args[2:], " "),
			ProjectName: project,
			Color:       colorHint,
			Notes:       notes,
		})
		if err != nil {
			return err
		}
		return printTask("Created", t)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a task's title, project, color or notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var p board.Patch
		for name, field := range map[string]**string{
			"title":   &p.Title,
			"project": &p.ProjectName,
			"color":   &p.Color,
			"notes":   &p.Notes,
		} {
			if cmd.Flags().Changed(name) {
				v, _ := cmd.Flags().GetString(name)
				*field = &v
			}
		}
		if p.Empty() {
			return fmt.Errorf("nothing to change: pass --title, --project, --color or --notes")
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		t, err := a.engine.Edit(args[0], p)
		if err != nil {
			return err
		}
		return printTask("Updated", t)
	},
}

var moveCmd = &cobra.Command{
	Use:   "move <id> <day> <hour>",
	Short: "Move a task to another slot",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, hour, err := parseSlot(args[1], args[2])
		if err != nil {
			return err
		}
		a, err := openApp()
		if err != nil {
			return err
		}
		t, err := a.engine.Move(args[0], day, hour)
		if err != nil {
			return err
		}
		return printTask("Moved", t)
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a task between open and done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		t, err := a.engine.ToggleCompletion(args[0])
		if err != nil {
			return err
		}
		return printTask("Toggled", t)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		t, err := a.engine.Delete(args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(map[string]string{"deleted": t.ID})
		}
		fmt.Printf("%s %s (%s)\n", color.RedString("Deleted:"), t.Title, t.ID)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a task with its notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		t, err := a.engine.Get(args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(taskToMap(t))
		}

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Printf("%s\n", cyan(t.Title))
		fmt.Printf("  %s  %s\n", t.Slot(), statusLabel(t))
		if t.ProjectName != "" {
			fmt.Printf("  Project: %s\n", yellow(t.ProjectName))
		}
		if t.Notes != "" {
			fmt.Println()
			fmt.Println(t.Notes)
		}
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Find tasks by title, project or notes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		matches, err := a.store.SearchTasks(strings.Join(args, " "))
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(tasksToMap(matches))
		}
		if len(matches) == 0 {
			fmt.Println("No matches found.")
			return nil
		}
		gray := color.New(color.FgHiBlack).SprintFunc()
		for _, t := range matches {
			fmt.Printf("%s %s  %s\n", statusLabel(t), t.Title, gray(t.Slot().String()+"  "+t.ID))
		}
		return nil
	},
}

func init() {
	addCmd.Flags().String("project", "", "project name")
	addCmd.Flags().String("color", "", "display color hint, e.g. #4285F4")
	addCmd.Flags().String("notes", "", "markdown notes")

	editCmd.Flags().String("title", "", "new title")
	editCmd.Flags().String("project", "", "project name (empty clears)")
	editCmd.Flags().String("color", "", "display color hint (empty clears)")
	editCmd.Flags().String("notes", "", "markdown notes (empty clears)")

	rootCmd.AddCommand(addCmd, editCmd, moveCmd, toggleCmd, deleteCmd, showCmd, searchCmd)
}
