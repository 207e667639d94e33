package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"

	"github.com/weekboard/weekboard/pkg/board"
)

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func taskToMap(t board.Task) map[string]any {
	m := map[string]any{
		"id":        t.ID,
		"title":     t.Title,
		"day":       string(t.Day),
		"hour":      t.Hour,
		"completed": t.Completed,
		"project":   t.ProjectName,
		"color":     t.Color,
		"notes":     t.Notes,
	}
	if !t.Created.IsZero() {
		m["created"] = t.Created.Format(time.RFC3339)
	}
	if !t.Updated.IsZero() {
		m["updated"] = t.Updated.Format(time.RFC3339)
	}
	return m
}

func tasksToMap(tasks []board.Task) []map[string]any {
	result := make([]map[string]any, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, taskToMap(t))
	}
	return result
}

// printTask writes a task, or its JSON form, followed by a verb line such as
// "Created".
func printTask(verb string, t board.Task) error {
	if jsonOutput {
		return outputJSON(taskToMap(t))
	}
	green := color.New(color.FgGreen).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()
	fmt.Printf("%s %s %s\n", green(verb+":"), t.Title, gray("("+t.ID+")"))
	fmt.Printf("  %s  %s\n", t.Slot(), statusLabel(t))
	return nil
}

func statusLabel(t board.Task) string {
	if t.Completed {
		return color.GreenString("✓ done")
	}
	return color.New(color.FgHiBlack).Sprint("○ open")
}

// parseSlot reads a "<day> <hour>" argument pair.
func parseSlot(dayArg, hourArg string) (board.Weekday, int, error) {
	day, err := board.ParseWeekday(dayArg)
	if err != nil {
		return "", 0, err
	}
	hour, err := strconv.Atoi(hourArg)
	if err != nil {
		return "", 0, fmt.Errorf("invalid hour %q: %w", hourArg, board.ErrInvalidSlot)
	}
	return day, hour, nil
}
