package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexTasksEveryViewSlotHasBucket(t *testing.T) {
	view := testWeek()
	grid := IndexTasks(nil, view)

	assert.Len(t, grid.Slots(), 7*10)
	for _, slot := range grid.Slots() {
		assert.True(t, grid.Has(slot))
		assert.NotNil(t, grid.Bucket(slot.Day, slot.Hour))
		assert.Empty(t, grid.Bucket(slot.Day, slot.Hour))
	}
}

func TestIndexTasksPreservesInsertionOrder(t *testing.T) {
	tasks := []Task{
		{ID: "b", Day: Monday, Hour: 10},
		{ID: "a", Day: Monday, Hour: 10},
		{ID: "c", Day: Monday, Hour: 10},
	}
	grid := IndexTasks(tasks, testWeek())

	bucket := grid.Bucket(Monday, 10)
	require.Len(t, bucket, 3)
	assert.Equal(t, "b", bucket[0].ID)
	assert.Equal(t, "a", bucket[1].ID)
	assert.Equal(t, "c", bucket[2].ID)
}

func TestIndexTasksFiltersOutsideView(t *testing.T) {
	tasks := []Task{
		{ID: "in", Day: Tuesday, Hour: 12},
		{ID: "early", Day: Tuesday, Hour: 7},
		{ID: "late", Day: Tuesday, Hour: 22},
		{ID: "noday", Day: "", Hour: 12},
	}
	grid := IndexTasks(tasks, testWeek())

	assert.Len(t, grid.Bucket(Tuesday, 12), 1)
	assert.Nil(t, grid.Bucket(Tuesday, 7))
	assert.Equal(t, 3, grid.Hidden())
	_, found := grid.Find("late")
	assert.False(t, found)
}

func TestIndexTasksIsFreshEachCall(t *testing.T) {
	tasks := []Task{{ID: "a", Day: Monday, Hour: 9}}
	view := testWeek()

	first := IndexTasks(tasks, view)
	tasks[0].Day = Friday
	second := IndexTasks(tasks, view)

	assert.Len(t, first.Bucket(Monday, 9), 1)
	assert.Empty(t, second.Bucket(Monday, 9))
	assert.Len(t, second.Bucket(Friday, 9), 1)
}

func TestDayCompletion(t *testing.T) {
	tasks := []Task{
		{ID: "1", Day: Monday, Hour: 9, Completed: true},
		{ID: "2", Day: Monday, Hour: 14},
		{ID: "3", Day: Monday, Hour: 14, Completed: true},
		{ID: "4", Day: Friday, Hour: 17},
		{ID: "5", Day: Monday, Hour: 23, Completed: true}, // hidden
	}
	grid := IndexTasks(tasks, testWeek())

	assert.Equal(t, Completion{Done: 2, Total: 3}, grid.DayCompletion(Monday))
	assert.Equal(t, Completion{Done: 0, Total: 1}, grid.DayCompletion(Friday))
	assert.Equal(t, Completion{}, grid.DayCompletion(Sunday))
	assert.Equal(t, Completion{Done: 2, Total: 4}, grid.Completion())
}

func TestMoveScenario(t *testing.T) {
	e := setupTestEngine(t)
	view := testWeek()

	standup, err := e.Create(Monday, 9, Details{Title: "Standup"})
	require.NoError(t, err)

	_, err = e.Move(standup.ID, Tuesday, 14)
	require.NoError(t, err)

	grid := e.Index(view)
	assert.Empty(t, grid.Bucket(Monday, 9))
	require.Len(t, grid.Bucket(Tuesday, 14), 1)
	assert.Equal(t, standup.ID, grid.Bucket(Tuesday, 14)[0].ID)

	_, err = e.Create(Monday, 20, Details{Title: "Late"})
	assert.ErrorIs(t, err, ErrInvalidSlot)
	assert.Len(t, e.Tasks(), 1)

	slot, found := grid.Find(standup.ID)
	require.True(t, found)
	assert.Equal(t, Slot{Day: Tuesday, Hour: 14}, slot)
}
