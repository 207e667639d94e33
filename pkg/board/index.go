package board

// Grid is the per-slot partition of a task snapshot for one week view.
type Grid struct {
	View    WeekView
	buckets map[Slot][]Task
	hidden  int
}

// Completion counts finished and total tasks.
type Completion struct {
	Done  int
	Total int
}

// IndexTasks partitions tasks into the view's (day, hour) buckets. Every slot
// of the view gets a bucket, empty or not; buckets keep the input order.
// Tasks outside the view's days or hours are left out of the grid.
func IndexTasks(tasks []Task, view WeekView) *Grid {
	g := &Grid{
		View:    view,
		buckets: make(map[Slot][]Task, len(view.Days)*len(view.Hours)),
	}
	for _, d := range view.Days {
		for _, h := range view.Hours {
			g.buckets[Slot{Day: d.Weekday, Hour: h}] = []Task{}
		}
	}

	for _, t := range tasks {
		slot := t.Slot()
		bucket, ok := g.buckets[slot]
		if !ok {
			g.hidden++
			continue
		}
		g.buckets[slot] = append(bucket, t)
	}
	return g
}

// Bucket returns the tasks in one slot. Slots outside the view return nil.
func (g *Grid) Bucket(day Weekday, hour int) []Task {
	return g.buckets[Slot{Day: day, Hour: hour}]
}

// Has reports whether the slot is part of the grid.
func (g *Grid) Has(slot Slot) bool {
	_, ok := g.buckets[slot]
	return ok
}

// Slots returns every slot of the grid, day-major in view order.
func (g *Grid) Slots() []Slot {
	slots := make([]Slot, 0, len(g.buckets))
	for _, d := range g.View.Days {
		for _, h := range g.View.Hours {
			slots = append(slots, Slot{Day: d.Weekday, Hour: h})
		}
	}
	return slots
}

// Find returns the slot holding the task with the given id.
func (g *Grid) Find(id string) (Slot, bool) {
	for slot, bucket := range g.buckets {
		for _, t := range bucket {
			if t.ID == id {
				return slot, true
			}
		}
	}
	return Slot{}, false
}

// DayCompletion counts completed and total tasks shown on day.
func (g *Grid) DayCompletion(day Weekday) Completion {
	var c Completion
	for _, h := range g.View.Hours {
		for _, t := range g.buckets[Slot{Day: day, Hour: h}] {
			c.Total++
			if t.Completed {
				c.Done++
			}
		}
	}
	return c
}

// Completion counts completed and total tasks shown in the whole week.
func (g *Grid) Completion() Completion {
	var c Completion
	for _, d := range g.View.Days {
		dc := g.DayCompletion(d.Weekday)
		c.Done += dc.Done
		c.Total += dc.Total
	}
	return c
}

// Hidden is the number of tasks that fell outside the view.
func (g *Grid) Hidden() int {
	return g.hidden
}
