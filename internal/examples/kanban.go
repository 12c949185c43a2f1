package examples

import (
	"slices"

	"beautty"
)

var columnTitles = [3]string{"To Do", "In Progress", "Done"}

type kanban struct {
	d *Demo

	tasks      [3][]string
	containers [3]beautty.NodeID
	status     beautty.NodeID

	col, row int
	picked   bool
	pickCol  int
	pickRow  int
}

func buildKanban(d *Demo, b *beautty.Builder) {
	k := &kanban{
		d: d,
		tasks: [3][]string{
			{"Implement terminal detection", "Create canvas system", "Add color support", "Design component API"},
			{"Implement flexbox layout", "Create text component"},
			{"Project setup", "Create repository", "Write initial specs"},
		},
	}
	colors := [3]beautty.Color{beautty.Cyan, beautty.Yellow, beautty.Green}

	d.box(b, "header", beautty.Style{}.Height(beautty.Cells(3)).Background(beautty.Blue).Border(true), func() {
		d.text(b, "header.text", "Kanban Board Demo", plain.Foreground(beautty.White).Bold())
	})

	d.box(b, "board", beautty.Style{}.Row().Grow(1).Padding(1), func() {
		for i, title := range columnTitles {
			d.box(b, "column", beautty.Style{}.Column().Grow(1).Border(true).Margin(0, 1), func() {
				d.box(b, "column.header", beautty.Style{}.Height(beautty.Cells(3)).
					Background(colors[i]).Border(true), func() {
					d.text(b, "column.title", title, plain.Foreground(beautty.Black).Bold())
				})
				k.containers[i] = d.box(b, "tasks", plain.Column().Grow(1).Padding(1).
					Background(beautty.Black).Foreground(beautty.White), nil)
			})
		}
	})

	d.box(b, "footer", beautty.Style{}.Height(beautty.Cells(5)).Background(beautty.Blue).
		Border(true).Padding(0, 1), func() {
		d.text(b, "footer.text", "Arrows navigate, space picks a task, enter drops it here, q quits",
			plain.Foreground(beautty.White))
		k.status = d.text(b, "status", "", plain.Foreground(beautty.BrightYellow).Margin(1, 0, 0, 0))
	})

	d.Keys["up"] = k.up
	d.Keys["down"] = k.down
	d.Keys["left"] = func() { k.move(-1) }
	d.Keys["right"] = func() { k.move(1) }
	d.Keys[" "] = k.pick
	d.Keys["enter"] = k.drop
	d.onRestyle = k.refresh

	k.refresh()
}

func (k *kanban) say(msg string) {
	_ = k.d.Tree.SetText(k.status, msg)
}

func (k *kanban) up() {
	if k.row > 0 {
		k.row--
		k.say("Moved up")
		k.refresh()
	}
}

func (k *kanban) down() {
	if k.row < len(k.tasks[k.col])-1 {
		k.row++
		k.say("Moved down")
		k.refresh()
	}
}

func (k *kanban) move(delta int) {
	next := k.col + delta
	if next < 0 || next >= len(k.tasks) {
		return
	}
	k.col = next
	k.row = max(min(k.row, len(k.tasks[k.col])-1), 0)
	k.say("Column: " + columnTitles[k.col])
	k.refresh()
}

func (k *kanban) pick() {
	if k.picked {
		k.picked = false
		k.say("Task released")
	} else if len(k.tasks[k.col]) > 0 {
		k.picked, k.pickCol, k.pickRow = true, k.col, k.row
		k.say("Task picked; move to a column and press enter")
	}
	k.refresh()
}

func (k *kanban) drop() {
	if !k.picked {
		return
	}
	task := k.tasks[k.pickCol][k.pickRow]
	k.tasks[k.pickCol] = slices.Delete(k.tasks[k.pickCol], k.pickRow, k.pickRow+1)
	k.tasks[k.col] = append(k.tasks[k.col], task)
	k.row = len(k.tasks[k.col]) - 1
	k.picked = false
	k.say("Task moved to " + columnTitles[k.col])
	k.refresh()
}

// refresh rebuilds the task cards of every column from the current state.
func (k *kanban) refresh() {
	t := k.d.Tree
	for i, container := range k.containers {
		old := slices.Collect(t.Children(container))
		for _, id := range old {
			_ = t.RemoveChild(container, id)
		}

		b := beautty.NewBuilderAt(t, container)
		for j, task := range k.tasks[i] {
			selected := i == k.col && j == k.row
			picked := k.picked && i == k.pickCol && j == k.pickRow

			card := beautty.Style{}.Height(beautty.Cells(3)).Margin(0, 0, 1, 0).Border(true)
			label := plain.Foreground(beautty.BrightWhite).Padding(0, 1)
			if selected {
				card = card.Background(beautty.BrightBlack)
				label = label.Bold()
			}
			if picked {
				card = card.BorderColor(beautty.BrightYellow).BorderVariant(beautty.VariantDouble)
			}
			b.Box(k.d.style("card", card), func() {
				b.Text(task, k.d.style("card.text", label))
			})
		}
	}
}
