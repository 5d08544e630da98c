package server

import (
	"github.com/TheNexusGroup/simplistic/el"
	"github.com/TheNexusGroup/simplistic/pkg/dom"
	"github.com/TheNexusGroup/simplistic/pkg/reactive"
)

// BuiltinRegistry returns the registry of bundled demos.
func BuiltinRegistry() *Registry {
	r := NewRegistry()
	demos := []Demo{
		{Name: "counter", Title: "Counter Demo", Build: buildCounter},
		{Name: "todo", Title: "Todo App", Build: buildTodo},
	}
	for _, d := range demos {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	return r
}

// buildCounter wires a cell, a derived computed, a conditional binding,
// and two buttons.
func buildCounter(in *Instance) {
	count := reactive.NewCell(0)
	doubled := reactive.Map(count, func(n int) int { return n * 2 })

	sc := in.Scope
	el.Div(sc, func() {
		el.H1(sc, "Counter")

		countText, _ := reactive.BindText(count)
		el.P(sc, "Count: ", countText)

		doubledText, _ := reactive.BindComputedText(doubled)
		el.P(sc, "Doubled: ", doubledText)

		dec := el.Button(sc, "-")
		inc := el.Button(sc, "+")
		in.OnEvent(dec, "click", func(Event) {
			count.Update(func(n int) int { return n - 1 })
		})
		in.OnEvent(inc, "click", func(Event) {
			count.Update(func(n int) int { return n + 1 })
		})

		reactive.When(sc,
			func() bool { return count.Get() >= 10 },
			func() *dom.Node {
				p := dom.NewElement("p").SetAttr("class", "milestone")
				dom.AppendChild(p, dom.NewText("Double digits!"))
				return p
			},
			count)
	})
}

type todoItem struct {
	ID   int
	Text string
	Done bool
}

// buildTodo wires a list cell with push/remove/toggle and a derived
// remaining count.
func buildTodo(in *Instance) {
	nextID := 0
	items := reactive.NewListCell([]todoItem{})
	draft := ""

	add := func(text string) {
		nextID++
		items.Push(todoItem{ID: nextID, Text: text})
	}
	toggle := func(id int) {
		items.Update(func(ts []todoItem) []todoItem {
			out := make([]todoItem, len(ts))
			copy(out, ts)
			for i := range out {
				if out[i].ID == id {
					out[i].Done = !out[i].Done
				}
			}
			return out
		})
	}
	remove := func(id int) {
		for i, item := range items.Get() {
			if item.ID == id {
				items.RemoveAt(i)
				return
			}
		}
	}

	add("Learn Simplistic")

	sc := in.Scope
	el.Div(sc, func() {
		el.H1(sc, "Todo")

		input := el.Input(sc).
			SetAttr("type", "text").
			SetAttr("placeholder", "What needs doing?")
		in.OnEvent(input, "input", func(ev Event) {
			draft = ev.Value
		})

		addBtn := el.Button(sc, "Add")
		in.OnEvent(addBtn, "click", func(Event) {
			if draft != "" {
				add(draft)
				draft = ""
			}
		})

		ul := dom.NewElement("ul")
		reactive.EachListInto(sc, ul, items, func(item todoItem, _ int) *dom.Node {
			li := dom.NewElement("li")
			if item.Done {
				li.SetAttr("class", "done")
			}

			label := dom.NewElement("label")
			dom.AppendChild(label, dom.NewText(item.Text))
			dom.AppendChild(li, label)

			del := dom.NewElement("button")
			dom.AppendChild(del, dom.NewText("x"))
			dom.AppendChild(li, del)

			id := item.ID
			in.OnEvent(label, "click", func(Event) { toggle(id) })
			in.OnEvent(del, "click", func(Event) { remove(id) })
			return li
		})

		remaining := reactive.Map(items.Cell, func(ts []todoItem) int {
			n := 0
			for _, item := range ts {
				if !item.Done {
					n++
				}
			}
			return n
		})
		remainingText, _ := reactive.BindComputedText(remaining)
		el.P(sc, remainingText, " remaining")
	})
}
