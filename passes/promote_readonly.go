package passes

import (
	"swiftify/intent"
	"swiftify/report"
)

// PromoteReadonly implements spec §4.4 item 3: a property whose attribute
// scan recorded `readonly` gets promoted to a Swift `{ get }` computed
// property (ModeComputed) -- and any setter it happens to carry (e.g. one
// left behind by a category that declared the same name as read-write) is
// dropped, since `{ get }` has no setter slot in Swift.
type PromoteReadonly struct{}

func (PromoteReadonly) Name() string { return "promote-readonly" }

func (PromoteReadonly) Run(g *intent.Graph, _ *report.Reporter) bool {
	changed := false
	for _, t := range g.Types() {
		for _, p := range t.Properties {
			if !p.Attributes["readonly"] {
				continue
			}
			if p.Mode != intent.ModeComputed {
				p.Mode = intent.ModeComputed
				changed = true
			}
			if p.Setter != nil {
				p.SetSetter(nil)
				changed = true
			}
		}
	}
	return changed
}
