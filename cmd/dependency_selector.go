package cmd

import (
	// external
	"github.com/charmbracelet/huh"
	"github.com/samber/lo"
)

// dependencyMultiSelectUI is a private struct implementing DependencyUIMultiSelector.
type dependencyMultiSelectUI struct {
	sel    *huh.MultiSelect[string]
	values []string
}

// newDependencyMultiSelectUI creates the interactive multi-select used by
// 'plan --pick'. Constructor returns the interface (struct stays private).
func newDependencyMultiSelectUI(options []string) DependencyUIMultiSelector {
	opts := lo.Map(options, func(name string, _ int) huh.Option[string] {
		return huh.NewOption(name, name)
	})

	sel := huh.NewMultiSelect[string]().
		Title("Dependencies").
		Description("Pick the crates to emit build commands for").
		Options(opts...)

	return &dependencyMultiSelectUI{sel: sel}
}

// Run executes the interactive UI and stores the selected values.
func (ui *dependencyMultiSelectUI) Run() error {
	ui.sel.Value(&ui.values)
	return ui.sel.Run()
}

// Values returns the selected dependency names.
func (ui *dependencyMultiSelectUI) Values() []string {
	return ui.values
}
