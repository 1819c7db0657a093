package entities

import "strings"

// MenuChoice is the key the operator types to select an action.
type MenuChoice string

const (
	ChoiceAnalysis  MenuChoice = "1"
	ChoiceDemo      MenuChoice = "2"
	ChoiceReadiness MenuChoice = "3"
	ChoiceExamples  MenuChoice = "4"
	ChoiceInstall   MenuChoice = "5"
	ChoiceExit      MenuChoice = "6"
)

// ActionName identifies a menu action and doubles as the config key under `programs`.
type ActionName string

const (
	ActionAnalysis  ActionName = "analysis"
	ActionDemo      ActionName = "demo"
	ActionReadiness ActionName = "readiness"
	ActionExamples  ActionName = "examples"
	ActionInstall   ActionName = "install"
	ActionExit      ActionName = "exit"
)

// MenuItem binds a choice to its action and the label shown to the operator.
type MenuItem struct {
	Choice MenuChoice
	Action ActionName
	Label  string
}

// MenuItems returns the closed set of menu entries in display order.
func MenuItems() []MenuItem {
	return []MenuItem{
		{Choice: ChoiceAnalysis, Action: ActionAnalysis, Label: "Run system log analysis"},
		{Choice: ChoiceDemo, Action: ActionDemo, Label: "Run demo with sample data"},
		{Choice: ChoiceReadiness, Action: ActionReadiness, Label: "Run readiness check"},
		{Choice: ChoiceExamples, Action: ActionExamples, Label: "Show usage examples"},
		{Choice: ChoiceInstall, Action: ActionInstall, Label: "Install dependencies"},
		{Choice: ChoiceExit, Action: ActionExit, Label: "Exit"},
	}
}

// ParseMenuChoice maps one line of operator input to a menu item.
// Surrounding whitespace is ignored; anything outside the set is rejected.
func ParseMenuChoice(input string) (MenuItem, bool) {
	key := MenuChoice(strings.TrimSpace(input))
	for _, item := range MenuItems() {
		if item.Choice == key {
			return item, true
		}
	}
	return MenuItem{}, false
}
