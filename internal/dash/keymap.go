package dash

// keyMap binds dashboard actions to their keys. Kept as data so the
// help line and the update loop cannot drift apart.
type keyMap struct {
	Up         []string
	Down       []string
	ScrollUp   []string
	ScrollDown []string
	PageUp     []string
	PageDown   []string
	More       []string
	Less       []string
	Merge      []string
	Approve    []string
	Reload     []string
	Open       []string
	Contrib    []string
	Dismiss    []string
	Quit       []string
}

var defaultKeys = keyMap{
	Up:         []string{"up", "k"},
	Down:       []string{"down", "j"},
	ScrollUp:   []string{"K", "shift+up"},
	ScrollDown: []string{"J", "shift+down"},
	PageUp:     []string{"pgup"},
	PageDown:   []string{"pgdown"},
	More:       []string{"right", "l"},
	Less:       []string{"left", "h"},
	Merge:      []string{"m"},
	Approve:    []string{"a"},
	Reload:     []string{"R"},
	Open:       []string{"enter", "o"},
	Contrib:    []string{"c"},
	Dismiss:    []string{"esc"},
	Quit:       []string{"q", "ctrl+c"},
}

func (k keyMap) helpLine() string {
	return "j/k move  h/l preview  J/K scroll  m merge  a approve  R reload  o open  c contribs  q quit"
}

func matches(key string, binding []string) bool {
	for _, b := range binding {
		if key == b {
			return true
		}
	}
	return false
}
