package keymap

// Contexts group bindings in the help popup.
const (
	ContextGlobal = "global"
	ContextField  = "field"
)

// Binding maps keys to an action in a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Bindings is the single source of truth for all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", ContextGlobal},
	{ActionNextField, []string{"tab", "l", "right"}, "Next column", ContextGlobal},
	{ActionPrevField, []string{"shift+tab", "h", "left"}, "Previous column", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},

	// Focused field
	{ActionIncrement, []string{"k", "up"}, "Increase by one step", ContextField},
	{ActionDecrement, []string{"j", "down"}, "Decrease by one step", ContextField},
	{ActionPageUp, []string{"pgup"}, "Increase by ten steps", ContextField},
	{ActionPageDown, []string{"pgdown"}, "Decrease by ten steps", ContextField},
	{ActionConfirm, []string{"enter"}, "Edit / confirm value", ContextField},
	{ActionCancel, []string{"esc"}, "Cancel edit", ContextField},
	{ActionLock, []string{" "}, "Lock column", ContextField},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
