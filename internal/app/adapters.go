package app

// editorAPI exposes the session to Lua scripts. Scripts only run
// during event fires and script load, both on the goroutine that owns
// the editor, so no locking is needed beyond the accessors'.
type editorAPI struct {
	app *Application
}

func (a *editorAPI) Filename() string {
	return a.app.Document().Filename()
}

func (a *editorAPI) LineCount() int {
	return a.app.Document().Len()
}

func (a *editorAPI) Line(i int) (string, bool) {
	if row := a.app.Document().Row(i); row != nil {
		return row.Text(), true
	}
	return "", false
}

// SetStatus shows msg in the message bar. Before the editor starts,
// for example while scripts load, the message goes to the log instead.
func (a *editorAPI) SetStatus(msg string) {
	if ed := a.app.Editor(); ed != nil {
		ed.SetStatus(msg)
		return
	}
	a.app.logger.WithComponent("plugin").Info("status: %s", msg)
}
