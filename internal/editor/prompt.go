package editor

import (
	"unicode"

	"github.com/dshills/quill/internal/terminal"
)

// prompt collects a line of input on the message bar. callback, when
// non-nil, observes every keystroke together with the text so far;
// Enter and Esc end the prompt without reaching it. Esc or an empty
// Enter cancels.
func (e *Editor) prompt(label string, callback func(ev terminal.Event, text string)) (string, bool) {
	var input []rune
	for {
		e.setMessage("%s%s", label, string(input))
		e.refresh()

		ev := e.screen.PollEvent()
		switch ev.Type {
		case terminal.EventKey:
		case terminal.EventFunc:
			ev.Fn()
			continue
		case terminal.EventQuit:
			e.quit = true
			e.setMessage("")
			return "", false
		default:
			continue
		}

		switch ev.Key {
		case terminal.KeyEnter:
			e.setMessage("")
			if len(input) == 0 {
				return "", false
			}
			return string(input), true
		case terminal.KeyEscape:
			e.setMessage("")
			return "", false
		case terminal.KeyBackspace:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case terminal.KeyRune:
			if !unicode.IsControl(ev.Rune) {
				input = append(input, ev.Rune)
			}
		}

		if callback != nil {
			callback(ev, string(input))
		}
	}
}
