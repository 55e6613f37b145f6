package tui

const (
	keyQuit       = "ctrl+c"
	keyCancel     = "esc"
	keyNext       = "tab"
	keyNextAlt    = "down"
	keyPrev       = "shift+tab"
	keyPrevAlt    = "up"
	keyToggle     = "ctrl+t"
	keyShare      = "ctrl+s"
	keyCopy       = "ctrl+y"
	editorHelpRow = "tab/↓ next  shift+tab/↑ prev  ctrl+t show/hide  ctrl+s share  ctrl+y copy link  esc quit"
)
