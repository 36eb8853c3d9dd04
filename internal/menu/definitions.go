package menu

// OpenRecentID identifies the File > Open Recent submenu, whose items are
// rebuilt from the recent-files store at runtime.
const OpenRecentID = "file-recent"

// BarItems returns the top-level menu definitions for the application menu
// bar. Titles carry '&' mnemonic markers; leaf items name the action they
// dispatch.
func BarItems() []Item {
	return []Item{
		{
			ID:    "menu-file",
			Title: "&File",
			Items: []Item{
				{ID: "file-new", Title: "&New…", Action: "file-new"},
				{ID: "file-open", Title: "&Open…", Action: "file-open"},
				{ID: OpenRecentID, Title: "Open &Recent"},
				{ID: "file-save", Title: "&Save", Action: "file-save"},
				{ID: "file-save-as", Title: "Save &As…", Action: "file-save-as"},
				{ID: "file-close", Title: "&Close", Action: "file-close"},
				{ID: "file-quit", Title: "&Quit", Action: "file-quit"},
			},
		},
		{
			ID:    "menu-edit",
			Title: "&Edit",
			Items: []Item{
				{ID: "edit-undo", Title: "&Undo", Action: "edit-undo"},
				{ID: "edit-redo", Title: "&Redo", Action: "edit-redo"},
				{ID: "edit-cut", Title: "Cu&t", Action: "edit-cut"},
				{ID: "edit-copy", Title: "&Copy", Action: "edit-copy"},
				{ID: "edit-paste", Title: "&Paste", Action: "edit-paste"},
				{ID: "edit-select-all", Title: "Select &All", Action: "edit-select-all"},
				{ID: "edit-preferences", Title: "Pre&ferences…", Action: "edit-preferences"},
			},
		},
		{
			ID:    "menu-view",
			Title: "&View",
			Items: []Item{
				{ID: "view-palettes", Title: "&Palettes", Action: "view-palettes"},
				{ID: "view-instruments", Title: "&Instruments", Action: "view-instruments"},
				{ID: "view-zoom-in", Title: "Zoom &In", Action: "view-zoom-in"},
				{ID: "view-zoom-out", Title: "Zoom &Out", Action: "view-zoom-out"},
				{ID: "view-fullscreen", Title: "&Full Screen", Action: "view-fullscreen"},
			},
		},
		{
			ID:    "menu-add",
			Title: "&Add",
			Items: []Item{
				{ID: "add-note", Title: "&Note", Action: "add-note"},
				{ID: "add-interval", Title: "&Interval", Action: "add-interval"},
				{ID: "add-tuplet", Title: "&Tuplet", Action: "add-tuplet"},
				{ID: "add-measure", Title: "&Measure", Action: "add-measure"},
				{ID: "add-text", Title: "Te&xt", Action: "add-text"},
			},
		},
		{
			ID:    "menu-format",
			Title: "F&ormat",
			Items: []Item{
				{ID: "format-style", Title: "&Style…", Action: "format-style"},
				{ID: "format-page", Title: "&Page Settings…", Action: "format-page"},
				{ID: "format-reset", Title: "&Reset Shapes and Positions", Action: "format-reset"},
			},
		},
		{
			ID:    "menu-tools",
			Title: "&Tools",
			Items: []Item{
				{ID: "tools-transpose", Title: "&Transpose…", Action: "tools-transpose"},
				{ID: "tools-explode", Title: "&Explode", Action: "tools-explode"},
				{ID: "tools-implode", Title: "&Implode", Action: "tools-implode"},
				{ID: "tools-regroup", Title: "Regroup &Rhythms", Action: "tools-regroup"},
			},
		},
		{
			ID:    "menu-help",
			Title: "&Help",
			Items: []Item{
				{ID: "help-handbook", Title: "Online &Handbook", Action: "help-handbook"},
				{ID: "help-about", Title: "&About…", Action: "help-about"},
			},
		},
	}
}
