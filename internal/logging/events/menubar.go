package events

import "github.com/fermata-io/menunav/internal/logging"

type MenubarTracer struct{}

var Menubar = MenubarTracer{}

func (MenubarTracer) Highlighted(id string) {
	logging.Trace("menubar.highlighted", map[string]interface{}{"id": id})
}

func (MenubarTracer) Opened(id string) {
	logging.Trace("menubar.opened", map[string]interface{}{"id": id})
}

func (MenubarTracer) OpenMenu(id string) {
	logging.Trace("menubar.open", map[string]interface{}{"id": id})
}

func (MenubarTracer) ResetNavigation(previous string) {
	logging.Trace("menubar.reset", map[string]interface{}{"previous": previous})
}

func (MenubarTracer) SaveFocus(section, panel, control string) {
	logging.Trace("menubar.focus.save", map[string]interface{}{"section": section, "panel": panel, "control": control})
}

func (MenubarTracer) RestoreFocus(section, panel, control string) {
	logging.Trace("menubar.focus.restore", map[string]interface{}{"section": section, "panel": panel, "control": control})
}

func (MenubarTracer) SubItemActivate(section, panel, item string) {
	logging.Trace("menubar.subitem.activate", map[string]interface{}{"section": section, "panel": panel, "item": item})
}

func (MenubarTracer) SubItemSkip(item string) {
	logging.Trace("menubar.subitem.skip", map[string]interface{}{"item": item})
}
