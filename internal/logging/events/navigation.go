package events

import "github.com/fermata-io/menunav/internal/logging"

type NavigationTracer struct{}

var Navigation = NavigationTracer{}

func (NavigationTracer) Activate(section, panel, control string) {
	logging.Trace("navigation.activate", map[string]interface{}{"section": section, "panel": panel, "control": control})
}

func (NavigationTracer) ActivateMiss(section, panel, control string) {
	logging.Trace("navigation.activate.miss", map[string]interface{}{"section": section, "panel": panel, "control": control})
}

func (NavigationTracer) Trigger(section, panel, control string) {
	logging.Trace("navigation.trigger", map[string]interface{}{"section": section, "panel": panel, "control": control})
}
