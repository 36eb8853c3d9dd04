package events

import "github.com/fermata-io/menunav/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Dispatch(name, arg string) {
	payload := map[string]interface{}{"name": name}
	if arg != "" {
		payload["arg"] = arg
	}
	logging.Trace("command.dispatch", payload)
}

func (CommandTracer) Unknown(name string) {
	logging.Trace("command.unknown", map[string]interface{}{"name": name})
}

func (CommandTracer) Error(name string, err error) {
	logging.Trace("command.error", map[string]interface{}{"name": name, "error": err.Error()})
}

func (CommandTracer) Queue(name, label string) {
	logging.Trace("command.queue", map[string]interface{}{"name": name, "label": label})
}

func (CommandTracer) Result(name, label, result string) {
	logging.Trace("command.result", map[string]interface{}{"name": name, "label": label, "result": result})
}
