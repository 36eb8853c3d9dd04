// Package ui contains the Bubble Tea program hosting the menu bar. The
// package is structured so the Model type focuses on message orchestration,
// while dedicated helpers own input translation, dropdown and palette state,
// and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update forwards messages to the active prompt form first. When no form
//     is active, the message is routed through a typed handler registry so
//     each tea.Msg is handled by a focused function.
//   - Key messages are translated into host key events (internal/keys) and
//     offered to the menu-bar controller before anything else; consumed
//     events never reach the shell's own bindings. Unconsumed events fall
//     through to the dropdown, the palette, or the chrome keymap.
//
// State ownership:
//   - Highlighted/opened menu state lives in the menubar controller; the
//     shell reacts to its signals (open-menu, highlight change) by opening
//     and closing the dropdown and reporting back via SetOpenedMenuID.
//   - Dropdown and palette list state lives in internal/ui/state.Level.
//   - The recent-files store is kept in sync by the backend watcher and the
//     data dispatcher; the File menu's Open Recent entries are rebuilt from
//     it on every update.
//   - Action execution runs through the internal/ui/command bus, which wraps
//     registry dispatches into Bubble Tea commands.
package ui
