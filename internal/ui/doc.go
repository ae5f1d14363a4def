// Package ui contains the Bubble Tea program behind the tmux pane picker.
// Model focuses on message orchestration while dedicated helpers own
// navigation, filter input, layout, preview capture and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update hands key presses to the active overlay first (help or rename).
//     When no overlay is open, the message is routed through a typed handler
//     registry so each tea.Msg is handled by a focused function.
//   - Navigation helpers (navigation.go) move the cursor and toggle between
//     the current and last pane. Filter helpers (input.go) keep text entry
//     isolated from the event loop.
//
// State ownership:
//   - The flat entry list, filter and cursor live in internal/ui/state.Level.
//   - Pane previews are cached per (target, width, height) and captured
//     asynchronously through the internal/ui/command bus. Late results are
//     matched against a sequence number and dropped when stale.
//
// Harness drives a Model synchronously for tests without a terminal.
package ui
