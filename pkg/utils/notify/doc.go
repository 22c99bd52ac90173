// Package notify writes user-facing status lines for farmops commands.
//
// [WriteMessage] renders a single styled line (✔ success, ✗ error, ⚠ warning,
// ℹ info, ► activity, ⧗ waiting, or a titled stage). [ProgressGroup] runs several
// waits side by side and keeps one status line per resource. [StageSeparatingWriter]
// inserts a blank line before every stage title so install steps read as blocks.
package notify
