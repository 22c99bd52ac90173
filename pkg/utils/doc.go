// Package utils provides small building blocks shared by the farmops commands:
//
//   - logging: logrus setup and a poll observer that logs each attempt
//   - notify: symbol-prefixed user messages, stage separation, and progress groups
//   - runner: external command execution with streamed and captured output
//   - timer: stage and total durations for --timing
package utils
