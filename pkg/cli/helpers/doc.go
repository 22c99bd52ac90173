// Package helpers holds small utilities shared by farmops commands: persistent flag
// names, timing, and loading the layered configuration for a command.
package helpers
