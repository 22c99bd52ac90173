// Package installer drives a farmOS installation on a Docker Compose project: it
// starts the containers, waits for each service to become ready, runs composer and
// drush inside the www container, and validates the resulting site.
package installer
