// Package client groups the wrappers around external systems.
//
//   - docker: container inspection, published ports, and docker exec
//   - netretry: classification of transient network errors and HTTP statuses
package client
