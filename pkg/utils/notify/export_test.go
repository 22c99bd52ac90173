package notify

// WithInteractive exposes terminal mode to tests, which never write to a terminal.
var WithInteractive = withInteractive
