// Command envjson resolves the variables declared in env.json against the
// process environment.
//
// Usage:
//
//	# Print resolved variables as JSON
//	envjson resolve
//
//	# Validate declarations for the production mode
//	envjson check --mode production
//
//	# Run a program with the resolved environment
//	envjson exec -- node server.js
//
//	# Re-resolve whenever env.json changes
//	envjson watch -o dotenv
//
// A "function" variable names a Go function registered through
// app.New, or holds an HCL expression. The command registers no
// functions, so on the command line every function value is evaluated as an
// expression; registered functions are available only to programs that
// build an app.App themselves.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
