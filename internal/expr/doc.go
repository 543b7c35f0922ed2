// Package expr evaluates the text of function-typed variables.
//
// Expressions use HCL native syntax and are evaluated without access to the
// file system, the network or the process: every resolved variable whose
// name is a valid identifier is a variable, and "this" is an object holding
// the whole namespace, so names that are not identifiers stay reachable as
// this["NAME"]. A small set of pure string, number and collection functions
// is available.
//
//	"PORT + 1"
//	"upper(this.APP_ENV)"
//	"\"postgres://${DB_HOST}:${DB_PORT}/app\""
package expr
