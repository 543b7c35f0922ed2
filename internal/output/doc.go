// Package output renders a resolved namespace for humans and for other
// programs.
//
// Four formats are supported: json and yaml keep keys in resolution order,
// dotenv emits KEY=VALUE lines using the same string form that is written
// back into the environment, and table prints an aligned, styled listing.
package output
