// Package logging owns the arbor logger used throughout cabertoss: console
// output always, an optional rotating file writer, and run start/finish
// markers bracketing each invocation.
package logging
