// Package apx reads and writes the line-based .apx interchange format of
// enforcement instances.
//
// Format
//
//	arg(NAME).      declare an argument
//	att(SRC,DST).   declare an attack
//	enf(NAME).      positively enforce (extension modes)
//	pos(NAME).      positive status target (status modes)
//	neg(NAME).      negative status target (status modes)
//
// All whitespace is stripped before parsing. Lines that are empty or
// start with '/' or '%' are comments. A line that cannot be parsed is
// reported through the logger and skipped; using enf in a status mode or
// pos/neg in an extension mode aborts the parse, since the instance
// would be meaningless.
package apx
