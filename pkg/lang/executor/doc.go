/*
Package executor interprets parsed pwoli programs.

Variables live in one flat environment shared by all blocks. A declaration
sets its variable to zero; assignments and reads of a name that was never
declared fail with an UNDECLARED_VARIABLE error. Loops are bounded by
Options.MaxLoopIterations and fail with LOOP_LIMIT when the bound is hit.
Every runtime error is a *pwerror.Error whose span details point back into
the source.
*/
package executor
