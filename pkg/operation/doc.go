/*
Package operation drives a rebrand run over a directory tree.

	+-------------+
	|    Walk     |
	|   (files)   |
	+------+------+
	       |
	+------+------+
	|   Rewrite   |
	| (one file)  |
	+------+------+
	       |
	+------+------+
	|   Report    |
	+-------------+

🎯 Purpose:
- Walks every file under the configured root
- Hands each one to the rewriter, one at a time
- Reports every result as soon as it is known

⚡ Error model:
- The root cannot be walked: the run fails before touching anything
- A single file fails: its result carries the error, it is reported, and the
  run moves on to the next file

Runs are strictly sequential. No two files are ever open at the same time and
nothing is retried; running again picks up whatever failed.

🔍 Example:

	summary, err := operation.Run(ctx, operation.Options{
		Config:   cfg,
		Reporter: log.New(os.Stdout, *zerolog.Ctx(ctx)),
	})
*/
package operation
