// Package write exports query results as CSV or JSON.
//
// WriteCSV and WriteJSON stream a result sequence to an io.Writer. Writer
// resolves a destination location through a blobstore.Resolver, picks the
// format from the file extension and compresses the output when the name
// ends in .gz, .zst or .lz4:
//
//	w := write.NewWriter()
//	n, err := w.Write(ctx, "out/results.json.gz", db.Query(ctx, filters...))
//
// A failed write leaves no partial file behind on stores that support
// aborting a blob.
package write
