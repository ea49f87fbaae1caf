// Package extract loads NEO records from CSV and close-approach records from
// JSON.
//
// LoadNEOs and LoadApproaches parse a single stream. A Loader resolves
// locations through a blobstore.Resolver, decompresses by file extension and
// loads both sources concurrently:
//
//	ds, err := extract.NewLoader().Load(ctx, "data/neos.csv", "data/cad.json.gz")
//	if err != nil {
//		return err
//	}
//	db, err := ds.Database()
//
// Every load returns a Report with the number of source rows and the indices
// of the rows that were skipped.
package extract
