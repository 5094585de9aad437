// Package multiread gives every cache-backing store a batch read, whether or
// not the store can read many keys at once.
//
// A store implements store.Store (single reads) and optionally
// store.BatchStore (native multi-key read). Reader.ReadMulti picks the path:
//
//   - native ReadMulti when the store has one and its type is not disabled;
//   - one Read per key when the type is disabled, the store has no batch read,
//     or the batch read returns store.ErrNotSupported.
//
// Genuine errors from either path are returned unchanged; a caller gets either
// a full result map or an error.
//
// Capabilities:
//
//	multiread.Disable[*memcache.Store]() // known-bad multi-get, force single reads
//
// Coverage:
//
// Every store passed to ReadMulti is recorded in a Coverage set. Test suites
// exercise each configured store once and then assert nothing was skipped:
//
//	err := multiread.DefaultCoverage.Verify(multiread.StaticRegistry{
//	    Version: versionStore,
//	    Named:   recordStores,
//	})
package multiread
