// Package retry re-runs operations that fail with transient errors, waiting
// with exponential backoff between attempts.
//
// The rewriter uses FileWritePolicy when writing fixed sources back, since
// editors and indexers commonly hold short-lived locks on files they watch.
//
// # Example Usage
//
//	err := retry.FileWritePolicy().Do(func() error {
//	    return fsProvider.WriteFile(path, data)
//	})
package retry
