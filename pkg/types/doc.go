// Package types defines the record entities stored by larder, the Config
// used to open a store, key ranges for index queries, the snapshot
// interchange format, and the standard errors shared by all packages.
package types
