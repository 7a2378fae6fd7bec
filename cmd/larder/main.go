// Command larder is the command-line interface for the larder embedded
// admin datastore: initialize a data directory, seed demo data, inspect
// contents, derive reports, and back up or restore snapshots.
package main

func main() {
	Execute()
}
