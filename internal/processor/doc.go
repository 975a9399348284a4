// Package processor contains the interactive driver of csvtrans. It
// prompts for file paths, reads each file into records, hands them to the
// translation dispatcher and prints the results. This package serves as
// the main coordinator between all other components.
package processor
