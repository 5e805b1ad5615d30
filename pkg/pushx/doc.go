// Package pushx is a small client for the Expo push notification service.
//
// A single Message fans out to every token in To; Expo answers with one
// ticket per token. Client.Send treats any ticket error as a failed send but
// still reports the tickets so callers can see which tokens were accepted.
package pushx
