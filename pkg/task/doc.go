// Package task implements the asynchronous task model shared by every
// long-running Steamship operation.
//
// # Overview
//
// A domain call returns a Response envelope. The envelope carries at most one
// of three things at any moment: the payload of a call that completed
// synchronously, a Task handle for work the server enqueued, or a RemoteError
// describing a failure reported by the server. Pending responses are brought
// up to date with Check (one status round trip) or Wait (poll until the task
// reaches a terminal status or the local timeout elapses).
//
// # Transport
//
// Nothing in this package holds a connection. Every operation that talks to
// the server takes a Poster explicitly, so a Task or Response can be passed
// around freely without keeping a client alive.
//
//	resp, err := client.Embed(ctx, req, client.Routing{})
//	if err != nil {
//		return err // transport failure
//	}
//	if err := resp.Wait(ctx, client); err != nil {
//		return err
//	}
//	if resp.Error != nil {
//		return resp.Error // remote failure, carried as data
//	}
//
// # Comments
//
// Tasks can be annotated with comments correlating them to external systems.
// Comment metadata is any JSON value; it travels as a JSON-encoded string and
// is decoded back on read.
package task
