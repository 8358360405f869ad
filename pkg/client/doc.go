// Package client is the HTTP transport for the Steamship API and the domain
// operations built on it.
//
// Every operation returns a task.Response. Operations the server runs
// asynchronously come back with a Task that can be polled with the client
// itself as the task.Poster:
//
//	c, err := client.New(cfg, logger)
//	resp, err := c.Embed(ctx, client.EmbedRequest{Docs: docs, Model: model}, task.Routing{})
//	err = resp.Wait(ctx, c, task.WithMaxWait(2*time.Minute))
//
// # Errors
//
// A request that cannot be completed (connection failure, unexpected status,
// undecodable body) returns a *TransportError. A request the server rejects
// with an error description returns a response whose Error field is set.
//
// # Configuration
//
// Config can be built in code or loaded with LoadConfig from an HCL or JSON
// file holding top-level defaults and named profiles, then overridden by the
// STEAMSHIP_* environment variables with ApplyEnv.
package client
