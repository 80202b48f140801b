// Package cli provides the interactive ESG portal command-line client.
//
// It wires configuration, the local session database, the identity backend
// and a session.Manager, then runs a REPL whose commands map one to one
// onto manager operations. The prompt always shows the manager's latest
// snapshot: who is signed in, whether they are an admin and whether the
// server answers.
//
// Two backends exist. In grpc mode the CLI talks to the identity server
// and keeps the refresh token in SQLite, so a restarted CLI resumes the
// session. In memory mode everything lives in the process; federated
// sign-in accepts the code "demo".
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
