// Package domain contains core concepts of the cooking collaboration system.
// This file defines the Identity attached to a live connection.
// No runtime, network, or UI logic should be added here.
package domain

// Identity is produced once at handshake by the identity provider
// and owned by the connection for its lifetime. It is never persisted here.
type Identity struct {
	UserID      string
	Email       string
	DisplayName string
}
