// Package pool
// Author: momentics <momentics@gmail.com>
//
// Reuse layer for hioload-ring: a free-list pool recycling whole ring
// buffers between bursts, and a generic sync.Pool wrapper for element
// payloads. See ringpool.go and syncpool.go for implementation details.
package pool
