// Package mcpserver exposes the Pulseway RMM API as MCP tools and resources.
//
// This package implements the following MCP tools:
//
//   - list_systems: List managed systems, optionally filtered by
//     organization or online status
//   - get_system_details: Get detailed information about one system
//   - get_system_notifications: Get notifications for one system
//   - list_organizations: List all organizations in the account
//   - get_system_metrics: Get performance metrics for one system
//
// And the following resources:
//
//   - pulseway://docs/api: Static documentation for the Pulseway API
//   - pulseway://systems: Live listing of managed systems, one per line
//
// Tool handlers never propagate a failure to the host: every error —
// missing arguments, invalid enum values, API failures, even panics — is
// rendered as a single text content block prefixed with "Error:". Tool
// output is the only channel the host reads, so it doubles as the error
// channel. Resource reads instead use the protocol's own error response.
//
// Example tool usage:
//
//	list_systems: {"organization_id": "org1", "online_only": true}
//	get_system_details: {"system_id": "sys1"}
//	get_system_notifications: {"system_id": "sys1", "status": "active"}
//	list_organizations: {}
//	get_system_metrics: {"system_id": "sys1", "metric_type": "cpu"}
package mcpserver
