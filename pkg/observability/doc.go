/*
Package observability provides tools for monitoring the calculator.

It turns lifecycle hooks into Prometheus metrics so any adapter (HTTP, MCP,
CLI) can expose calculation counts and latencies.
*/
package observability
