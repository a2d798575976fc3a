/*
Package strcalc sums lists of integers encoded in a single string.

The input may begin with a header declaring custom delimiters; otherwise
commas and newlines separate the numbers.

# Syntax

	1,2,3            default delimiters "," and "\n"
	//;\n1;2;3       one custom delimiter
	//[***]\n1***2   bracketed, multi-character delimiter
	//[*][%]\n1*2%3  several delimiters

Malformed headers and non-numeric tokens fail immediately. Negative numbers
are collected and reported together in a single error.

# Usage

	calc := strcalc.New()
	sum, err := calc.Add(ctx, "//[*][%]\n1*2%3") // 6

	res := calc.Calculate(ctx, "1,-2,3,-4")
	// res.Success == false
	// res.Error   == "negative numbers not allowed: -2, -4"

# Architecture

The parsing core (internal/calc) is a pure function of its input. The facade
adds optional infrastructure through options: result caching (pkg/adapters/memory,
pkg/adapters/redis), lifecycle hooks (pkg/observability) and structured logging.
Transport adapters expose the Calculator over HTTP (pkg/adapters/http) and MCP
(pkg/adapters/mcp).
*/
package strcalc
