/*
Package ports defines the driven ports (interfaces) for the calculator.

The calculation core is pure; ports describe the optional infrastructure the
facade can be wired to without the core knowing about it.

# Key Interfaces

  - ResultCache: Memoizes successful sums keyed by policy and input (Memory or Redis).
*/
package ports
