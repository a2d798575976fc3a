/*
Package domain contains the core domain models of the string calculator.

It defines the values that flow through the calculation pipeline and the errors
it can report. This package is kept pure and free of external dependencies
like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - DelimiterSpec: The active delimiter set plus the numeric body left after the header.
  - Token: A raw substring of the body, produced by splitting on the delimiter set.
  - Policy: Optional evaluation rules (e.g. the upper bound).
  - Result: The boundary-facing success/error envelope returned by the facade.
*/
package domain
