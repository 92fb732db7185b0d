// Package token defines lexical token kinds and trivia for relaxfmt sources.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Comments and newlines are represented as leading Trivia and never
//     appear in the main token stream. The parser reads statement
//     boundaries off Token.Leading.
//   - A keyword-list key (`name:`) is a single KeyIdent token whose Text
//     keeps the trailing colon.
package token
