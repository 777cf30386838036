// Package pipeline assembles worksheet documents.
//
// It covers the document-level stages of building a worksheet:
//   - Notes preprocessing (line normalization, ==highlight== syntax)
//   - Notes Markdown to HTML conversion via Goldmark, with class-based
//     syntax highlighting for code blocks
//   - Relative image and link rewriting so notes render from a temp file
//   - Page assembly from the worksheet template
//   - CSS injection into the finished document
//
// Bit-card and division fragments are produced by the root binviz package;
// this package only places them. PDF rendering lives in the root package
// as well, behind go-rod.
package pipeline
