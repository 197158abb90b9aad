// Package pipeline implements the Markdown-to-HTML document pipeline.
//
// The stages are:
//   - Markdown preprocessing (line ending normalization)
//   - Markdown to HTML fragment rendering via Goldmark, with heading
//     anchors, task lists, emoji, front matter and chroma highlighting
//   - Document assembly: head boilerplate, inlined styles and scripts
//
// The Renderer interface lets callers substitute the Markdown engine; the
// assembler is pure string composition and never fails.
package pipeline
