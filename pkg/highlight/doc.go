// Package highlight classifies markdown buffers line by line and
// incrementally. Each pass over a line emits ordered style spans and one
// persistent block state; the stored states are the only cross-line
// context, so editing a line re-classifies at most that line plus the
// neighbors it queues for re-scan. Heading, fence, frontmatter and
// comment regions are recovered from the previous line's state, never
// from a parse tree.
//
// The classifier is host-agnostic: text comes from a Buffer, style
// descriptors live in an owned StyleRegistry, and emitted spans flow to
// an optional PaintFunc sink. Document is a ready-made in-memory Buffer;
// Scheduler drives periodic flushes of the re-scan queue.
package highlight
