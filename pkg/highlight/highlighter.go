package highlight

import (
	"strings"
	"sync"

	"github.com/yaklabco/gomdhilite/pkg/codescan"
)

// PaintFunc receives the final state and spans of a line each time it is
// classified, including re-classifications during a flush. Hosts use it
// to push spans into their own storage or paint pass.
type PaintFunc func(line int, state State, spans []Span)

// Highlighter classifies buffer lines incrementally. Classification of a
// single line is a pure function of the line's text, the previous line's
// stored state and the next line's text; cross-line effects go through
// the re-scan queue and are applied on Flush, never mid-pass.
//
// A mutex serializes Classify, Flush and style updates so a scheduler
// goroutine and the host goroutine do not interleave a pass. The host
// must not mutate the buffer while a call is in flight.
type Highlighter struct {
	mu         sync.Mutex
	buf        Buffer
	opts       Options
	pre        []Rule
	post       []Rule
	styles     *StyleRegistry
	queue      rescanQueue
	paint      PaintFunc
	classified bool
}

// New builds a Highlighter over buf. The rule tables are compiled once
// and the style registry starts with the built-in defaults.
func New(buf Buffer, opts Options) *Highlighter {
	return &Highlighter{
		buf:    buf,
		opts:   opts,
		pre:    preRules(opts),
		post:   postRules(),
		styles: NewStyleRegistry(DefaultStyles()),
	}
}

// OnPaint registers the sink that receives each line's state and spans.
// A *Document can be wired directly via its RecordSpans method.
func (h *Highlighter) OnPaint(fn PaintFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.paint = fn
}

// Classify runs one classification pass over line i and returns its final
// state and spans. An out-of-range index is a no-op returning
// (StateNone, nil).
func (h *Highlighter) Classify(i int) (State, []Span) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if i < 0 || i >= h.buf.LineCount() {
		return StateNone, nil
	}
	return h.classifyLine(i)
}

// HighlightAll classifies every line in buffer order. Call Flush
// afterwards to settle cross-line effects queued along the way.
func (h *Highlighter) HighlightAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := 0; i < h.buf.LineCount(); i++ {
		h.classifyLine(i)
	}
}

// Flush drains the re-scan queue until empty, re-classifying each queued
// line; classifications during the drain may queue further lines, which
// are processed in the same call. It reports whether any line anywhere
// was classified since the last Flush, and resets that flag.
func (h *Highlighter) Flush() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for {
		i, ok := h.queue.pop()
		if !ok {
			break
		}
		if i >= 0 && i < h.buf.LineCount() {
			h.classifyLine(i)
		}
	}

	completed := h.classified
	h.classified = false
	return completed
}

// ClearQueue drops all pending re-scans, for buffer teardown.
func (h *Highlighter) ClearQueue() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.queue.clear()
}

// SetStyle replaces the descriptor of a single tag.
func (h *Highlighter) SetStyle(tag State, s Style) {
	h.styles.Set(tag, s)
}

// SetStyles replaces the whole style table. The mapping must cover every
// tag the classifier can emit, including StateNone.
func (h *Highlighter) SetStyles(styles map[State]Style) error {
	return h.styles.ReplaceAll(styles)
}

// Styles returns the registry renderers read descriptors from.
func (h *Highlighter) Styles() *StyleRegistry {
	return h.styles
}

// lineRun is the working state of one classification pass.
type lineRun struct {
	index int
	text  string
	prev  State
	state State
	spans []Span
}

// paint appends a span clamped to the line bounds; empty results are
// dropped.
func (r *lineRun) paint(start, length int, tag State) {
	if start < 0 {
		length += start
		start = 0
	}
	if start+length > len(r.text) {
		length = len(r.text) - start
	}
	if length <= 0 {
		return
	}
	r.spans = append(r.spans, Span{Start: start, Len: length, Tag: tag})
}

// paintAll covers the whole line.
func (r *lineRun) paintAll(tag State) {
	r.paint(0, len(r.text), tag)
}

// classifyLine runs the full pass for line i: pre rules, heading
// detection, post rules, then the always-on comment, fence and
// frontmatter chains that keep region state flowing through blank lines.
// When the final state differs from the stored one, the successor line
// is queued so its inherited context catches up. Callers hold h.mu.
func (h *Highlighter) classifyLine(i int) (State, []Span) {
	run := &lineRun{
		index: i,
		text:  h.buf.LineText(i),
		prev:  h.prevState(i),
	}
	before := h.buf.LineState(i)

	if run.text != "" {
		h.applyRules(run, h.pre)
		h.classifyHeading(run)
		h.applyRules(run, h.post)
	}
	h.classifyCommentBlock(run)
	h.classifyCodeFence(run)
	h.classifyFrontmatter(run)

	h.buf.SetLineState(i, run.state)
	if run.state != before && i+1 < h.buf.LineCount() {
		h.queue.push(i + 1)
	}
	h.classified = true

	if h.paint != nil {
		h.paint(i, run.state, run.spans)
	}
	return run.state, run.spans
}

func (h *Highlighter) prevState(i int) State {
	if i <= 0 {
		return StateNone
	}
	return h.buf.LineState(i - 1)
}

// applyRules evaluates a rule table in order, painting every
// non-overlapping match. A capture that did not participate skips that
// match.
func (h *Highlighter) applyRules(run *lineRun, rules []Rule) {
	for ri := range rules {
		rule := &rules[ri]
		if rule.SkipIfStateSet && run.state != StateNone {
			continue
		}

		matches := rule.Pattern.FindAllStringSubmatchIndex(run.text, -1)
		if len(matches) == 0 {
			continue
		}
		if rule.SetsBlockState {
			run.state = rule.Tag
		}

		for _, m := range matches {
			if rule.CapturingGroup > 0 {
				lo, hi := groupRange(m, rule.CapturingGroup)
				if lo < 0 {
					continue
				}
				mlo, mhi := groupRange(m, rule.MaskedGroup)
				run.paint(mlo, mhi-mlo, StateMaskedSyntax)
				run.paint(lo, hi-lo, rule.Tag)
			} else {
				run.paint(m[0], m[1]-m[0], rule.Tag)
			}
		}
	}
}

func groupRange(m []int, group int) (int, int) {
	if 2*group+1 >= len(m) {
		return -1, -1
	}
	return m[2*group], m[2*group+1]
}

// classifyHeading handles ATX and setext headings. ATX wins outright.
// A setext underline may only rewrite the title line's state and queue
// it; the title's spans catch up when the queue drains. The lookahead
// direction paints the current line immediately.
func (h *Highlighter) classifyHeading(run *lineRun) {
	if level := atxHeadingLevel(run.text); level > 0 {
		state := headingStates[level-1]
		run.paint(0, level, StateMaskedSyntax)
		run.paint(level, len(run.text)-level, state)
		run.state = state
		return
	}

	prevText := h.buf.LineText(run.index - 1)

	if hasOnlyChar(run.text, '=') {
		if (run.prev == StateH1 || run.prev == StateNone) && setextTitle(prevText) {
			run.paintAll(StateMaskedSyntax)
			run.state = StateHeadlineEnd
			h.promoteTitle(run.index-1, StateH1)
		}
		return
	}
	if hasOnlyChar(run.text, '-') {
		if (run.prev == StateH2 || run.prev == StateNone) && setextTitle(prevText) {
			run.paintAll(StateMaskedSyntax)
			run.state = StateHeadlineEnd
			h.promoteTitle(run.index-1, StateH2)
		}
		return
	}

	nextText := h.buf.LineText(run.index + 1)
	if hasOnlyChar(nextText, '=') {
		run.paintAll(StateH1)
		run.state = StateH1
	}
	if hasOnlyChar(nextText, '-') {
		run.paintAll(StateH2)
		run.state = StateH2
	}
}

// promoteTitle rewrites the stored state of a setext title line and
// queues it for re-scan. Only the state moves here; painting a neighbor
// mid-pass is forbidden.
func (h *Highlighter) promoteTitle(i int, state State) {
	if i < 0 {
		return
	}
	h.buf.SetLineState(i, state)
	h.queue.push(i)
}

// setextTitle reports whether a predecessor line can serve as a setext
// title. An underline-only line cannot be one; the lookback and the
// title's own lookahead classification must agree on it, or two stacked
// underlines re-promote each other without ever settling.
func setextTitle(text string) bool {
	return text != "" && !hasOnlyChar(text, '=') && !hasOnlyChar(text, '-')
}

// atxHeadingLevel returns 1-6 when text opens with that many hashes and
// a space, 0 otherwise.
func atxHeadingLevel(text string) int {
	level := 0
	for level < len(text) && level < 6 && text[level] == '#' {
		level++
	}
	if level == 0 || level >= len(text) || text[level] != ' ' {
		return 0
	}
	return level
}

func hasOnlyChar(text string, c byte) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if text[i] != c {
			return false
		}
	}
	return true
}

// classifyCommentBlock chains multi-line HTML comments. A line that both
// opens and closes one is inline-only and handled by the post rule. A
// line ending with the close delimiter is painted but keeps whatever
// state structural detection assigned; it closes the block without being
// tagged open.
func (h *Highlighter) classifyCommentBlock(run *lineRun) {
	trimmed := strings.TrimSpace(run.text)
	if strings.HasPrefix(trimmed, "<!--") && strings.Contains(trimmed, "-->") {
		return
	}

	closes := strings.HasSuffix(trimmed, "-->")
	switch {
	case strings.HasPrefix(trimmed, "<!--") || (!closes && run.prev == StateComment):
		run.state = StateComment
		run.paintAll(StateComment)
	case closes:
		run.paintAll(StateComment)
	}
}

// classifyCodeFence runs the fence state machine. Whether a backtick line
// opens or closes depends solely on the previous line's stored state;
// fences cannot nest. Interior lines inherit the opener's state: generic
// interiors paint flat, language variants additionally run the codescan
// sub-highlighter over the flat base.
func (h *Highlighter) classifyCodeFence(run *lineRun) {
	if strings.HasPrefix(run.text, "```") {
		if run.prev.InCodeFence() {
			run.state = StateCodeBlockEnd
		} else {
			run.state = fenceStateFor(run.text[3:])
		}
		run.paintAll(StateMaskedSyntax)
		return
	}

	if !run.prev.InCodeFence() {
		return
	}
	run.state = run.prev
	run.paintAll(StateCodeBlock)

	tag, ok := run.prev.FenceLanguage()
	if !ok {
		return
	}
	lang, ok := codescan.Lookup(tag)
	if !ok {
		return
	}
	for _, tok := range codescan.Scan(run.text, lang) {
		run.paint(tok.Start, tok.Len, codeTokenTag(tok.Kind))
	}
}

// fenceStateFor maps a fence info token to the opening state.
// Unrecognized or absent info opens a generic fence.
func fenceStateFor(info string) State {
	tag, ok := codescan.Normalize(strings.TrimSpace(info))
	if !ok {
		return StateCodeBlock
	}
	switch tag {
	case "cpp":
		return StateCodeCpp
	case "js":
		return StateCodeJs
	default:
		return StateCodeBlock
	}
}

func codeTokenTag(kind codescan.Kind) State {
	switch kind {
	case codescan.KindComment:
		return StateCodeComment
	case codescan.KindString:
		return StateCodeString
	case codescan.KindNumber:
		return StateCodeNumber
	case codescan.KindType:
		return StateCodeType
	case codescan.KindKeyword:
		return StateCodeKeyword
	case codescan.KindPreproc:
		return StateCodePreproc
	default:
		return StateCodeBlock
	}
}

// classifyFrontmatter chains the metadata region. It only ever applies
// when the buffer's first line is exactly the --- delimiter, and only
// one region per buffer is recognized: a later bare --- outside the
// state chain stays whatever the other stages made of it.
func (h *Highlighter) classifyFrontmatter(run *lineRun) {
	if h.buf.LineText(0) != "---" {
		return
	}

	if run.text == "---" {
		foundEnd := run.prev == StateFrontmatter
		if !foundEnd && run.index != 0 {
			return
		}
		if foundEnd {
			run.state = StateFrontmatterEnd
		} else {
			run.state = StateFrontmatter
		}
		run.paintAll(StateMaskedSyntax)
		return
	}

	if run.prev == StateFrontmatter {
		run.state = StateFrontmatter
		run.paintAll(StateMaskedSyntax)
	}
}
