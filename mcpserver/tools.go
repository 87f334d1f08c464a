// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package mcpserver

import (
	"context"

	"github.com/gemstones-dev/gemstones/lineedit"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool names.
const (
	ToolGetLine           = "get_line"
	ToolLineHasContent    = "line_has_content"
	ToolSetLine           = "set_line"
	ToolPrependLine       = "prepend_line"
	ToolPrependLineRange  = "prepend_line_range"
	ToolFindLine          = "find_line"
	ToolFindAllLines      = "find_all_lines"
	ToolFindEnclosingTags = "find_enclosing_tags"
)

// LineResult reports a single line.
type LineResult struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Content string `json:"content"`
}

// EditResult reports a completed edit.
type EditResult struct {
	Path  string `json:"path"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// FindResult reports a search. Line is null when nothing matched.
type FindResult struct {
	Path string `json:"path"`
	Line *int   `json:"line"`
}

// FindAllResult reports every match. Lines is null when nothing matched.
type FindAllResult struct {
	Path  string `json:"path"`
	Lines []int  `json:"lines"`
}

// TagsResult reports a tag scan. Span is null unless Status is "balanced".
type TagsResult struct {
	Path   string              `json:"path"`
	Span   *lineedit.TagSpan   `json:"span"`
	Status lineedit.ScanStatus `json:"status"`
}

// HasContentResult reports a line comparison.
type HasContentResult struct {
	Path  string `json:"path"`
	Line  int    `json:"line"`
	Match bool   `json:"match"`
}

var (
	pathParam = mcp.WithString("path", mcp.Required(),
		mcp.Description("Path of the text file, inside the allowed directories"))
	lineParam = mcp.WithNumber("line", mcp.Required(),
		mcp.Description("1-based line number"))
	stripParam = mcp.WithBoolean("strip",
		mcp.Description("Trim surrounding whitespace, line break included, before comparing"))
)

func (s *Server) toolset() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool(ToolGetLine,
				mcp.WithDescription("Return one line of a file exactly as stored, line break included"),
				mcp.WithReadOnlyHintAnnotation(true),
				pathParam, lineParam,
			),
			Handler: s.handler(ToolGetLine, s.getLine),
		},
		{
			Tool: mcp.NewTool(ToolLineHasContent,
				mcp.WithDescription("Check whether a line equals the given text"),
				mcp.WithReadOnlyHintAnnotation(true),
				pathParam, lineParam, stripParam,
				mcp.WithString("content", mcp.Required(), mcp.Description("Text to compare with")),
			),
			Handler: s.handler(ToolLineHasContent, s.lineHasContent),
		},
		{
			Tool: mcp.NewTool(ToolSetLine,
				mcp.WithDescription("Replace one line of a file"),
				mcp.WithDestructiveHintAnnotation(true),
				pathParam, lineParam,
				mcp.WithString("content", mcp.Required(), mcp.Description("New line content")),
				mcp.WithBoolean("append_terminator",
					mcp.Description("Append a line break to the content (default true)")),
			),
			Handler: s.handler(ToolSetLine, s.setLine),
		},
		{
			Tool: mcp.NewTool(ToolPrependLine,
				mcp.WithDescription("Insert text at the start of one line"),
				pathParam, lineParam,
				mcp.WithString("prefix", mcp.Required(), mcp.Description("Text to insert")),
			),
			Handler: s.handler(ToolPrependLine, s.prependLine),
		},
		{
			Tool: mcp.NewTool(ToolPrependLineRange,
				mcp.WithDescription("Insert text at the start of every line from start to end inclusive, for example to comment out a block"),
				pathParam,
				mcp.WithNumber("start", mcp.Required(), mcp.Description("First line, 1-based")),
				mcp.WithNumber("end", mcp.Required(), mcp.Description("Last line, inclusive")),
				mcp.WithString("prefix", mcp.Required(), mcp.Description("Text to insert")),
			),
			Handler: s.handler(ToolPrependLineRange, s.prependLineRange),
		},
		{
			Tool: mcp.NewTool(ToolFindLine,
				mcp.WithDescription("Return the number of the first line matching the target, or null"),
				mcp.WithReadOnlyHintAnnotation(true),
				pathParam, stripParam,
				mcp.WithString("target", mcp.Required(), mcp.Description("Exact text, or a shell glob when pattern is true")),
				mcp.WithBoolean("pattern", mcp.Description("Treat target as a shell glob (* ? [...])")),
			),
			Handler: s.handler(ToolFindLine, s.findLine),
		},
		{
			Tool: mcp.NewTool(ToolFindAllLines,
				mcp.WithDescription("Return the numbers of every line matching the target, or null"),
				mcp.WithReadOnlyHintAnnotation(true),
				pathParam, stripParam,
				mcp.WithString("target", mcp.Required(), mcp.Description("Exact text, or a shell glob when pattern is true")),
				mcp.WithBoolean("pattern", mcp.Description("Treat target as a shell glob (* ? [...])")),
			),
			Handler: s.handler(ToolFindAllLines, s.findAllLines),
		},
		{
			Tool: mcp.NewTool(ToolFindEnclosingTags,
				mcp.WithDescription("Find the first region where start and end tag characters balance, such as a brace-delimited block"),
				mcp.WithReadOnlyHintAnnotation(true),
				pathParam,
				mcp.WithString("start_tag", mcp.Required(), mcp.Description("Opening character, e.g. {")),
				mcp.WithString("end_tag", mcp.Required(), mcp.Description("Closing character, e.g. }")),
				mcp.WithNumber("start_from", mcp.Description("1-based line to start scanning from (default 1)")),
			),
			Handler: s.handler(ToolFindEnclosingTags, s.findEnclosingTags),
		},
	}
}

func (s *Server) getLine(_ context.Context, args map[string]interface{}) (interface{}, error) {
	path, err := s.pathArg(args)
	if err != nil {
		return nil, err
	}
	line, err := intArg(args, "line")
	if err != nil {
		return nil, err
	}

	content, err := s.store.GetLineContent(path, line)
	if err != nil {
		return nil, err
	}
	return LineResult{Path: path, Line: line, Content: content}, nil
}

func (s *Server) lineHasContent(_ context.Context, args map[string]interface{}) (interface{}, error) {
	path, err := s.pathArg(args)
	if err != nil {
		return nil, err
	}
	line, err := intArg(args, "line")
	if err != nil {
		return nil, err
	}
	content, err := stringArg(args, "content")
	if err != nil {
		return nil, err
	}
	strip, err := boolArg(args, "strip", false)
	if err != nil {
		return nil, err
	}

	match, err := s.store.LineHasContent(path, line, content, strip)
	if err != nil {
		return nil, err
	}
	return HasContentResult{Path: path, Line: line, Match: match}, nil
}

func (s *Server) setLine(_ context.Context, args map[string]interface{}) (interface{}, error) {
	path, err := s.pathArg(args)
	if err != nil {
		return nil, err
	}
	line, err := intArg(args, "line")
	if err != nil {
		return nil, err
	}
	content, err := stringArg(args, "content")
	if err != nil {
		return nil, err
	}
	appendTerminator, err := boolArg(args, "append_terminator", true)
	if err != nil {
		return nil, err
	}

	if err := s.store.SetLine(path, line, content, appendTerminator); err != nil {
		return nil, err
	}
	return EditResult{Path: path, Start: line, End: line}, nil
}

func (s *Server) prependLine(_ context.Context, args map[string]interface{}) (interface{}, error) {
	path, err := s.pathArg(args)
	if err != nil {
		return nil, err
	}
	line, err := intArg(args, "line")
	if err != nil {
		return nil, err
	}
	prefix, err := stringArg(args, "prefix")
	if err != nil {
		return nil, err
	}

	if err := s.store.PrependToLine(path, line, prefix); err != nil {
		return nil, err
	}
	return EditResult{Path: path, Start: line, End: line}, nil
}

func (s *Server) prependLineRange(_ context.Context, args map[string]interface{}) (interface{}, error) {
	path, err := s.pathArg(args)
	if err != nil {
		return nil, err
	}
	start, err := intArg(args, "start")
	if err != nil {
		return nil, err
	}
	end, err := intArg(args, "end")
	if err != nil {
		return nil, err
	}
	prefix, err := stringArg(args, "prefix")
	if err != nil {
		return nil, err
	}

	if err := s.store.PrependToLineRange(path, start, end, prefix); err != nil {
		return nil, err
	}
	return EditResult{Path: path, Start: start, End: end}, nil
}

func findArgs(args map[string]interface{}) (string, lineedit.FindOptions, error) {
	target, err := stringArg(args, "target")
	if err != nil {
		return "", lineedit.FindOptions{}, err
	}
	strip, err := boolArg(args, "strip", false)
	if err != nil {
		return "", lineedit.FindOptions{}, err
	}
	pat, err := boolArg(args, "pattern", false)
	if err != nil {
		return "", lineedit.FindOptions{}, err
	}
	return target, lineedit.FindOptions{Strip: strip, Pattern: pat}, nil
}

func (s *Server) findLine(_ context.Context, args map[string]interface{}) (interface{}, error) {
	path, err := s.pathArg(args)
	if err != nil {
		return nil, err
	}
	target, opts, err := findArgs(args)
	if err != nil {
		return nil, err
	}

	n, found, err := s.store.FindLineNumber(path, target, opts)
	if err != nil {
		return nil, err
	}
	result := FindResult{Path: path}
	if found {
		result.Line = &n
	}
	return result, nil
}

func (s *Server) findAllLines(_ context.Context, args map[string]interface{}) (interface{}, error) {
	path, err := s.pathArg(args)
	if err != nil {
		return nil, err
	}
	target, opts, err := findArgs(args)
	if err != nil {
		return nil, err
	}

	lines, err := s.store.FindAllLineNumbers(path, target, opts)
	if err != nil {
		return nil, err
	}
	return FindAllResult{Path: path, Lines: lines}, nil
}

func (s *Server) findEnclosingTags(_ context.Context, args map[string]interface{}) (interface{}, error) {
	path, err := s.pathArg(args)
	if err != nil {
		return nil, err
	}
	startTag, err := runeArg(args, "start_tag")
	if err != nil {
		return nil, err
	}
	endTag, err := runeArg(args, "end_tag")
	if err != nil {
		return nil, err
	}
	startFrom, err := optionalIntArg(args, "start_from", 1)
	if err != nil {
		return nil, err
	}

	scan, err := s.store.ScanTags(path, startTag, endTag, startFrom)
	if err != nil {
		return nil, err
	}
	result := TagsResult{Path: path, Status: scan.Status}
	if scan.OK() {
		span := scan.Span
		result.Span = &span
	}
	return result, nil
}
