// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"
)

// markdownRenderer turns editor markdown into note HTML. goldmark drops raw
// HTML unless html.WithUnsafe is set, so typed markup never reaches a note.
var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
)

// htmlConverter turns stored note HTML back into editor markdown.
var htmlConverter = newHTMLConverter()

func newHTMLConverter() *md.Converter {
	conv := md.NewConverter("", true, &md.Options{
		StrongDelimiter:  "**",
		EmDelimiter:      "_",
		BulletListMarker: "-",
	})
	conv.Use(plugin.Strikethrough("~~"))
	return conv
}

// MarkdownToHTML renders markdown as an HTML fragment. Whitespace-only input
// renders as the empty string so a cleared editor yields empty content.
func MarkdownToHTML(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("error rendering markdown: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}

// HTMLToMarkdown converts an HTML fragment into markdown suitable for the
// editor and for terminal display.
func HTMLToMarkdown(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}

	out, err := htmlConverter.ConvertString(src)
	if err != nil {
		return "", fmt.Errorf("error converting html to markdown: %w", err)
	}

	return strings.TrimSpace(out), nil
}

// blockElements end a run of text in PlainText.
var blockElements = map[string]struct{}{
	"p": {}, "div": {}, "br": {}, "li": {}, "ul": {}, "ol": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"blockquote": {}, "pre": {},
}

// PlainText strips every tag from an HTML fragment and collapses whitespace.
// Script and style contents are dropped. Used for one-line previews and for
// matching content without markup.
func PlainText(src string) string {
	if src == "" {
		return ""
	}

	var sb strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(src))
	skip := 0

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// io.EOF or a malformed tail; either way keep what was read
			return strings.Join(strings.Fields(sb.String()), " ")
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				skip++
			}
			if _, ok := blockElements[tag]; ok {
				sb.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			tag := string(name)
			if (tag == "script" || tag == "style") && skip > 0 {
				skip--
			}
			if _, ok := blockElements[tag]; ok {
				sb.WriteByte(' ')
			}
		case html.TextToken:
			if skip == 0 {
				sb.Write(tokenizer.Text())
			}
		}
	}
}
