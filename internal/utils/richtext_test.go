// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownToHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: "  \n\t", want: ""},
		{name: "bold", in: "**bold**", want: "<p><strong>bold</strong></p>"},
		{name: "italic", in: "_it_", want: "<p><em>it</em></p>"},
		{name: "strikethrough", in: "~~gone~~", want: "<p><del>gone</del></p>"},
		{name: "bullet list", in: "- a\n- b", want: "<ul>\n<li>a</li>\n<li>b</li>\n</ul>"},
		{name: "ordered list", in: "1. a\n2. b", want: "<ol>\n<li>a</li>\n<li>b</li>\n</ol>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarkdownToHTML(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarkdownToHTML_DropsRawHTML(t *testing.T) {
	got, err := MarkdownToHTML("hi <script>alert(1)</script>\n\n<img src=x onerror=alert(1)>")
	require.NoError(t, err)

	assert.NotContains(t, got, "<script>")
	assert.NotContains(t, got, "<img")
	assert.Contains(t, got, "hi")
}

func TestHTMLToMarkdown(t *testing.T) {
	got, err := HTMLToMarkdown("<p><strong>b</strong> and <em>i</em> and <del>s</del></p>")
	require.NoError(t, err)
	assert.Equal(t, "**b** and _i_ and ~~s~~", got)

	got, err = HTMLToMarkdown("<ul><li>one</li><li>two</li></ul>")
	require.NoError(t, err)
	assert.Contains(t, got, "- one")
	assert.Contains(t, got, "- two")

	got, err = HTMLToMarkdown("   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestRichTextRoundTrip verifies that what the editor produces survives a
// trip through storage HTML and back.
func TestRichTextRoundTrip(t *testing.T) {
	src := "**Groceries** for _today_"

	htmlOut, err := MarkdownToHTML(src)
	require.NoError(t, err)

	back, err := HTMLToMarkdown(htmlOut)
	require.NoError(t, err)
	assert.Equal(t, src, back)
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain", in: "just text", want: "just text"},
		{name: "inline tags", in: "<p>Hello <b>world</b></p>", want: "Hello world"},
		{name: "entities", in: "<p>Tom &amp; Jerry&nbsp;show</p>", want: "Tom & Jerry show"},
		{name: "blocks are separated", in: "<p>one</p><p>two</p><ul><li>a</li><li>b</li></ul>", want: "one two a b"},
		{name: "script dropped", in: "<p>safe</p><script>alert(1)</script>", want: "safe"},
		{name: "unclosed tag", in: "<p>half <b>bold", want: "half bold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}
