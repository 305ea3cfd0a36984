package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want Language
		ok   bool
	}{
		{path: "main.go", want: Go, ok: true},
		{path: "/repo/src/app.py", want: Python, ok: true},
		{path: "lib.rs", want: Rust, ok: true},
		{path: "index.mjs", want: JavaScript, ok: true},
		{path: "config.yml", want: YAML, ok: true},
		{path: "data.JSON", want: JSON, ok: true},
		{path: "deploy.sh", want: Bash, ok: true},
		{path: "util.h", want: C, ok: true},
		{path: "/home/user/.bashrc", want: Bash, ok: true},
		{path: "README", ok: false},
		{path: "archive.xyz", ok: false},
		{path: "noext", ok: false},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			lang, ok := Detect(test.path)
			assert.Equal(t, test.ok, ok)
			if test.ok {
				assert.Equal(t, test.want, lang)
			}
		})
	}
}

func TestDetectWithShebang(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		firstLine string
		want      Language
		ok        bool
	}{
		{name: "extension wins", path: "run.py", firstLine: "#!/bin/bash", want: Python, ok: true},
		{name: "python shebang", path: "run", firstLine: "#!/usr/bin/env python3", want: Python, ok: true},
		{name: "sh shebang", path: "run", firstLine: "#!/bin/sh", want: Bash, ok: true},
		{name: "node shebang", path: "run", firstLine: "#!/usr/bin/env node", want: JavaScript, ok: true},
		{name: "unknown interpreter", path: "run", firstLine: "#!/usr/bin/perl", ok: false},
		{name: "no shebang", path: "run", firstLine: "echo hi", ok: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			lang, ok := DetectWithShebang(test.path, test.firstLine)
			assert.Equal(t, test.ok, ok)
			if test.ok {
				assert.Equal(t, test.want, lang)
			}
		})
	}
}

func TestAll(t *testing.T) {
	for _, lang := range All() {
		assert.True(t, lang.Known(), "%s should be known", lang)
		assert.NotEmpty(t, lang.DisplayName())
	}
	assert.False(t, Language("klingon").Known())
	assert.Equal(t, "klingon", Language("klingon").DisplayName())
}
