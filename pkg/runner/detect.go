package runner

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// sniffSize is how much of an extensionless file is read for detection.
const sniffSize = 8 << 10

const langPHP = "PHP"

// isPHPScript reports whether an extensionless file looks like PHP: a php
// shebang, or content go-enry classifies as PHP that also opens a PHP tag.
func isPHPScript(path string) bool {
	if filepath.Ext(path) != "" {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, sniffSize)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false
	}
	head = head[:n]
	if len(head) == 0 || enry.IsBinary(head) {
		return false
	}

	if lang, safe := enry.GetLanguageByShebang(head); lang != "" {
		return safe && lang == langPHP
	}

	if !strings.Contains(string(head), "<?php") {
		return false
	}
	lang, _ := enry.GetLanguageByClassifier(head, []string{langPHP, "HTML", "Hack", "Shell"})
	return lang == langPHP
}
