package rules

import (
	"testing"

	"github.com/yaklabco/gocsfix/pkg/fixer"
)

func TestNoClosingTagFixer(t *testing.T) {
	t.Parallel()

	runCases(t, func() fixer.Fixer { return NewNoClosingTagFixer() }, nil, []fixCase{
		{name: "space before tag", expected: "<?php echo 'Foo';", input: "<?php echo 'Foo'; ?>"},
		{name: "no space before tag", expected: "<?php echo 'Foo';", input: "<?php echo 'Foo';?>"},
		{name: "trailing html", expected: "<?php echo 'Foo'; ?> PLAIN TEXT"},
		{name: "leading html", expected: "PLAIN TEXT<?php echo 'Foo'; ?>"},
		{
			name:     "blank lines before tag",
			expected: "<?php\n\necho 'Foo';",
			input:    "<?php\n\necho 'Foo';\n\n?>",
		},
		{
			name:     "template",
			expected: "<?php echo 'Foo'; ?>\n<p><?php echo 'this is a template'; ?></p>\n<?php echo 'Foo'; ?>",
		},
		{name: "missing semicolon", expected: `<?php echo "foo";`, input: `<?php echo "foo" ?>`},
		{
			name:     "after closing brace",
			expected: "<?php\nif (true) {\n    echo 1;\n}",
			input:    "<?php\nif (true) {\n    echo 1;\n}?>",
		},
		{name: "trailing line break", expected: "<?php echo 1;", input: "<?php echo 1;\n?>\n"},
		{name: "trailing comment", expected: "<?php echo 1;// test", input: "<?php echo 1;// test\n?>"},
		{name: "no code", expected: "<?php ", input: "<?php ?>"},
		{name: "only comment", expected: "<?php /* license */", input: "<?php /* license */ ?>"},
		{name: "html after tag", expected: "<?php ?>aa"},
		{name: "echo tag", expected: "<?= 1;", input: "<?= 1; ?>"},
		{
			name:     "shebang",
			expected: "#!/usr/bin/env php\n<?php echo 1;",
			input:    "#!/usr/bin/env php\n<?php echo 1; ?>",
		},
	})
}
